package petsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	weakPosture = Posture{StrengthScore: 45, ReusedPassword: true}
	safePosture = Posture{
		StrengthScore:           100,
		TwoFactorEnabled:        true,
		BreachMonitoringEnabled: true,
	}
)

func TestIncidentCatalog_Complete(t *testing.T) {
	catalog := IncidentCatalog()
	require.Len(t, catalog, 4)

	seen := map[string]bool{}
	for _, def := range catalog {
		assert.False(t, seen[def.ID], "duplicate incident id %s", def.ID)
		seen[def.ID] = true
		assert.NotEmpty(t, def.Label)
		assert.NotEmpty(t, def.Description)
		assert.Greater(t, def.BaseProbability, 0.0)
		assert.NotEmpty(t, def.Responses)
		for _, resp := range def.Responses {
			assert.NotEmpty(t, resp.ID)
			assert.NotEmpty(t, resp.Label)
		}
	}
	assert.True(t, seen["credential_stuffing"])
	assert.True(t, seen["breach_alert"])
	assert.True(t, seen["brute_force_attempt"])
	assert.True(t, seen["account_takeover"])
}

func TestFindIncident(t *testing.T) {
	assert.NotNil(t, FindIncident("breach_alert"))
	assert.Nil(t, FindIncident("solar_flare"))
}

func TestIncidentProbability(t *testing.T) {
	cs := *FindIncident("credential_stuffing")
	at := *FindIncident("account_takeover")

	tests := []struct {
		name    string
		def     IncidentDefinition
		posture Posture
		risk    int
		cap     float64
		want    float64
	}{
		{
			name:    "weak posture stacks stuffing modifiers",
			def:     cs,
			posture: weakPosture,
			risk:    100,
			cap:     DefaultProbabilityCap,
			want:    0.22 + 0.2 + 0.12,
		},
		{
			name:    "hardened posture neutralizes stuffing",
			def:     cs,
			posture: safePosture,
			risk:    25,
			cap:     DefaultProbabilityCap,
			want:    0.22 - 0.15 - 0.05,
		},
		{
			name:    "negative totals floor at zero",
			def:     at,
			posture: safePosture,
			risk:    25,
			cap:     DefaultProbabilityCap,
			want:    0,
		},
		{
			name:    "high risk feeds the takeover penalty",
			def:     at,
			posture: weakPosture,
			risk:    100,
			cap:     DefaultProbabilityCap,
			want:    0.1 + 0.2 + 0.14,
		},
		{
			name:    "cap bounds the result",
			def:     cs,
			posture: weakPosture,
			risk:    100,
			cap:     0.3,
			want:    0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncidentProbability(tt.def, tt.posture, tt.risk, tt.cap)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestResolveSeverity(t *testing.T) {
	rules := FindIncident("credential_stuffing").Severity

	assert.Equal(t, LevelLow, ResolveSeverity(0, rules))
	assert.Equal(t, LevelLow, ResolveSeverity(39, rules))
	assert.Equal(t, LevelMedium, ResolveSeverity(40, rules))
	assert.Equal(t, LevelMedium, ResolveSeverity(69, rules))
	assert.Equal(t, LevelHigh, ResolveSeverity(70, rules))
	assert.Equal(t, LevelHigh, ResolveSeverity(100, rules))
}

func TestRollIncident_Deterministic(t *testing.T) {
	risk := CalculateRisk(safePosture)

	// Hardened posture bands: stuffing 0.02, breach alert 0.20 cumulative,
	// brute force 0.28 cumulative, takeover excluded at zero.
	incident := RollIncident(risk, safePosture, DefaultProbabilityCap, day1, func() float64 { return 0.01 })
	require.NotNil(t, incident)
	assert.Equal(t, "credential_stuffing", incident.Type)

	incident = RollIncident(risk, safePosture, DefaultProbabilityCap, day1, func() float64 { return 0.1 })
	require.NotNil(t, incident)
	assert.Equal(t, "breach_alert", incident.Type)

	incident = RollIncident(risk, safePosture, DefaultProbabilityCap, day1, func() float64 { return 0.25 })
	require.NotNil(t, incident)
	assert.Equal(t, "brute_force_attempt", incident.Type)

	incident = RollIncident(risk, safePosture, DefaultProbabilityCap, day1, func() float64 { return 0.9 })
	assert.Nil(t, incident)
}

func TestRollIncident_SeverityFromRisk(t *testing.T) {
	risk := CalculateRisk(safePosture)
	incident := RollIncident(risk, safePosture, DefaultProbabilityCap, day1, func() float64 { return 0.01 })
	require.NotNil(t, incident)
	assert.Equal(t, LevelLow, incident.Severity, "score 25 sits in the low band")
	assert.Equal(t, IncidentStatusActive, incident.Status)
	require.NotNil(t, incident.CreatedAt)
	assert.Equal(t, day1, *incident.CreatedAt)
}
