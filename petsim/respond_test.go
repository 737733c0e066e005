package petsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petWithIncident(now time.Time, incidentType, severity string) *Pet {
	p := NewPet(now)
	created := now.Add(-2 * time.Hour)
	p.ActiveIncident = ActiveIncident{
		Type:      incidentType,
		Label:     FindIncident(incidentType).Label,
		Severity:  severity,
		Status:    IncidentStatusActive,
		CreatedAt: &created,
	}
	return p
}

func TestApplyIncidentResponse_NoActiveIncident(t *testing.T) {
	p := NewPet(day1)
	_, err := ApplyIncidentResponse(p, "reset_password", day1)
	assert.ErrorIs(t, err, ErrNoActiveIncident)
}

func TestApplyIncidentResponse_UnknownOption(t *testing.T) {
	p := petWithIncident(day1, "credential_stuffing", LevelHigh)
	_, err := ApplyIncidentResponse(p, "panic", day1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.True(t, p.HasActiveIncident(), "failed response must leave the incident open")
}

func TestApplyIncidentResponse_ResolvesAndRecords(t *testing.T) {
	p := petWithIncident(day1, "credential_stuffing", LevelHigh)
	mood, health, energy := p.Status.Mood, p.Status.Health, p.Status.Energy

	result, err := ApplyIncidentResponse(p, "enable_2fa_now", day1)
	require.NoError(t, err)

	assert.Equal(t, "credential_stuffing", result.IncidentType)
	assert.Equal(t, "enable_2fa_now", result.ResponseID)
	assert.Equal(t, 10, result.CoinCost)

	// Risk is the posture baseline (100) plus the response delta, not a
	// delta on whatever score happened to be cached.
	assert.Equal(t, 78, p.Risk.Score)
	assert.Equal(t, mood+3, p.Status.Mood)
	assert.Equal(t, health+4, p.Status.Health)
	assert.Equal(t, energy-10, p.Status.Energy)

	assert.False(t, p.HasActiveIncident())
	require.Len(t, p.IncidentHistory, 1)
	record := p.IncidentHistory[0]
	assert.Equal(t, "credential_stuffing", record.Type)
	assert.Equal(t, LevelHigh, record.Severity)
	assert.Equal(t, "Enable 2FA immediately", record.Outcome)
	assert.Equal(t, day1, record.ResolvedAt)
	assert.True(t, record.CreatedAt.Before(record.ResolvedAt))
}

func TestApplyIncidentResponse_RiskDeltaNeverCompounds(t *testing.T) {
	p := petWithIncident(day1, "brute_force_attempt", LevelMedium)
	p.Risk = Risk{Score: 5, Level: LevelLow} // stale low score on purpose

	_, err := ApplyIncidentResponse(p, "strengthen_password", day1)
	require.NoError(t, err)

	// Baseline 100 - 16, not 5 - 16.
	assert.Equal(t, 84, p.Risk.Score)
}

func TestApplyIncidentResponse_IgnoreRaisesRisk(t *testing.T) {
	p := petWithIncident(day1, "credential_stuffing", LevelMedium)
	p.Posture = Posture{StrengthScore: 100, TwoFactorEnabled: true, BreachMonitoringEnabled: true}

	result, err := ApplyIncidentResponse(p, "ignore", day1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.CoinCost)
	assert.Equal(t, 37, p.Risk.Score, "baseline 25 plus the +12 penalty")
}

func TestApplyIncidentResponse_HistoryGrowsOnly(t *testing.T) {
	p := petWithIncident(day1, "account_takeover", LevelHigh)
	_, err := ApplyIncidentResponse(p, "full_lockdown", day1)
	require.NoError(t, err)

	day2 := day1.AddDate(0, 0, 1)
	p.ActiveIncident = ActiveIncident{Type: "breach_alert", Severity: LevelLow, Status: IncidentStatusActive}
	_, err = ApplyIncidentResponse(p, "lock_sessions", day2)
	require.NoError(t, err)

	require.Len(t, p.IncidentHistory, 2)
	assert.Equal(t, "account_takeover", p.IncidentHistory[0].Type)
	assert.Equal(t, "breach_alert", p.IncidentHistory[1].Type)
}
