package petsim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet(t *testing.T) {
	p := NewPet(day1)

	assert.Equal(t, 45, p.Posture.StrengthScore)
	assert.True(t, p.Posture.ReusedPassword)
	assert.False(t, p.Posture.TwoFactorEnabled)
	assert.False(t, p.Posture.BreachMonitoringEnabled)

	assert.Equal(t, Vitals{Mood: 70, Health: 75, Energy: 70}, p.Status)
	assert.Equal(t, DefaultMaxActions, p.Daily.MaxActions)
	assert.Equal(t, 100, p.Risk.Score)
	assert.Equal(t, LevelHigh, p.Risk.Level)
	assert.False(t, p.HasActiveIncident())
	assert.NotNil(t, p.MiniGames)
	assert.NotNil(t, p.IncidentHistory)
}

func TestHydrate_NormalizesLoadedState(t *testing.T) {
	p := &Pet{
		Posture: Posture{StrengthScore: 140},
		Status:  Vitals{Mood: -3, Health: 250, Energy: 55},
		Daily:   Daily{MaxActions: 0, ActionsUsed: -2},
	}
	p.Hydrate()

	assert.Equal(t, 100, p.Posture.StrengthScore)
	assert.Equal(t, Vitals{Mood: 0, Health: 100, Energy: 55}, p.Status)
	assert.Equal(t, DefaultMaxActions, p.Daily.MaxActions)
	assert.Equal(t, 0, p.Daily.ActionsUsed)
	assert.NotEmpty(t, p.Risk.Level)
	assert.NotNil(t, p.MiniGames)
	assert.NotNil(t, p.IncidentHistory)
}

func TestPet_JSONRoundTrip(t *testing.T) {
	p := NewPet(day1)
	ApplyDailyTick(p, day1, DefaultProbabilityCap, func() float64 { return 0.5 })
	_, err := EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day1)
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var restored Pet
	require.NoError(t, json.Unmarshal(raw, &restored))
	restored.Hydrate()

	assert.Equal(t, p.Posture, restored.Posture)
	assert.Equal(t, p.Risk, restored.Risk)
	assert.Equal(t, p.Status, restored.Status)
	assert.Equal(t, p.Daily, restored.Daily)
	assert.Equal(t, p.ActiveIncident.Type, restored.ActiveIncident.Type)
	assert.Len(t, restored.DailyQuestions, DefaultDailyQuestionCount)
}

func TestHasActiveIncident(t *testing.T) {
	p := NewPet(day1)
	assert.False(t, p.HasActiveIncident())

	p.ActiveIncident = ActiveIncident{Type: "breach_alert", Status: IncidentStatusActive}
	assert.True(t, p.HasActiveIncident())

	p.clearActiveIncident()
	assert.False(t, p.HasActiveIncident())
}
