package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybernest/cybernest/petsim"
)

func TestCyberPet_StateRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	pet := petsim.NewPet(now)
	petsim.ApplyDailyTick(pet, now, petsim.DefaultProbabilityCap, func() float64 { return 0.99 })

	row := CyberPet{UserID: 7}
	require.NoError(t, row.SetState(pet))
	require.NotEmpty(t, row.State)

	decoded, err := row.DecodeState()
	require.NoError(t, err)
	assert.Equal(t, pet.Posture, decoded.Posture)
	assert.Equal(t, pet.Status, decoded.Status)
	assert.Equal(t, pet.Daily, decoded.Daily)
	assert.Equal(t, pet.Streak, decoded.Streak)
}

func TestCyberPet_DecodeEmptyState(t *testing.T) {
	row := CyberPet{UserID: 7}
	pet, err := row.DecodeState()
	require.NoError(t, err)

	// Hydration fills every container so callers never nil-check.
	assert.NotNil(t, pet.MiniGames)
	assert.NotNil(t, pet.IncidentHistory)
	assert.Equal(t, petsim.DefaultMaxActions, pet.Daily.MaxActions)
}

func TestCyberPet_DecodeCorruptState(t *testing.T) {
	row := CyberPet{UserID: 7, State: []byte("{not json")}
	_, err := row.DecodeState()
	assert.Error(t, err)
}
