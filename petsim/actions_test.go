package petsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickedPet(t *testing.T, now time.Time) *Pet {
	t.Helper()
	p := hardenedPet(now)
	result := ApplyDailyTick(p, now, DefaultProbabilityCap, neverRoll)
	require.False(t, result.AlreadyApplied)
	return p
}

func TestApplyAction_RequiresTick(t *testing.T) {
	p := NewPet(day1)
	_, err := ApplyAction(p, ActionEnable2FA, ActionPayload{}, day1)
	assert.ErrorIs(t, err, ErrTickRequired)
}

func TestApplyAction_RequiresTodaysTick(t *testing.T) {
	p := tickedPet(t, day1)
	tomorrow := day1.AddDate(0, 0, 1)
	_, err := ApplyAction(p, ActionEnable2FA, ActionPayload{}, tomorrow)
	assert.ErrorIs(t, err, ErrTickRequired)
}

func TestApplyAction_InvalidType(t *testing.T) {
	p := tickedPet(t, day1)
	_, err := ApplyAction(p, "overclockFirewall", ActionPayload{}, day1)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestApplyAction_ChangePassword(t *testing.T) {
	p := NewPet(day1)
	ApplyDailyTick(p, day1, DefaultProbabilityCap, func() float64 { return 0.99 })
	energy, mood := p.Status.Energy, p.Status.Mood

	result, err := ApplyAction(p, ActionChangePassword, ActionPayload{}, day1)
	require.NoError(t, err)

	assert.Equal(t, 65, p.Posture.StrengthScore, "default improvement is +20")
	assert.False(t, p.Posture.ReusedPassword)
	assert.Equal(t, energy-15, p.Status.Energy)
	assert.Equal(t, mood+4, p.Status.Mood)
	assert.Equal(t, 1, p.Daily.ActionsUsed)
	assert.Equal(t, ActionChangePassword, result.ActionType)
	assert.NotEmpty(t, result.Notes)

	// 25 + round(35*0.45) + 20 (no 2FA) + 10 (no monitoring)
	assert.Equal(t, 71, p.Risk.Score)
}

func TestApplyAction_ChangePasswordExplicitStrength(t *testing.T) {
	p := NewPet(day1)
	ApplyDailyTick(p, day1, DefaultProbabilityCap, func() float64 { return 0.99 })

	strength := 140
	_, err := ApplyAction(p, ActionChangePassword, ActionPayload{StrengthScore: &strength}, day1)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Posture.StrengthScore, "explicit strength is clamped")
}

func TestApplyAction_Enable2FA(t *testing.T) {
	p := NewPet(day1)
	ApplyDailyTick(p, day1, DefaultProbabilityCap, func() float64 { return 0.99 })
	energy, health := p.Status.Energy, p.Status.Health

	_, err := ApplyAction(p, ActionEnable2FA, ActionPayload{}, day1)
	require.NoError(t, err)
	assert.True(t, p.Posture.TwoFactorEnabled)
	assert.Equal(t, energy-8, p.Status.Energy)
	assert.Equal(t, health+3, p.Status.Health)
	assert.Equal(t, 80, p.Risk.Score)
}

func TestApplyAction_TurnOnMonitoring(t *testing.T) {
	p := NewPet(day1)
	ApplyDailyTick(p, day1, DefaultProbabilityCap, func() float64 { return 0.99 })

	_, err := ApplyAction(p, ActionTurnOnMonitoring, ActionPayload{}, day1)
	require.NoError(t, err)
	assert.True(t, p.Posture.BreachMonitoringEnabled)
	assert.Equal(t, 90, p.Risk.Score)
}

func TestApplyAction_LockDownSessionsLeavesPostureAlone(t *testing.T) {
	p := NewPet(day1)
	ApplyDailyTick(p, day1, DefaultProbabilityCap, func() float64 { return 0.99 })
	posture := p.Posture

	_, err := ApplyAction(p, ActionLockDownSessions, ActionPayload{}, day1)
	require.NoError(t, err)
	assert.Equal(t, posture, p.Posture)
	assert.Equal(t, 1, p.Daily.ActionsUsed, "still consumes the budget")
}

func TestApplyAction_BudgetExhausted(t *testing.T) {
	p := tickedPet(t, day1)
	require.Equal(t, DefaultMaxActions, p.Daily.MaxActions)

	for i := 0; i < DefaultMaxActions; i++ {
		_, err := ApplyAction(p, ActionLockDownSessions, ActionPayload{}, day1)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, p.RemainingActions())

	_, err := ApplyAction(p, ActionLockDownSessions, ActionPayload{}, day1)
	assert.ErrorIs(t, err, ErrNoActionsLeft)
}

func TestApplyAction_FailedActionKeepsBudget(t *testing.T) {
	p := tickedPet(t, day1)
	_, err := ApplyAction(p, "notAnAction", ActionPayload{}, day1)
	require.Error(t, err)
	assert.Equal(t, 0, p.Daily.ActionsUsed)
}

func TestRemainingActions(t *testing.T) {
	p := NewPet(day1)
	assert.Equal(t, DefaultMaxActions, p.RemainingActions())
	p.Daily.ActionsUsed = 2
	assert.Equal(t, 1, p.RemainingActions())
	p.Daily.ActionsUsed = 7
	assert.Equal(t, 0, p.RemainingActions())
}
