package petsim

import (
	"errors"
	"time"
)

// Action kinds accepted by ApplyAction.
const (
	ActionChangePassword   = "changePassword"
	ActionEnable2FA        = "enable2FA"
	ActionTurnOnMonitoring = "turnOnMonitoring"
	ActionLockDownSessions = "lockDownSessions"
)

// Sequencing and validation failures surfaced by the engine. Controllers map
// these onto HTTP statuses; none of them mutate the aggregate.
var (
	ErrTickRequired  = errors.New("daily tick required before taking actions")
	ErrNoActionsLeft = errors.New("no actions left for today")
	ErrInvalidAction = errors.New("invalid action type")
)

// ActionPayload carries optional per-action parameters.
type ActionPayload struct {
	// StrengthScore optionally sets the new password strength for
	// changePassword; nil applies the default +20 improvement.
	StrengthScore *int `json:"strengthScore"`
}

// ActionResult describes what an applied action changed.
type ActionResult struct {
	ActionType string   `json:"actionType"`
	Notes      []string `json:"notes"`
}

// ValidActionType reports whether the kind is one of the four known actions.
func ValidActionType(kind string) bool {
	switch kind {
	case ActionChangePassword, ActionEnable2FA, ActionTurnOnMonitoring, ActionLockDownSessions:
		return true
	}
	return false
}

// ApplyAction applies one security-hardening action against the pet, subject
// to the daily budget. Preconditions: today's tick applied, budget not
// exhausted. On success the budget is consumed and risk recomputed from the
// new posture.
func ApplyAction(p *Pet, kind string, payload ActionPayload, now time.Time) (*ActionResult, error) {
	if !ValidActionType(kind) {
		return nil, ErrInvalidAction
	}
	if p.Daily.DateKey != DateKey(now) || !p.Daily.TickApplied {
		return nil, ErrTickRequired
	}
	if p.Daily.ActionsUsed >= p.Daily.MaxActions {
		return nil, ErrNoActionsLeft
	}

	result := &ActionResult{ActionType: kind}

	switch kind {
	case ActionChangePassword:
		if payload.StrengthScore != nil {
			p.Posture.StrengthScore = Clamp(*payload.StrengthScore)
		} else {
			p.Posture.StrengthScore = Clamp(p.Posture.StrengthScore + 20)
		}
		p.Posture.ReusedPassword = false
		p.Status.Energy = Clamp(p.Status.Energy - 15)
		p.Status.Mood = Clamp(p.Status.Mood + 4)
		result.Notes = append(result.Notes, "Password updated and reuse removed.")
	case ActionEnable2FA:
		p.Posture.TwoFactorEnabled = true
		p.Status.Energy = Clamp(p.Status.Energy - 8)
		p.Status.Health = Clamp(p.Status.Health + 3)
		result.Notes = append(result.Notes, "2FA enabled for stronger login protection.")
	case ActionTurnOnMonitoring:
		p.Posture.BreachMonitoringEnabled = true
		p.Status.Energy = Clamp(p.Status.Energy - 6)
		p.Status.Mood = Clamp(p.Status.Mood + 2)
		result.Notes = append(result.Notes, "Breach monitoring enabled for earlier alerts.")
	case ActionLockDownSessions:
		p.Status.Energy = Clamp(p.Status.Energy - 10)
		p.Status.Health = Clamp(p.Status.Health + 2)
		result.Notes = append(result.Notes, "Suspicious sessions logged out.")
	}

	p.Risk = CalculateRisk(p.Posture)
	p.Daily.ActionsUsed++
	p.LastUpdated = now

	return result, nil
}

// RemainingActions reports how many actions are left in today's budget.
func (p *Pet) RemainingActions() int {
	left := p.Daily.MaxActions - p.Daily.ActionsUsed
	if left < 0 {
		return 0
	}
	return left
}
