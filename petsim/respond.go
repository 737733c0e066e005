package petsim

import (
	"errors"
	"time"
)

var (
	ErrNoActiveIncident     = errors.New("no active incident to resolve")
	ErrIncidentNotInCatalog = errors.New("incident definition not found")
	ErrInvalidResponse      = errors.New("invalid response option")
)

// ResponseResult reports the outcome of resolving an incident. CoinCost is
// informational; the wallet charge happens outside the engine.
type ResponseResult struct {
	IncidentType  string `json:"incidentType"`
	ResponseID    string `json:"responseId"`
	ResponseLabel string `json:"responseLabel"`
	CoinCost      int    `json:"coinCost"`
}

// ApplyIncidentResponse resolves the active incident with one of its
// catalog-defined response options: effect deltas are applied on top of a
// freshly recomputed posture-baseline risk (never on a cached score), the
// energy cost is charged, an immutable history record appended, and the
// active incident cleared.
func ApplyIncidentResponse(p *Pet, responseID string, now time.Time) (*ResponseResult, error) {
	if !p.HasActiveIncident() {
		return nil, ErrNoActiveIncident
	}

	def := FindIncident(p.ActiveIncident.Type)
	if def == nil {
		return nil, ErrIncidentNotInCatalog
	}

	var response *IncidentResponse
	for i := range def.Responses {
		if def.Responses[i].ID == responseID {
			response = &def.Responses[i]
			break
		}
	}
	if response == nil {
		return nil, ErrInvalidResponse
	}

	effects := response.Effects
	p.Risk = riskFromBaseline(p.Posture, effects.RiskDelta)
	p.Status.Mood = Clamp(p.Status.Mood + effects.MoodDelta)
	p.Status.Health = Clamp(p.Status.Health + effects.HealthDelta)
	p.Status.Energy = Clamp(p.Status.Energy - response.Costs.Energy)

	severity := p.ActiveIncident.Severity
	if severity == "" {
		severity = LevelMedium
	}
	createdAt := now
	if p.ActiveIncident.CreatedAt != nil {
		createdAt = *p.ActiveIncident.CreatedAt
	}
	p.IncidentHistory = append(p.IncidentHistory, IncidentRecord{
		Type:       p.ActiveIncident.Type,
		Severity:   severity,
		Outcome:    response.Label,
		CreatedAt:  createdAt,
		ResolvedAt: now,
	})

	p.clearActiveIncident()
	p.LastUpdated = now

	return &ResponseResult{
		IncidentType:  def.ID,
		ResponseID:    response.ID,
		ResponseLabel: response.Label,
		CoinCost:      response.Costs.Coins,
	}, nil
}
