package petsim

import "time"

// CyberPetStats is the companion per-user aggregate-stats record, persisted
// alongside the user profile and updated after tick, action, and incident
// response operations.
type CyberPetStats struct {
	TakeoversPrevented           int        `json:"takeoversPrevented"`
	TotalIncidents               int        `json:"totalIncidents"`
	ResolvedIncidents            int        `json:"resolvedIncidents"`
	AvgRiskScore                 int        `json:"avgRiskScore"`
	RiskSamples                  int        `json:"riskSamples"`
	TwoFactorAdoptionDate        *time.Time `json:"twoFactorAdoptionDate"`
	BreachMonitoringAdoptionDate *time.Time `json:"breachMonitoringAdoptionDate"`
}

// RecordRiskSample folds one risk score into the running average.
func (s *CyberPetStats) RecordRiskSample(riskScore int) {
	next := s.RiskSamples + 1
	total := s.AvgRiskScore*s.RiskSamples + riskScore
	// Round to nearest instead of truncating.
	s.AvgRiskScore = (total + next/2) / next
	s.RiskSamples = next
}

// SyncAdoptionDates stamps first-adoption timestamps for 2FA and breach
// monitoring once the posture shows them enabled.
func (s *CyberPetStats) SyncAdoptionDates(posture Posture, now time.Time) {
	if posture.TwoFactorEnabled && s.TwoFactorAdoptionDate == nil {
		t := now
		s.TwoFactorAdoptionDate = &t
	}
	if posture.BreachMonitoringEnabled && s.BreachMonitoringAdoptionDate == nil {
		t := now
		s.BreachMonitoringAdoptionDate = &t
	}
}

// RecordResolution counts a resolved incident. Any account-takeover response
// stronger than the bare minimum counts as a prevented takeover.
func (s *CyberPetStats) RecordResolution(result ResponseResult) {
	s.ResolvedIncidents++
	if result.IncidentType == "account_takeover" && result.ResponseID != "minimal_response" {
		s.TakeoversPrevented++
	}
}
