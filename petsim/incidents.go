package petsim

import "time"

// DefaultProbabilityCap keeps any single incident from becoming a
// guaranteed-trigger day. Tunable via configuration, not an invariant.
const DefaultProbabilityCap = 0.85

// PostureModifiers are the named probability adjustments an incident applies
// based on the current posture. Zero values mean "modifier not used"; real
// modifiers in the catalog are never exactly zero.
type PostureModifiers struct {
	ReusedPassword            float64
	WeakStrengthThreshold     int
	WeakStrengthPenalty       float64
	TwoFactorEnabled          float64
	BreachMonitoringEnabled   float64
	MonitoringOffDelayedBonus float64
	HighRiskThreshold         int
	HighRiskPenalty           float64
	hasWeakStrengthRule       bool
	hasHighRiskRule           bool
}

// SeverityRules map risk-score upper bounds to severity tiers, walked
// low -> medium -> high.
type SeverityRules struct {
	LowMaxRisk    int
	MediumMaxRisk int
	HighMaxRisk   int
}

// ResponseCosts are the resources a response option consumes. Coins are
// reported to the caller and charged by the wallet, not by the engine.
type ResponseCosts struct {
	Energy int `json:"energy"`
	Coins  int `json:"coins"`
}

// ResponseEffects are the deltas a response applies to the pet.
type ResponseEffects struct {
	RiskDelta   int `json:"riskDelta"`
	MoodDelta   int `json:"moodDelta"`
	HealthDelta int `json:"healthDelta"`
}

// IncidentResponse is one fixed way to resolve an incident.
type IncidentResponse struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Costs   ResponseCosts   `json:"costs"`
	Effects ResponseEffects `json:"effects"`
}

// IncidentDefinition is one entry of the static incident catalog.
type IncidentDefinition struct {
	ID              string             `json:"id"`
	Label           string             `json:"label"`
	Description     string             `json:"description"`
	BaseProbability float64            `json:"baseProbability"`
	Modifiers       PostureModifiers   `json:"-"`
	Severity        SeverityRules      `json:"-"`
	Responses       []IncidentResponse `json:"responses"`
}

// incidentCatalog holds the immutable incident definitions, loaded once and
// never mutated at runtime.
var incidentCatalog = []IncidentDefinition{
	{
		ID:              "credential_stuffing",
		Label:           "Credential Stuffing Attempt",
		Description:     "Attackers tried leaked username-password pairs against your account.",
		BaseProbability: 0.22,
		Modifiers: PostureModifiers{
			ReusedPassword:          0.2,
			WeakStrengthThreshold:   50,
			WeakStrengthPenalty:     0.12,
			TwoFactorEnabled:        -0.15,
			BreachMonitoringEnabled: -0.05,
			hasWeakStrengthRule:     true,
		},
		Severity: SeverityRules{LowMaxRisk: 39, MediumMaxRisk: 69, HighMaxRisk: 100},
		Responses: []IncidentResponse{
			{
				ID:      "reset_password",
				Label:   "Reset to a unique strong password",
				Costs:   ResponseCosts{Energy: 20},
				Effects: ResponseEffects{RiskDelta: -18, MoodDelta: 5, HealthDelta: 3},
			},
			{
				ID:      "enable_2fa_now",
				Label:   "Enable 2FA immediately",
				Costs:   ResponseCosts{Energy: 10, Coins: 10},
				Effects: ResponseEffects{RiskDelta: -22, MoodDelta: 3, HealthDelta: 4},
			},
			{
				ID:      "ignore",
				Label:   "Ignore for now",
				Effects: ResponseEffects{RiskDelta: 12, MoodDelta: -8, HealthDelta: -10},
			},
		},
	},
	{
		ID:              "breach_alert",
		Label:           "Data Breach Alert",
		Description:     "A service tied to your account appears in a breach disclosure.",
		BaseProbability: 0.18,
		Modifiers: PostureModifiers{
			BreachMonitoringEnabled:   0.08,
			MonitoringOffDelayedBonus: 0.16,
			ReusedPassword:            0.1,
			TwoFactorEnabled:          -0.08,
		},
		Severity: SeverityRules{LowMaxRisk: 34, MediumMaxRisk: 64, HighMaxRisk: 100},
		Responses: []IncidentResponse{
			{
				ID:      "rotate_passwords",
				Label:   "Rotate affected passwords",
				Costs:   ResponseCosts{Energy: 25},
				Effects: ResponseEffects{RiskDelta: -20, MoodDelta: 4, HealthDelta: 4},
			},
			{
				ID:      "lock_sessions",
				Label:   "Log out all active sessions",
				Costs:   ResponseCosts{Energy: 12, Coins: 5},
				Effects: ResponseEffects{RiskDelta: -14, MoodDelta: 2, HealthDelta: 3},
			},
			{
				ID:      "delay_action",
				Label:   "Delay until tomorrow",
				Effects: ResponseEffects{RiskDelta: 14, MoodDelta: -6, HealthDelta: -8},
			},
		},
	},
	{
		ID:              "brute_force_attempt",
		Label:           "Brute Force Login Attempt",
		Description:     "Repeated password guesses are being attempted on your account.",
		BaseProbability: 0.2,
		Modifiers: PostureModifiers{
			WeakStrengthThreshold: 45,
			WeakStrengthPenalty:   0.16,
			ReusedPassword:        0.08,
			TwoFactorEnabled:      -0.12,
			hasWeakStrengthRule:   true,
		},
		Severity: SeverityRules{LowMaxRisk: 44, MediumMaxRisk: 74, HighMaxRisk: 100},
		Responses: []IncidentResponse{
			{
				ID:      "strengthen_password",
				Label:   "Create a longer passphrase",
				Costs:   ResponseCosts{Energy: 18},
				Effects: ResponseEffects{RiskDelta: -16, MoodDelta: 3, HealthDelta: 3},
			},
			{
				ID:      "activate_2fa",
				Label:   "Add 2FA protection",
				Costs:   ResponseCosts{Energy: 10, Coins: 10},
				Effects: ResponseEffects{RiskDelta: -20, MoodDelta: 2, HealthDelta: 4},
			},
			{
				ID:      "do_nothing",
				Label:   "Do nothing",
				Effects: ResponseEffects{RiskDelta: 10, MoodDelta: -5, HealthDelta: -7},
			},
		},
	},
	{
		ID:              "account_takeover",
		Label:           "Account Takeover",
		Description:     "Suspicious access confirmed. Your account is partially compromised.",
		BaseProbability: 0.1,
		Modifiers: PostureModifiers{
			HighRiskThreshold:       70,
			HighRiskPenalty:         0.2,
			ReusedPassword:          0.14,
			TwoFactorEnabled:        -0.16,
			BreachMonitoringEnabled: -0.06,
			hasHighRiskRule:         true,
		},
		Severity: SeverityRules{LowMaxRisk: 49, MediumMaxRisk: 79, HighMaxRisk: 100},
		Responses: []IncidentResponse{
			{
				ID:      "full_lockdown",
				Label:   "Full account lockdown",
				Costs:   ResponseCosts{Energy: 30, Coins: 15},
				Effects: ResponseEffects{RiskDelta: -26, MoodDelta: -2, HealthDelta: 6},
			},
			{
				ID:      "recover_and_rotate",
				Label:   "Recover account and rotate credentials",
				Costs:   ResponseCosts{Energy: 25, Coins: 10},
				Effects: ResponseEffects{RiskDelta: -22, HealthDelta: 5},
			},
			{
				ID:      "minimal_response",
				Label:   "Only reset password once",
				Costs:   ResponseCosts{Energy: 8},
				Effects: ResponseEffects{RiskDelta: -6, MoodDelta: -8, HealthDelta: -10},
			},
		},
	},
}

// IncidentCatalog returns the static incident definitions.
func IncidentCatalog() []IncidentDefinition {
	return incidentCatalog
}

// FindIncident looks up an incident definition by id.
func FindIncident(id string) *IncidentDefinition {
	for i := range incidentCatalog {
		if incidentCatalog[i].ID == id {
			return &incidentCatalog[i]
		}
	}
	return nil
}

// IncidentProbability computes the trigger probability for one incident given
// the current posture and risk score: base probability plus each matching
// modifier, bounded to [0, cap].
func IncidentProbability(def IncidentDefinition, posture Posture, riskScore int, cap float64) float64 {
	m := def.Modifiers
	strength := Clamp(posture.StrengthScore)

	p := def.BaseProbability
	if posture.ReusedPassword && m.ReusedPassword != 0 {
		p += m.ReusedPassword
	}
	if m.hasWeakStrengthRule && strength < m.WeakStrengthThreshold {
		p += m.WeakStrengthPenalty
	}
	if posture.TwoFactorEnabled && m.TwoFactorEnabled != 0 {
		p += m.TwoFactorEnabled
	}
	if posture.BreachMonitoringEnabled && m.BreachMonitoringEnabled != 0 {
		p += m.BreachMonitoringEnabled
	}
	if !posture.BreachMonitoringEnabled && m.MonitoringOffDelayedBonus != 0 {
		p += m.MonitoringOffDelayedBonus
	}
	if m.hasHighRiskRule && riskScore >= m.HighRiskThreshold {
		p += m.HighRiskPenalty
	}

	if p < 0 {
		return 0
	}
	if p > cap {
		return cap
	}
	return p
}

// ResolveSeverity walks the severity tiers low -> medium -> high and returns
// the first tier whose bound covers the score. Falls back to high.
func ResolveSeverity(riskScore int, rules SeverityRules) string {
	score := Clamp(riskScore)
	switch {
	case score <= rules.LowMaxRisk:
		return LevelLow
	case score <= rules.MediumMaxRisk:
		return LevelMedium
	case score <= rules.HighMaxRisk:
		return LevelHigh
	}
	return LevelHigh
}

// RollIncident performs one weighted draw over the catalog. draw supplies a
// uniform value in [0,1); production passes a non-reproducible source on
// purpose (incident variance is wanted, unlike mini-game selection). Returns
// nil when nothing triggers. Callers must not roll while an incident is
// already active.
func RollIncident(risk Risk, posture Posture, cap float64, now time.Time, draw func() float64) *ActiveIncident {
	if len(incidentCatalog) == 0 {
		return nil
	}

	type candidate struct {
		def  *IncidentDefinition
		prob float64
	}
	candidates := make([]candidate, 0, len(incidentCatalog))
	for i := range incidentCatalog {
		p := IncidentProbability(incidentCatalog[i], posture, Clamp(risk.Score), cap)
		if p > 0 {
			candidates = append(candidates, candidate{def: &incidentCatalog[i], prob: p})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	roll := draw()
	running := 0.0
	for _, c := range candidates {
		running += c.prob
		if roll <= running {
			created := now
			return &ActiveIncident{
				Type:      c.def.ID,
				Label:     c.def.Label,
				Severity:  ResolveSeverity(Clamp(risk.Score), c.def.Severity),
				Status:    IncidentStatusActive,
				CreatedAt: &created,
			}
		}
	}
	return nil
}
