package petsim

import "time"

// Risk levels and incident severities share the same three-tier scale.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

const (
	IncidentStatusActive = "active"

	DefaultMaxActions = 3

	// Fresh-pet defaults: a deliberately weak starting posture so the
	// simulation has somewhere to go.
	defaultStrengthScore = 45
	defaultMood          = 70
	defaultHealth        = 75
	defaultEnergy        = 70
)

// Posture holds the simulated password-hygiene facts a pet is scored on.
type Posture struct {
	StrengthScore           int  `json:"strengthScore"`
	ReusedPassword          bool `json:"reusedPassword"`
	TwoFactorEnabled        bool `json:"twoFactorEnabled"`
	BreachMonitoringEnabled bool `json:"breachMonitoringEnabled"`
}

// Risk is always derived from posture (plus at most one fresh delta); it is
// never a free-standing source of truth.
type Risk struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// Vitals are the pet's visible stats, each clamped to [0,100].
type Vitals struct {
	Mood   int `json:"mood"`
	Health int `json:"health"`
	Energy int `json:"energy"`
}

// Daily is the per-calendar-day action budget and tick gate.
type Daily struct {
	DateKey     string `json:"dateKey"`
	ActionsUsed int    `json:"actionsUsed"`
	MaxActions  int    `json:"maxActions"`
	TickApplied bool   `json:"tickApplied"`
}

// ActiveIncident holds the at-most-one currently open incident. An empty Type
// means none.
type ActiveIncident struct {
	Type      string     `json:"type"`
	Label     string     `json:"label,omitempty"`
	Severity  string     `json:"severity"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
}

// IncidentRecord is one entry of the append-only incident audit trail.
type IncidentRecord struct {
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Outcome    string    `json:"outcome"`
	CreatedAt  time.Time `json:"createdAt"`
	ResolvedAt time.Time `json:"resolvedAt"`
}

// Streak tracks consecutive daily ticks.
type Streak struct {
	Current            int    `json:"current"`
	Best               int    `json:"best"`
	LastCheckInDateKey string `json:"lastCheckInDateKey"`
}

// MiniGameState is the per-game-type daily session: the deterministic question
// set for the day plus answered/correct bookkeeping (insertion order kept).
type MiniGameState struct {
	DateKey          string     `json:"dateKey"`
	DailyQuestionIDs []string   `json:"dailyQuestionIds"`
	AnsweredIDs      []string   `json:"answeredIds"`
	CorrectIDs       []string   `json:"correctIds"`
	LastPlayedAt     *time.Time `json:"lastPlayedAt"`
}

// DailyQuizQuestion is one question of the legacy five-question daily quiz,
// with the user's answer recorded in place once given.
type DailyQuizQuestion struct {
	QuestionID      string   `json:"questionId"`
	Text            string   `json:"text"`
	Options         []string `json:"options"`
	CorrectIndex    int      `json:"correctIndex"`
	Explanation     string   `json:"explanation"`
	UserAnswerIndex *int     `json:"userAnswerIndex"`
	IsCorrect       *bool    `json:"isCorrect"`
}

// DailyQuizProgress mirrors the legacy quiz counters for the current day.
type DailyQuizProgress struct {
	DateKey       string `json:"dateKey"`
	AnsweredCount int    `json:"answeredCount"`
	CorrectCount  int    `json:"correctCount"`
}

// Pet is the full aggregate, one per user, persisted as a single JSON
// document and re-derived entirely from storage on every request.
type Pet struct {
	Posture         Posture                   `json:"posture"`
	Risk            Risk                      `json:"risk"`
	Status          Vitals                    `json:"pet"`
	Daily           Daily                     `json:"daily"`
	ActiveIncident  ActiveIncident            `json:"activeIncident"`
	IncidentHistory []IncidentRecord          `json:"incidentHistory"`
	Streak          Streak                    `json:"streak"`
	MiniGames       map[string]*MiniGameState `json:"miniGames"`
	DailyQuestions  []DailyQuizQuestion       `json:"dailyQuestions"`
	DailyProgress   DailyQuizProgress         `json:"dailyProgress"`
	LastDailyReset  *time.Time                `json:"lastDailyReset"`
	LastUpdated     time.Time                 `json:"lastUpdated"`
}

// Clamp bounds a percentage-like value to [0,100]. Every mutation in the
// engine goes through it.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// NewPet builds a fresh aggregate with the default weak posture.
func NewPet(now time.Time) *Pet {
	p := &Pet{
		Posture: Posture{
			StrengthScore:  defaultStrengthScore,
			ReusedPassword: true,
		},
		Status: Vitals{
			Mood:   defaultMood,
			Health: defaultHealth,
			Energy: defaultEnergy,
		},
		Daily: Daily{
			MaxActions: DefaultMaxActions,
		},
		MiniGames:       map[string]*MiniGameState{},
		IncidentHistory: []IncidentRecord{},
		LastUpdated:     now,
	}
	p.Risk = CalculateRisk(p.Posture)
	return p
}

// Hydrate normalizes an aggregate loaded from storage so all later logic can
// assume fully-populated fields: missing containers are initialized, numeric
// fields clamped, and the daily budget given its default size. Performed once
// per load instead of defaulting at every access.
func (p *Pet) Hydrate() {
	p.Posture.StrengthScore = Clamp(p.Posture.StrengthScore)
	p.Status.Mood = Clamp(p.Status.Mood)
	p.Status.Health = Clamp(p.Status.Health)
	p.Status.Energy = Clamp(p.Status.Energy)

	if p.Daily.MaxActions < 1 {
		p.Daily.MaxActions = DefaultMaxActions
	}
	if p.Daily.ActionsUsed < 0 {
		p.Daily.ActionsUsed = 0
	}
	if p.Risk.Level == "" {
		p.Risk = CalculateRisk(p.Posture)
	}
	if p.MiniGames == nil {
		p.MiniGames = map[string]*MiniGameState{}
	}
	if p.IncidentHistory == nil {
		p.IncidentHistory = []IncidentRecord{}
	}
}

// HasActiveIncident reports whether an incident is currently open.
func (p *Pet) HasActiveIncident() bool {
	return p.ActiveIncident.Status == IncidentStatusActive && p.ActiveIncident.Type != ""
}

func (p *Pet) clearActiveIncident() {
	p.ActiveIncident = ActiveIncident{}
}
