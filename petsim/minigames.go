package petsim

import (
	"errors"
	"time"
)

// Mini-game types. All three share one session mechanism and differ only in
// answer shape and reward table.
const (
	GameTrueFalse            = "trueFalse"
	GamePasswordStrengthener = "passwordStrengthener"
	GameFillBlanks           = "fillBlanks"
)

var (
	ErrUnknownMiniGame     = errors.New("unknown mini-game type")
	ErrQuestionNotInSet    = errors.New("question is not in today's set")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrInvalidAnswerFormat = errors.New("invalid answer format")
)

// MiniGameQuestion is one catalog question. BoolAnswer is used by trueFalse;
// IndexAnswer by the other two types.
type MiniGameQuestion struct {
	ID          string
	Prompt      string
	Options     []string
	BoolAnswer  bool
	IndexAnswer int
	Explanation string
}

// MiniGameReward is the per-outcome effect bundle.
type MiniGameReward struct {
	Correct   ResponseEffects
	Incorrect ResponseEffects
}

// MiniGameDefinition is one entry of the static mini-game catalog.
type MiniGameDefinition struct {
	Type       string
	Label      string
	DailyCount int
	Reward     MiniGameReward
	Questions  []MiniGameQuestion
}

// MiniGameTypes lists the supported game types in a stable order.
func MiniGameTypes() []string {
	return []string{GameTrueFalse, GamePasswordStrengthener, GameFillBlanks}
}

// FindMiniGame looks up a game definition by type.
func FindMiniGame(gameType string) *MiniGameDefinition {
	for i := range miniGameCatalog {
		if miniGameCatalog[i].Type == gameType {
			return &miniGameCatalog[i]
		}
	}
	return nil
}

func (d *MiniGameDefinition) findQuestion(id string) *MiniGameQuestion {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// MiniGameAnswer is the submitted answer, decoded from JSON which may carry a
// boolean or a number depending on the game type.
type MiniGameAnswer struct {
	Bool  *bool
	Index *int
}

// MiniGameProgress is the per-type daily progress snapshot returned to
// clients. "All done for today" is derived from the counts, never stored.
type MiniGameProgress struct {
	Type          string   `json:"type"`
	Label         string   `json:"label"`
	TotalCount    int      `json:"totalCount"`
	AnsweredCount int      `json:"answeredCount"`
	CorrectCount  int      `json:"correctCount"`
	AnsweredIDs   []string `json:"answeredIds"`
}

// MiniGameQuestionView is a catalog question with the answer withheld.
type MiniGameQuestionView struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

// SubmitOutcome reports one scored submission.
type SubmitOutcome struct {
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// EnsureMiniGameDay makes sure the per-user daily question set for the game
// type exists for today. The set is a deterministic function of
// (userID, gameType, dateKey): a seeded shuffle of the catalog indices, first
// DailyCount taken. Recomputed only when the stored date key rolls over, so
// repeated fetches within a day are stable. Returns whether state changed.
func EnsureMiniGameDay(p *Pet, userID uint, gameType string, now time.Time) (*MiniGameState, bool, error) {
	def := FindMiniGame(gameType)
	if def == nil {
		return nil, false, ErrUnknownMiniGame
	}

	todayKey := DateKey(now)
	state := p.MiniGames[gameType]
	if state != nil && state.DateKey == todayKey && len(state.DailyQuestionIDs) == def.DailyCount {
		return state, false, nil
	}

	order := shuffledIndices(len(def.Questions), seedFor(userID, gameType, todayKey))
	count := def.DailyCount
	if count > len(order) {
		count = len(order)
	}
	ids := make([]string, 0, count)
	for _, qi := range order[:count] {
		ids = append(ids, def.Questions[qi].ID)
	}

	state = &MiniGameState{
		DateKey:          todayKey,
		DailyQuestionIDs: ids,
		AnsweredIDs:      []string{},
		CorrectIDs:       []string{},
	}
	p.MiniGames[gameType] = state
	return state, true, nil
}

// Progress builds the daily progress snapshot for one game type.
func (s *MiniGameState) Progress(def *MiniGameDefinition) MiniGameProgress {
	answered := s.AnsweredIDs
	if answered == nil {
		answered = []string{}
	}
	return MiniGameProgress{
		Type:          def.Type,
		Label:         def.Label,
		TotalCount:    len(s.DailyQuestionIDs),
		AnsweredCount: len(s.AnsweredIDs),
		CorrectCount:  len(s.CorrectIDs),
		AnsweredIDs:   answered,
	}
}

// DailyQuestionViews resolves today's question ids into client-safe views.
func (s *MiniGameState) DailyQuestionViews(def *MiniGameDefinition) []MiniGameQuestionView {
	views := make([]MiniGameQuestionView, 0, len(s.DailyQuestionIDs))
	for _, id := range s.DailyQuestionIDs {
		q := def.findQuestion(id)
		if q == nil {
			continue
		}
		views = append(views, MiniGameQuestionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options})
	}
	return views
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// scoreAnswer validates the answer shape for the game type and compares it to
// the stored answer.
func scoreAnswer(def *MiniGameDefinition, q *MiniGameQuestion, answer MiniGameAnswer) (bool, error) {
	switch def.Type {
	case GameTrueFalse:
		if answer.Bool == nil {
			return false, ErrInvalidAnswerFormat
		}
		return *answer.Bool == q.BoolAnswer, nil
	case GamePasswordStrengthener:
		if answer.Index == nil || *answer.Index < 0 || *answer.Index > 2 {
			return false, ErrInvalidAnswerFormat
		}
		return *answer.Index == q.IndexAnswer, nil
	case GameFillBlanks:
		if answer.Index == nil || *answer.Index < 0 || *answer.Index >= len(q.Options) {
			return false, ErrInvalidAnswerFormat
		}
		return *answer.Index == q.IndexAnswer, nil
	}
	return false, ErrUnknownMiniGame
}

// SubmitMiniGameAnswer validates and scores one submission against today's
// set, applies the type-specific reward bundle (risk recomputed from the
// posture baseline plus the reward delta, same non-compounding policy as
// incident responses), and records the answer.
func SubmitMiniGameAnswer(p *Pet, userID uint, gameType, questionID string, answer MiniGameAnswer, now time.Time) (*SubmitOutcome, error) {
	def := FindMiniGame(gameType)
	if def == nil {
		return nil, ErrUnknownMiniGame
	}

	state, _, err := EnsureMiniGameDay(p, userID, gameType, now)
	if err != nil {
		return nil, err
	}

	if !containsID(state.DailyQuestionIDs, questionID) {
		return nil, ErrQuestionNotInSet
	}
	if containsID(state.AnsweredIDs, questionID) {
		return nil, ErrAlreadyAnswered
	}

	q := def.findQuestion(questionID)
	if q == nil {
		return nil, ErrQuestionNotInSet
	}

	isCorrect, err := scoreAnswer(def, q, answer)
	if err != nil {
		return nil, err
	}

	effects := def.Reward.Incorrect
	if isCorrect {
		effects = def.Reward.Correct
	}
	p.Risk = riskFromBaseline(p.Posture, effects.RiskDelta)
	p.Status.Mood = Clamp(p.Status.Mood + effects.MoodDelta)
	p.Status.Health = Clamp(p.Status.Health + effects.HealthDelta)

	state.AnsweredIDs = append(state.AnsweredIDs, questionID)
	if isCorrect {
		state.CorrectIDs = append(state.CorrectIDs, questionID)
	}
	played := now
	state.LastPlayedAt = &played
	p.LastUpdated = now

	return &SubmitOutcome{IsCorrect: isCorrect, Explanation: q.Explanation}, nil
}
