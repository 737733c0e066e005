package petsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestMiniGameCatalog(t *testing.T) {
	for _, gameType := range MiniGameTypes() {
		def := FindMiniGame(gameType)
		require.NotNil(t, def, gameType)
		assert.Equal(t, 7, def.DailyCount)
		assert.Len(t, def.Questions, 15)

		seen := map[string]bool{}
		for _, q := range def.Questions {
			assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
			seen[q.ID] = true
			assert.NotEmpty(t, q.Prompt)
			assert.NotEmpty(t, q.Explanation)
		}
	}
	assert.Nil(t, FindMiniGame("sudoku"))
}

func TestEnsureMiniGameDay_StableWithinDay(t *testing.T) {
	p := NewPet(day1)

	state, changed, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, state.DailyQuestionIDs, 7)

	// Unique ids.
	seen := map[string]bool{}
	for _, id := range state.DailyQuestionIDs {
		assert.False(t, seen[id])
		seen[id] = true
	}

	// Re-fetch later the same day: identical set, no state change.
	again, changed, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1.Add(8*time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, state.DailyQuestionIDs, again.DailyQuestionIDs)
}

func TestEnsureMiniGameDay_RotatesAcrossDays(t *testing.T) {
	p := NewPet(day1)
	state, _, err := EnsureMiniGameDay(p, 7, GameFillBlanks, day1)
	require.NoError(t, err)
	first := append([]string{}, state.DailyQuestionIDs...)

	day2 := day1.AddDate(0, 0, 1)
	state, changed, err := EnsureMiniGameDay(p, 7, GameFillBlanks, day2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotEqual(t, first, state.DailyQuestionIDs)
	assert.Empty(t, state.AnsweredIDs, "rollover clears progress")
}

func TestEnsureMiniGameDay_SameSeedSameSet(t *testing.T) {
	a := NewPet(day1)
	b := NewPet(day1)

	sa, _, err := EnsureMiniGameDay(a, 42, GamePasswordStrengthener, day1)
	require.NoError(t, err)
	sb, _, err := EnsureMiniGameDay(b, 42, GamePasswordStrengthener, day1)
	require.NoError(t, err)
	assert.Equal(t, sa.DailyQuestionIDs, sb.DailyQuestionIDs)

	c := NewPet(day1)
	sc, _, err := EnsureMiniGameDay(c, 43, GamePasswordStrengthener, day1)
	require.NoError(t, err)
	assert.NotEqual(t, sa.DailyQuestionIDs, sc.DailyQuestionIDs, "different users draw different sets")
}

func TestEnsureMiniGameDay_UnknownType(t *testing.T) {
	p := NewPet(day1)
	_, _, err := EnsureMiniGameDay(p, 7, "sudoku", day1)
	assert.ErrorIs(t, err, ErrUnknownMiniGame)
}

func TestSubmitMiniGameAnswer_TrueFalse(t *testing.T) {
	p := NewPet(day1)
	p.Posture = safePosture
	def := FindMiniGame(GameTrueFalse)

	state, _, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1)
	require.NoError(t, err)

	qid := state.DailyQuestionIDs[0]
	q := def.findQuestion(qid)
	require.NotNil(t, q)

	mood, health := p.Status.Mood, p.Status.Health
	outcome, err := SubmitMiniGameAnswer(p, 7, GameTrueFalse, qid, MiniGameAnswer{Bool: boolPtr(q.BoolAnswer)}, day1)
	require.NoError(t, err)

	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, q.Explanation, outcome.Explanation)
	assert.Equal(t, mood+3, p.Status.Mood)
	assert.Equal(t, health+2, p.Status.Health)
	assert.Equal(t, 19, p.Risk.Score, "baseline 25 with the -6 reward")
	assert.Equal(t, []string{qid}, state.AnsweredIDs)
	assert.Equal(t, []string{qid}, state.CorrectIDs)
	require.NotNil(t, state.LastPlayedAt)
}

func TestSubmitMiniGameAnswer_TrueFalseWrong(t *testing.T) {
	p := NewPet(day1)
	p.Posture = safePosture
	def := FindMiniGame(GameTrueFalse)

	state, _, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1)
	require.NoError(t, err)
	qid := state.DailyQuestionIDs[0]
	q := def.findQuestion(qid)

	mood, health := p.Status.Mood, p.Status.Health
	outcome, err := SubmitMiniGameAnswer(p, 7, GameTrueFalse, qid, MiniGameAnswer{Bool: boolPtr(!q.BoolAnswer)}, day1)
	require.NoError(t, err)

	assert.False(t, outcome.IsCorrect)
	assert.Equal(t, mood-3, p.Status.Mood)
	assert.Equal(t, health-2, p.Status.Health)
	assert.Equal(t, 29, p.Risk.Score, "baseline 25 with the +4 penalty")
	assert.Empty(t, state.CorrectIDs)
}

func TestSubmitMiniGameAnswer_AnswerShapeValidation(t *testing.T) {
	p := NewPet(day1)

	tf, _, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1)
	require.NoError(t, err)
	_, err = SubmitMiniGameAnswer(p, 7, GameTrueFalse, tf.DailyQuestionIDs[0], MiniGameAnswer{Index: intPtr(1)}, day1)
	assert.ErrorIs(t, err, ErrInvalidAnswerFormat)

	ps, _, err := EnsureMiniGameDay(p, 7, GamePasswordStrengthener, day1)
	require.NoError(t, err)
	_, err = SubmitMiniGameAnswer(p, 7, GamePasswordStrengthener, ps.DailyQuestionIDs[0], MiniGameAnswer{Bool: boolPtr(true)}, day1)
	assert.ErrorIs(t, err, ErrInvalidAnswerFormat)
	_, err = SubmitMiniGameAnswer(p, 7, GamePasswordStrengthener, ps.DailyQuestionIDs[0], MiniGameAnswer{Index: intPtr(3)}, day1)
	assert.ErrorIs(t, err, ErrInvalidAnswerFormat)
}

func TestSubmitMiniGameAnswer_RejectsRepeatsAndStrays(t *testing.T) {
	p := NewPet(day1)
	def := FindMiniGame(GameTrueFalse)
	state, _, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1)
	require.NoError(t, err)

	qid := state.DailyQuestionIDs[0]
	q := def.findQuestion(qid)
	_, err = SubmitMiniGameAnswer(p, 7, GameTrueFalse, qid, MiniGameAnswer{Bool: boolPtr(q.BoolAnswer)}, day1)
	require.NoError(t, err)

	_, err = SubmitMiniGameAnswer(p, 7, GameTrueFalse, qid, MiniGameAnswer{Bool: boolPtr(q.BoolAnswer)}, day1)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	// A catalog question that did not make today's cut.
	var stray string
	for _, cq := range def.Questions {
		if !containsID(state.DailyQuestionIDs, cq.ID) {
			stray = cq.ID
			break
		}
	}
	require.NotEmpty(t, stray)
	_, err = SubmitMiniGameAnswer(p, 7, GameTrueFalse, stray, MiniGameAnswer{Bool: boolPtr(true)}, day1)
	assert.ErrorIs(t, err, ErrQuestionNotInSet)
}

func TestMiniGameProgress(t *testing.T) {
	p := NewPet(day1)
	def := FindMiniGame(GameTrueFalse)
	state, _, err := EnsureMiniGameDay(p, 7, GameTrueFalse, day1)
	require.NoError(t, err)

	progress := state.Progress(def)
	assert.Equal(t, GameTrueFalse, progress.Type)
	assert.Equal(t, 7, progress.TotalCount)
	assert.Equal(t, 0, progress.AnsweredCount)
	assert.NotNil(t, progress.AnsweredIDs)

	views := state.DailyQuestionViews(def)
	require.Len(t, views, 7)
	for _, v := range views {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Prompt)
	}
}
