package petsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyQuizBank(t *testing.T) {
	bank := DailyQuizBank()
	require.GreaterOrEqual(t, len(bank), DefaultDailyQuestionCount)

	seen := map[string]bool{}
	for _, q := range bank {
		assert.False(t, seen[q.ID], "duplicate quiz id %s", q.ID)
		seen[q.ID] = true
		require.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectIndex, 0)
		assert.Less(t, q.CorrectIndex, 4)
		assert.NotEmpty(t, q.Explanation)
	}
}

func TestEnsureDailyQuestions(t *testing.T) {
	p := NewPet(day1)

	changed, err := EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day1)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, p.DailyQuestions, DefaultDailyQuestionCount)
	assert.Equal(t, DateKey(day1), p.DailyProgress.DateKey)
	require.NotNil(t, p.LastDailyReset)

	// Same day: stable set, no change.
	first := make([]string, 0, len(p.DailyQuestions))
	for _, q := range p.DailyQuestions {
		first = append(first, q.QuestionID)
	}
	changed, err = EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day1.Add(10*time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)

	// Next day: fresh set, progress reset.
	day2 := day1.AddDate(0, 0, 1)
	changed, err = EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, p.DailyProgress.AnsweredCount)

	second := make([]string, 0, len(p.DailyQuestions))
	for _, q := range p.DailyQuestions {
		second = append(second, q.QuestionID)
	}
	assert.NotEqual(t, first, second)
}

func TestEnsureDailyQuestions_BankTooSmall(t *testing.T) {
	p := NewPet(day1)
	_, err := EnsureDailyQuestions(p, 7, len(DailyQuizBank())+1, day1)
	assert.ErrorIs(t, err, ErrQuestionBankTooSmall)
}

func TestAnswerDailyQuestion(t *testing.T) {
	p := NewPet(day1)
	_, err := EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day1)
	require.NoError(t, err)

	q := p.DailyQuestions[0]
	health := p.Status.Health

	outcome, err := p.AnswerDailyQuestion(0, q.CorrectIndex, day1)
	require.NoError(t, err)
	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, health+5, p.Status.Health)
	assert.Equal(t, 1, p.DailyProgress.AnsweredCount)
	assert.Equal(t, 1, p.DailyProgress.CorrectCount)

	stored := p.DailyQuestions[0]
	require.NotNil(t, stored.UserAnswerIndex)
	assert.Equal(t, q.CorrectIndex, *stored.UserAnswerIndex)
	require.NotNil(t, stored.IsCorrect)
	assert.True(t, *stored.IsCorrect)
}

func TestAnswerDailyQuestion_Incorrect(t *testing.T) {
	p := NewPet(day1)
	_, err := EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day1)
	require.NoError(t, err)

	wrong := (p.DailyQuestions[1].CorrectIndex + 1) % 4
	health := p.Status.Health

	outcome, err := p.AnswerDailyQuestion(1, wrong, day1)
	require.NoError(t, err)
	assert.False(t, outcome.IsCorrect)
	assert.Equal(t, health-7, p.Status.Health)
	assert.Equal(t, 1, p.DailyProgress.AnsweredCount)
	assert.Equal(t, 0, p.DailyProgress.CorrectCount)
}

func TestAnswerDailyQuestion_Validation(t *testing.T) {
	p := NewPet(day1)
	_, err := EnsureDailyQuestions(p, 7, DefaultDailyQuestionCount, day1)
	require.NoError(t, err)

	_, err = p.AnswerDailyQuestion(-1, 0, day1)
	assert.ErrorIs(t, err, ErrInvalidQuestionIndex)
	_, err = p.AnswerDailyQuestion(DefaultDailyQuestionCount, 0, day1)
	assert.ErrorIs(t, err, ErrInvalidQuestionIndex)
	_, err = p.AnswerDailyQuestion(0, 4, day1)
	assert.ErrorIs(t, err, ErrInvalidAnswerIndex)

	_, err = p.AnswerDailyQuestion(0, p.DailyQuestions[0].CorrectIndex, day1)
	require.NoError(t, err)
	_, err = p.AnswerDailyQuestion(0, 0, day1)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
}
