package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cybernest/cybernest/models"
)

func TestScorePhishingAnswer_Verdict(t *testing.T) {
	phish := models.PhishingQuestion{Text: "urgent reset", IsPhishing: true}
	safe := models.PhishingQuestion{Text: "routine notice", IsPhishing: false}

	tests := []struct {
		name        string
		question    models.PhishingQuestion
		answer      string
		wantCorrect bool
		wantValid   bool
	}{
		{"phishing spotted", phish, models.PhishingAnswerPhishing, true, true},
		{"phishing missed", phish, models.PhishingAnswerSafe, false, true},
		{"safe trusted", safe, models.PhishingAnswerSafe, true, true},
		{"safe flagged", safe, models.PhishingAnswerPhishing, false, true},
		{"side answer on verdict question", phish, "left", false, false},
		{"garbage answer", phish, "maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, valid := scorePhishingAnswer(tt.question, tt.answer)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantCorrect, correct)
		})
	}
}

func TestScorePhishingAnswer_SideBySide(t *testing.T) {
	q := models.PhishingQuestion{
		Text:         "which login page is fake?",
		ImageLeft:    "/img/a.png",
		ImageRight:   "/img/b.png",
		PhishingSide: "left",
	}

	correct, valid := scorePhishingAnswer(q, "left")
	assert.True(t, valid)
	assert.True(t, correct)

	correct, valid = scorePhishingAnswer(q, "right")
	assert.True(t, valid)
	assert.False(t, correct)

	_, valid = scorePhishingAnswer(q, models.PhishingAnswerPhishing)
	assert.False(t, valid)
}
