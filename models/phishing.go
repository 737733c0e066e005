package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Accepted answers for text phishing questions; side-by-side image questions
// take "left" or "right" instead.
const (
	PhishingAnswerPhishing = "Phishing"
	PhishingAnswerSafe     = "Safe"
)

// PhishingQuestion is one quiz entry. Text questions carry IsPhishing plus
// optional multiple-choice options; image comparison questions carry two
// image URLs and the side that is the fake.
type PhishingQuestion struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Text          string         `gorm:"type:text;not null" json:"text"`
	IsPhishing    bool           `json:"-"`
	Options       datatypes.JSON `json:"options,omitempty"`
	CorrectOption int            `json:"-"`
	Image         string         `gorm:"size:512" json:"image,omitempty"`
	ImageLeft     string         `gorm:"size:512" json:"imageLeft,omitempty"`
	ImageRight    string         `gorm:"size:512" json:"imageRight,omitempty"`
	PhishingSide  string         `gorm:"size:8" json:"-"`
	Topic         string         `gorm:"size:64" json:"topic,omitempty"`
	CreatedAt     time.Time      `json:"-"`
}

// SetOptions marshals the option list into the JSON column.
func (q *PhishingQuestion) SetOptions(options []string) error {
	raw, err := json.Marshal(options)
	if err != nil {
		return err
	}
	q.Options = datatypes.JSON(raw)
	return nil
}

// PhishingResult records one scored answer for later stats.
type PhishingResult struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	QuestionID  uint      `gorm:"index;not null" json:"questionId"`
	AnswerGiven string    `gorm:"size:32;not null" json:"answerGiven"`
	IsCorrect   bool      `json:"isCorrect"`
	CreatedAt   time.Time `json:"createdAt"`
}
