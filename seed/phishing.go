// Package seed loads static game content into the database on boot.
package seed

import (
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/models"
)

type phishingSeed struct {
	text          string
	isPhishing    bool
	options       []string
	correctOption int
	topic         string
}

var phishingSeeds = []phishingSeed{
	{
		text:       "Your bank emails you: 'Unusual login detected. Click here to secure your account.' What should you do?",
		isPhishing: true,
		options: []string{
			"Click the link immediately to secure your account",
			"Ignore the email completely",
			"Contact your bank directly using their official website or phone number",
			"Reply to the email asking for more details",
		},
		correctOption: 2,
		topic:         "email",
	},
	{
		text:       "Your university emails you about scheduled password maintenance. What is the best response?",
		isPhishing: false,
		options: []string{
			"This is a phishing attempt - delete immediately",
			"Verify through official university channels before taking action",
			"Forward it to all your contacts as a warning",
			"Click any links to reset your password right away",
		},
		correctOption: 1,
		topic:         "email",
	},
	{
		text:       "PayPal: 'Your account will be closed unless you verify now.' How should you respond?",
		isPhishing: true,
		options: []string{
			"Click the verification link to save your account",
			"This is legitimate - PayPal often sends urgent requests",
			"Log into PayPal directly through their official website to check",
			"Reply with your account details to verify",
		},
		correctOption: 2,
		topic:         "payments",
	},
	{
		text:       "Google prompts you to review a new sign-in from Dublin. What should you do?",
		isPhishing: false,
		options: []string{
			"This is definitely a scam - Google never sends these",
			"Check your Google account security settings directly",
			"Click the link in the email immediately",
			"Ignore it completely",
		},
		correctOption: 1,
		topic:         "accounts",
	},
}

// PhishingQuestions inserts the starter question set when the table is empty.
func PhishingQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PhishingQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range phishingSeeds {
		q := models.PhishingQuestion{
			Text:          s.text,
			IsPhishing:    s.isPhishing,
			CorrectOption: s.correctOption,
			Topic:         s.topic,
		}
		if err := q.SetOptions(s.options); err != nil {
			return err
		}
		if err := db.Create(&q).Error; err != nil {
			return err
		}
	}
	return nil
}
