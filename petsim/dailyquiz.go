package petsim

import (
	"errors"
	"time"
)

// DefaultDailyQuestionCount is the size of the legacy daily quiz set.
const DefaultDailyQuestionCount = 5

var (
	ErrInvalidQuestionIndex = errors.New("invalid question index")
	ErrInvalidAnswerIndex   = errors.New("invalid answer index")
	ErrQuestionBankTooSmall = errors.New("not enough daily quiz questions configured")
)

// QuizQuestion is one multiple-choice question of the legacy daily quiz bank.
type QuizQuestion struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
	Topic        string
	Explanation  string
}

// dailyQuizBank is the static multiple-choice catalog backing the legacy
// five-a-day quiz mode.
var dailyQuizBank = []QuizQuestion{
	{
		ID:           "dq_01",
		Text:         "What makes a password hard for attackers to guess?",
		Options:      []string{"Using your birthday", "Length and randomness", "Using the word 'password'", "Keeping it short so you remember it"},
		CorrectIndex: 1,
		Topic:        "passwords",
		Explanation:  "Long random passphrases resist both guessing and cracking tools.",
	},
	{
		ID:           "dq_02",
		Text:         "A website asks you to log in through a link sent by text. What is the safest move?",
		Options:      []string{"Tap the link right away", "Type the site address yourself", "Reply with your password", "Forward the text to friends"},
		CorrectIndex: 1,
		Topic:        "phishing",
		Explanation:  "Navigating to the site yourself avoids look-alike links.",
	},
	{
		ID:           "dq_03",
		Text:         "What does two-factor authentication add to a login?",
		Options:      []string{"A faster way in", "A second proof of identity", "A backup password", "A shared family account"},
		CorrectIndex: 1,
		Topic:        "accounts",
		Explanation:  "The second factor blocks attackers who only have your password.",
	},
	{
		ID:           "dq_04",
		Text:         "Which of these is safest to share publicly online?",
		Options:      []string{"Your home address", "Your school timetable", "Your favourite book", "Your password hint"},
		CorrectIndex: 2,
		Topic:        "privacy",
		Explanation:  "Opinions about books reveal nothing an attacker can use against you.",
	},
	{
		ID:           "dq_05",
		Text:         "Why should software updates be installed promptly?",
		Options:      []string{"They make icons prettier", "They fix security holes", "They free up storage", "They reset your settings"},
		CorrectIndex: 1,
		Topic:        "devices",
		Explanation:  "Attackers target known flaws; updates close them.",
	},
	{
		ID:           "dq_06",
		Text:         "A breach monitoring service is useful because it...",
		Options:      []string{"Blocks all hackers", "Tells you early when your data leaks", "Makes passwords stronger", "Hides your email address"},
		CorrectIndex: 1,
		Topic:        "monitoring",
		Explanation:  "Early warning lets you rotate passwords before attackers use them.",
	},
	{
		ID:           "dq_07",
		Text:         "What should you do before entering card details on a site?",
		Options:      []string{"Check the address and padlock", "Disable your antivirus", "Use public Wi-Fi", "Clear your history"},
		CorrectIndex: 0,
		Topic:        "payments",
		Explanation:  "A correct address with HTTPS is the minimum bar for sensitive data.",
	},
	{
		ID:           "dq_08",
		Text:         "If an online 'friend' asks to meet alone, you should...",
		Options:      []string{"Go and keep it secret", "Tell a trusted adult first", "Share your location with them", "Bring your password list"},
		CorrectIndex: 1,
		Topic:        "safety",
		Explanation:  "People online are not always who they claim to be; involve an adult.",
	},
	{
		ID:           "dq_09",
		Text:         "Which habit best protects all your accounts at once?",
		Options:      []string{"One strong password reused everywhere", "A unique password per account", "Writing passwords on sticky notes", "Sharing accounts with family"},
		CorrectIndex: 1,
		Topic:        "passwords",
		Explanation:  "Unique passwords keep one breach from spreading to every account.",
	},
	{
		ID:           "dq_10",
		Text:         "An email says your account closes in one hour unless you act. This urgency is...",
		Options:      []string{"Normal for big companies", "A common scam pressure tactic", "A legal requirement", "A sign the email is safe"},
		CorrectIndex: 1,
		Topic:        "phishing",
		Explanation:  "Scammers manufacture urgency so you act before thinking.",
	},
}

// DailyQuizBank returns the static quiz catalog.
func DailyQuizBank() []QuizQuestion {
	return dailyQuizBank
}

// EnsureDailyQuestions refreshes the legacy daily quiz set when the stored
// date key is stale or the set is malformed. Selection uses the same seeded
// shuffle as the mini-games (game type "dailyQuiz") so the set is stable
// within a day and re-derivable without extra storage. Returns whether state
// changed.
func EnsureDailyQuestions(p *Pet, userID uint, count int, now time.Time) (bool, error) {
	if count < 1 {
		count = DefaultDailyQuestionCount
	}
	if len(dailyQuizBank) < count {
		return false, ErrQuestionBankTooSmall
	}

	todayKey := DateKey(now)
	if p.DailyProgress.DateKey == todayKey && len(p.DailyQuestions) == count {
		return false, nil
	}

	order := shuffledIndices(len(dailyQuizBank), seedFor(userID, "dailyQuiz", todayKey))
	questions := make([]DailyQuizQuestion, 0, count)
	for _, qi := range order[:count] {
		q := dailyQuizBank[qi]
		questions = append(questions, DailyQuizQuestion{
			QuestionID:   q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}

	p.DailyQuestions = questions
	p.DailyProgress = DailyQuizProgress{DateKey: todayKey}
	reset := now
	p.LastDailyReset = &reset
	p.LastUpdated = now
	return true, nil
}

// AnswerDailyQuestion records one answer of the legacy quiz: correctness is
// stored in place, progress counters recomputed, and pet health adjusted
// (+5 correct, -7 incorrect).
func (p *Pet) AnswerDailyQuestion(questionIndex, answerIndex int, now time.Time) (*SubmitOutcome, error) {
	if questionIndex < 0 || questionIndex >= len(p.DailyQuestions) {
		return nil, ErrInvalidQuestionIndex
	}
	if answerIndex < 0 || answerIndex > 3 {
		return nil, ErrInvalidAnswerIndex
	}

	q := &p.DailyQuestions[questionIndex]
	if q.UserAnswerIndex != nil {
		return nil, ErrAlreadyAnswered
	}

	isCorrect := answerIndex == q.CorrectIndex
	answered := answerIndex
	q.UserAnswerIndex = &answered
	q.IsCorrect = &isCorrect

	answeredCount, correctCount := 0, 0
	for i := range p.DailyQuestions {
		if p.DailyQuestions[i].UserAnswerIndex != nil {
			answeredCount++
		}
		if p.DailyQuestions[i].IsCorrect != nil && *p.DailyQuestions[i].IsCorrect {
			correctCount++
		}
	}
	p.DailyProgress.AnsweredCount = answeredCount
	p.DailyProgress.CorrectCount = correctCount

	if isCorrect {
		p.Status.Health = Clamp(p.Status.Health + 5)
	} else {
		p.Status.Health = Clamp(p.Status.Health - 7)
	}
	p.LastUpdated = now

	return &SubmitOutcome{IsCorrect: isCorrect, Explanation: q.Explanation}, nil
}
