package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/config"
	"github.com/cybernest/cybernest/middleware"
	"github.com/cybernest/cybernest/models"
	"github.com/cybernest/cybernest/utils"
)

// PhishingController serves the spot-the-phish game: question runs, per
// question scoring, and run completion with a coin reward.
type PhishingController struct {
	db *gorm.DB
}

// NewPhishingController creates a PhishingController.
func NewPhishingController(db *gorm.DB) *PhishingController {
	return &PhishingController{db: db}
}

// Questions returns a random run of questions with the answers withheld.
func (p *PhishingController) Questions(ctx *gin.Context) {
	runSize := config.Get().PhishingRunSize

	var questions []models.PhishingQuestion
	if err := p.db.Order("RAND()").Limit(runSize).Find(&questions).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load questions")
		return
	}
	utils.OK(ctx, gin.H{"questions": questions})
}

// Submit scores a single answer and records the result.
func (p *PhishingController) Submit(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		QuestionID uint   `json:"questionId" binding:"required"`
		Answer     string `json:"answer" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "questionId and answer are required")
		return
	}

	var question models.PhishingQuestion
	if err := p.db.First(&question, req.QuestionID).Error; err != nil {
		utils.Fail(ctx, http.StatusNotFound, "question not found")
		return
	}

	correct, valid := scorePhishingAnswer(question, req.Answer)
	if !valid {
		utils.Fail(ctx, http.StatusBadRequest, "invalid answer for this question")
		return
	}

	result := models.PhishingResult{
		UserID:      userID,
		QuestionID:  question.ID,
		AnswerGiven: req.Answer,
		IsCorrect:   correct,
	}
	if err := p.db.Create(&result).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to record result")
		return
	}

	utils.OK(ctx, gin.H{"isCorrect": correct})
}

// Complete records a finished run, updates rolling stats and pays the coin
// reward scaled by accuracy.
func (p *PhishingController) Complete(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Correct *int `json:"correct" binding:"required"`
		Total   *int `json:"total" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "correct and total are required")
		return
	}

	correct, total := *req.Correct, *req.Total
	if total < 1 || correct < 0 || correct > total || total > config.Get().PhishingRunSize {
		utils.Fail(ctx, http.StatusBadRequest, "invalid run summary")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		utils.Fail(ctx, http.StatusNotFound, "user not found")
		return
	}

	score := correct * 100 / total
	coins := config.Get().PhishingCoinsPerRun * correct / total

	stats := user.DecodePhishingStats()
	stats.TotalGames++
	stats.TotalQuestionsAnswered += total
	stats.TotalCorrect += correct
	stats.LastScore = score
	if score > stats.BestScore {
		stats.BestScore = score
	}
	now := time.Now().UTC()
	stats.LastCompletedAt = &now

	if err := user.SetPhishingStats(stats); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to encode stats")
		return
	}
	if err := p.db.Model(&user).Updates(map[string]interface{}{
		"phishing_stats": user.PhishingStats,
		"coins":          user.Coins + coins,
	}).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to save run")
		return
	}

	utils.OK(ctx, gin.H{
		"score":       score,
		"coinsEarned": coins,
		"coins":       user.Coins + coins,
		"stats":       stats,
	})
}

// scorePhishingAnswer checks one answer against the question. Side-by-side
// image questions take "left"/"right"; everything else takes the
// Phishing/Safe verdict.
func scorePhishingAnswer(q models.PhishingQuestion, answer string) (correct, valid bool) {
	if q.PhishingSide != "" {
		if answer != "left" && answer != "right" {
			return false, false
		}
		return answer == q.PhishingSide, true
	}
	if answer != models.PhishingAnswerPhishing && answer != models.PhishingAnswerSafe {
		return false, false
	}
	return (answer == models.PhishingAnswerPhishing) == q.IsPhishing, true
}
