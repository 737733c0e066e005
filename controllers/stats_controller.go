package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/models"
	"github.com/cybernest/cybernest/utils"
)

const (
	platformStatsCacheKey = "cache:stats:platform"
	leaderboardCacheKey   = "cache:stats:leaderboard"
	statsCacheTTL         = 5 * time.Minute
)

// StatsController provides platform-wide statistics and the coin leaderboard.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate platform statistics.
func (s *StatsController) GetStats(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(platformStatsCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var userCount int64
	var petCount int64
	var phishingAnswers int64
	var phishingCorrect int64

	// Counts fall back to 0 on query failure; the failure is logged.
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		logCountError("users", err)
		userCount = 0
	}
	if err := s.db.Model(&models.CyberPet{}).Count(&petCount).Error; err != nil {
		logCountError("cyber_pets", err)
		petCount = 0
	}
	if err := s.db.Model(&models.PhishingResult{}).Count(&phishingAnswers).Error; err != nil {
		logCountError("phishing_results", err)
		phishingAnswers = 0
	}
	if err := s.db.Model(&models.PhishingResult{}).Where("is_correct = ?", true).Count(&phishingCorrect).Error; err != nil {
		logCountError("phishing_results_correct", err)
		phishingCorrect = 0
	}

	body := gin.H{
		"success":                true,
		"userCount":              userCount,
		"petCount":               petCount,
		"phishingAnswersTotal":   phishingAnswers,
		"phishingAnswersCorrect": phishingCorrect,
	}
	utils.CacheSetJSON(platformStatsCacheKey, body, statsCacheTTL)
	ctx.JSON(http.StatusOK, body)
}

// GetLeaderboard returns the top accounts by coins.
func (s *StatsController) GetLeaderboard(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(leaderboardCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	type entry struct {
		DisplayName string `json:"displayName"`
		Coins       int    `json:"coins"`
	}
	var entries []entry
	if err := s.db.Model(&models.User{}).
		Select("display_name", "coins").
		Order("coins DESC").
		Limit(10).
		Scan(&entries).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}

	body := gin.H{"success": true, "leaderboard": entries}
	utils.CacheSetJSON(leaderboardCacheKey, body, statsCacheTTL)
	ctx.JSON(http.StatusOK, body)
}

func logCountError(table string, err error) {
	if utils.Sugar != nil {
		utils.Sugar.Warnf("platform stats count failed table=%s err=%v", table, err)
	}
}
