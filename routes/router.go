package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/config"
	"github.com/cybernest/cybernest/controllers"
	"github.com/cybernest/cybernest/middleware"
	"github.com/cybernest/cybernest/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}
	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.OK(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	petController := controllers.NewCyberPetController(db)
	phishingController := controllers.NewPhishingController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/:provider/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/:provider/callback", authController.OAuthCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)

	// Public platform stats
	api.GET("/stats", statsController.GetStats)
	api.GET("/stats/leaderboard", statsController.GetLeaderboard)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.GET("/users/me", authController.Me)
	protected.PATCH("/users/me", authController.UpdateProfile)
	protected.PATCH("/users/me/password", authController.UpdatePassword)
	protected.PATCH("/users/me/settings", authController.UpdateSettings)
	protected.DELETE("/users/me", authController.DeleteAccount)

	petGroup := protected.Group("/cyberpet")
	petGroup.GET("", petController.GetPet)
	petGroup.GET("/stats", petController.Stats)
	petGroup.POST("/tick", petController.Tick)
	petGroup.POST("/action", petController.Action)
	petGroup.POST("/incident/respond", petController.RespondIncident)
	petGroup.POST("/answer", petController.AnswerDailyQuestion)
	petGroup.GET("/minigame/:type", petController.GetMiniGame)
	petGroup.POST("/minigame/:type/submit", petController.SubmitMiniGameAnswer)

	phishingGroup := protected.Group("/phishing")
	phishingGroup.GET("/questions", phishingController.Questions)
	phishingGroup.POST("/submit", phishingController.Submit)
	phishingGroup.POST("/complete", phishingController.Complete)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Fail(ctx, http.StatusNotFound, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
