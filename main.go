package main

import (
	"github.com/cybernest/cybernest/config"
	"github.com/cybernest/cybernest/models"
	"github.com/cybernest/cybernest/routes"
	"github.com/cybernest/cybernest/seed"
	"github.com/cybernest/cybernest/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.CyberPet{}, &models.PhishingQuestion{}, &models.PhishingResult{})

	if err := seed.PhishingQuestions(db); err != nil {
		utils.Sugar.Fatalf("failed to seed phishing questions: %v", err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
