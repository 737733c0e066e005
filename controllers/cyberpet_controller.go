package controllers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/config"
	"github.com/cybernest/cybernest/middleware"
	"github.com/cybernest/cybernest/models"
	"github.com/cybernest/cybernest/petsim"
	"github.com/cybernest/cybernest/utils"
)

// CyberPetController serves the security-pet simulation endpoints. Every
// handler follows the same load-mutate-save cycle over the JSON aggregate,
// with an optimistic version check on save.
type CyberPetController struct {
	db *gorm.DB
}

// NewCyberPetController creates a CyberPetController.
func NewCyberPetController(db *gorm.DB) *CyberPetController {
	return &CyberPetController{db: db}
}

// GetPet returns the current pet state, adopting one on first access.
func (c *CyberPetController) GetPet(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	changed, err := petsim.EnsureDailyQuestions(pet, user.ID, config.Get().DailyQuestionCount, now)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to prepare daily questions")
		return
	}
	if changed && !c.savePet(ctx, row, pet) {
		return
	}

	utils.OK(ctx, gin.H{"pet": petView(pet), "coins": user.Coins})
}

// Tick applies the once-per-day simulation advance.
func (c *CyberPetController) Tick(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	result := petsim.ApplyDailyTick(pet, now, config.Get().IncidentProbabilityCap, rand.Float64)
	if result.AlreadyApplied {
		utils.OK(ctx, gin.H{
			"pet":               petView(pet),
			"alreadyApplied":    true,
			"incidentTriggered": false,
		})
		return
	}

	stats := decodePetStats(user)
	stats.RecordRiskSample(pet.Risk.Score)
	if result.IncidentTriggered {
		stats.TotalIncidents++
	}
	if !c.savePet(ctx, row, pet) {
		return
	}
	if !c.saveUserStats(ctx, user, stats) {
		return
	}

	utils.OK(ctx, gin.H{
		"pet":               petView(pet),
		"alreadyApplied":    false,
		"incidentTriggered": result.IncidentTriggered,
	})
}

// Action applies one of the four security-hardening actions.
func (c *CyberPetController) Action(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	var req struct {
		ActionType string `json:"actionType" binding:"required"`
		Payload    struct {
			StrengthScore *int `json:"strengthScore"`
		} `json:"payload"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "actionType is required")
		return
	}

	now := time.Now().UTC()
	result, err := petsim.ApplyAction(pet, req.ActionType, petsim.ActionPayload{StrengthScore: req.Payload.StrengthScore}, now)
	if err != nil {
		switch {
		case errors.Is(err, petsim.ErrInvalidAction):
			utils.Fail(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, petsim.ErrTickRequired), errors.Is(err, petsim.ErrNoActionsLeft):
			utils.Fail(ctx, http.StatusConflict, err.Error())
		default:
			utils.Fail(ctx, http.StatusInternalServerError, "failed to apply action")
		}
		return
	}

	stats := decodePetStats(user)
	stats.RecordRiskSample(pet.Risk.Score)
	stats.SyncAdoptionDates(pet.Posture, now)
	if !c.savePet(ctx, row, pet) {
		return
	}
	if !c.saveUserStats(ctx, user, stats) {
		return
	}

	utils.OK(ctx, gin.H{"actionResult": result, "remainingActions": pet.RemainingActions(), "pet": petView(pet)})
}

// RespondIncident resolves the active incident with a catalog response option.
func (c *CyberPetController) RespondIncident(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	var req struct {
		ResponseID string `json:"responseId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "responseId is required")
		return
	}

	incidentType := pet.ActiveIncident.Type
	if pet.HasActiveIncident() {
		if def := petsim.FindIncident(incidentType); def != nil {
			for _, resp := range def.Responses {
				if resp.ID == req.ResponseID && resp.Costs.Coins > user.Coins {
					utils.Fail(ctx, http.StatusPaymentRequired, "not enough coins for this response")
					return
				}
			}
		}
	}

	now := time.Now().UTC()
	result, err := petsim.ApplyIncidentResponse(pet, req.ResponseID, now)
	if err != nil {
		switch {
		case errors.Is(err, petsim.ErrNoActiveIncident):
			utils.Fail(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, petsim.ErrInvalidResponse), errors.Is(err, petsim.ErrIncidentNotInCatalog):
			utils.Fail(ctx, http.StatusBadRequest, err.Error())
		default:
			utils.Fail(ctx, http.StatusInternalServerError, "failed to resolve incident")
		}
		return
	}

	stats := decodePetStats(user)
	stats.RecordResolution(*result)
	stats.RecordRiskSample(pet.Risk.Score)
	user.Coins -= result.CoinCost
	if user.Coins < 0 {
		user.Coins = 0
	}
	if !c.savePet(ctx, row, pet) {
		return
	}
	if !c.saveUserStats(ctx, user, stats) {
		return
	}

	utils.OK(ctx, gin.H{"result": result, "pet": petView(pet), "coins": user.Coins})
}

// AnswerDailyQuestion records an answer to the five-question daily quiz.
func (c *CyberPetController) AnswerDailyQuestion(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	var req struct {
		QuestionIndex *int `json:"questionIndex" binding:"required"`
		AnswerIndex   *int `json:"answerIndex" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "questionIndex and answerIndex are required")
		return
	}

	now := time.Now().UTC()
	if _, err := petsim.EnsureDailyQuestions(pet, user.ID, config.Get().DailyQuestionCount, now); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to prepare daily questions")
		return
	}

	outcome, err := pet.AnswerDailyQuestion(*req.QuestionIndex, *req.AnswerIndex, now)
	if err != nil {
		switch {
		case errors.Is(err, petsim.ErrInvalidQuestionIndex), errors.Is(err, petsim.ErrInvalidAnswerIndex):
			utils.Fail(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, petsim.ErrAlreadyAnswered):
			utils.Fail(ctx, http.StatusConflict, err.Error())
		default:
			utils.Fail(ctx, http.StatusInternalServerError, "failed to record answer")
		}
		return
	}

	if !c.savePet(ctx, row, pet) {
		return
	}

	utils.OK(ctx, gin.H{
		"pet":         petView(pet),
		"isCorrect":   outcome.IsCorrect,
		"explanation": outcome.Explanation,
	})
}

// GetMiniGame returns today's question set and progress for one game type.
func (c *CyberPetController) GetMiniGame(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	gameType := ctx.Param("type")
	def := petsim.FindMiniGame(gameType)
	if def == nil {
		utils.Fail(ctx, http.StatusNotFound, "unknown mini-game type")
		return
	}

	now := time.Now().UTC()
	state, changed, err := petsim.EnsureMiniGameDay(pet, user.ID, gameType, now)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to prepare mini-game")
		return
	}
	if changed && !c.savePet(ctx, row, pet) {
		return
	}

	utils.OK(ctx, gin.H{
		"miniGame":  state.Progress(def),
		"questions": state.DailyQuestionViews(def),
	})
}

// SubmitMiniGameAnswer scores one mini-game submission and applies its reward.
func (c *CyberPetController) SubmitMiniGameAnswer(ctx *gin.Context) {
	user, row, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}

	gameType := ctx.Param("type")
	def := petsim.FindMiniGame(gameType)
	if def == nil {
		utils.Fail(ctx, http.StatusNotFound, "unknown mini-game type")
		return
	}

	var req struct {
		QuestionID string          `json:"questionId" binding:"required"`
		Answer     json.RawMessage `json:"answer"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "questionId is required")
		return
	}

	answer, err := decodeMiniGameAnswer(gameType, req.Answer)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid answer format")
		return
	}

	now := time.Now().UTC()
	outcome, err := petsim.SubmitMiniGameAnswer(pet, user.ID, gameType, req.QuestionID, answer, now)
	if err != nil {
		switch {
		case errors.Is(err, petsim.ErrUnknownMiniGame):
			utils.Fail(ctx, http.StatusNotFound, err.Error())
		case errors.Is(err, petsim.ErrQuestionNotInSet), errors.Is(err, petsim.ErrInvalidAnswerFormat):
			utils.Fail(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, petsim.ErrAlreadyAnswered):
			utils.Fail(ctx, http.StatusConflict, err.Error())
		default:
			utils.Fail(ctx, http.StatusInternalServerError, "failed to score answer")
		}
		return
	}

	stats := decodePetStats(user)
	stats.RecordRiskSample(pet.Risk.Score)
	if !c.savePet(ctx, row, pet) {
		return
	}
	if !c.saveUserStats(ctx, user, stats) {
		return
	}

	state := pet.MiniGames[gameType]
	utils.OK(ctx, gin.H{
		"result":   outcome,
		"miniGame": state.Progress(def),
		"pet":      petView(pet),
	})
}

// Stats returns the companion per-user aggregate statistics.
func (c *CyberPetController) Stats(ctx *gin.Context) {
	user, _, pet, ok := c.loadPet(ctx)
	if !ok {
		return
	}
	utils.OK(ctx, gin.H{
		"stats":  decodePetStats(user),
		"risk":   pet.Risk,
		"streak": pet.Streak,
	})
}

// loadPet resolves the user and the pet row, adopting a fresh pet on first
// access. On failure the HTTP error has already been written.
func (c *CyberPetController) loadPet(ctx *gin.Context) (*models.User, *models.CyberPet, *petsim.Pet, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return nil, nil, nil, false
	}

	var user models.User
	if err := c.db.First(&user, userID).Error; err != nil {
		utils.Fail(ctx, http.StatusNotFound, "user not found")
		return nil, nil, nil, false
	}

	var row models.CyberPet
	err := c.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now().UTC()
		pet := petsim.NewPet(now)
		pet.Daily.MaxActions = config.Get().MaxActionsPerDay
		if _, qerr := petsim.EnsureDailyQuestions(pet, userID, config.Get().DailyQuestionCount, now); qerr != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to initialize pet")
			return nil, nil, nil, false
		}
		row = models.CyberPet{UserID: userID}
		if serr := row.SetState(pet); serr != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to encode pet state")
			return nil, nil, nil, false
		}
		if cerr := c.db.Create(&row).Error; cerr != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to adopt pet")
			return nil, nil, nil, false
		}
		return &user, &row, pet, true
	}
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load pet")
		return nil, nil, nil, false
	}

	pet, derr := row.DecodeState()
	if derr != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to decode pet state")
		return nil, nil, nil, false
	}
	return &user, &row, pet, true
}

// savePet persists the aggregate with an optimistic version check. A stale
// version means another request committed first; the client should retry.
func (c *CyberPetController) savePet(ctx *gin.Context, row *models.CyberPet, pet *petsim.Pet) bool {
	if err := row.SetState(pet); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to encode pet state")
		return false
	}

	res := c.db.Model(&models.CyberPet{}).
		Where("id = ? AND version = ?", row.ID, row.Version).
		Updates(map[string]interface{}{
			"state":   row.State,
			"version": row.Version + 1,
		})
	if res.Error != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to save pet state")
		return false
	}
	if res.RowsAffected == 0 {
		utils.Fail(ctx, http.StatusConflict, "pet state changed concurrently, retry")
		return false
	}
	row.Version++
	return true
}

func (c *CyberPetController) saveUserStats(ctx *gin.Context, user *models.User, stats petsim.CyberPetStats) bool {
	if err := user.SetCyberPetStats(stats); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to encode stats")
		return false
	}
	if err := c.db.Model(user).Updates(map[string]interface{}{
		"cyber_pet_stats": user.CyberPetStats,
		"coins":           user.Coins,
	}).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to save stats")
		return false
	}
	return true
}

// decodeMiniGameAnswer interprets the raw answer by game type: trueFalse
// takes a boolean, the other two take an integer index.
func decodeMiniGameAnswer(gameType string, raw json.RawMessage) (petsim.MiniGameAnswer, error) {
	switch gameType {
	case petsim.GameTrueFalse:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return petsim.MiniGameAnswer{}, err
		}
		return petsim.MiniGameAnswer{Bool: &b}, nil
	case petsim.GamePasswordStrengthener, petsim.GameFillBlanks:
		var idx int
		if err := json.Unmarshal(raw, &idx); err != nil {
			return petsim.MiniGameAnswer{}, err
		}
		return petsim.MiniGameAnswer{Index: &idx}, nil
	}
	return petsim.MiniGameAnswer{}, petsim.ErrUnknownMiniGame
}

func decodePetStats(user *models.User) petsim.CyberPetStats {
	return user.DecodeCyberPetStats()
}

// petView shapes the aggregate for clients: quiz answers are withheld until
// answered, and the active incident is joined with its catalog entry so the
// response options travel with it.
func petView(pet *petsim.Pet) gin.H {
	view := gin.H{
		"posture":          pet.Posture,
		"risk":             pet.Risk,
		"pet":              pet.Status,
		"daily":            pet.Daily,
		"remainingActions": pet.RemainingActions(),
		"streak":           pet.Streak,
		"incidentHistory":  pet.IncidentHistory,
		"dailyQuestions":   dailyQuestionViews(pet),
		"dailyProgress":    pet.DailyProgress,
		"lastUpdated":      pet.LastUpdated,
	}
	if pet.HasActiveIncident() {
		inc := pet.ActiveIncident
		entry := gin.H{
			"type":      inc.Type,
			"label":     inc.Label,
			"severity":  inc.Severity,
			"status":    inc.Status,
			"createdAt": inc.CreatedAt,
		}
		if def := petsim.FindIncident(inc.Type); def != nil {
			entry["description"] = def.Description
			entry["responses"] = def.Responses
		}
		view["activeIncident"] = entry
	} else {
		view["activeIncident"] = nil
	}
	return view
}

func dailyQuestionViews(pet *petsim.Pet) []gin.H {
	views := make([]gin.H, 0, len(pet.DailyQuestions))
	for i, q := range pet.DailyQuestions {
		v := gin.H{
			"index":      i,
			"questionId": q.QuestionID,
			"text":       q.Text,
			"options":    q.Options,
			"answered":   q.UserAnswerIndex != nil,
		}
		if q.UserAnswerIndex != nil {
			v["userAnswerIndex"] = *q.UserAnswerIndex
			v["isCorrect"] = q.IsCorrect
			v["correctIndex"] = q.CorrectIndex
			v["explanation"] = q.Explanation
		}
		views = append(views, v)
	}
	return views
}
