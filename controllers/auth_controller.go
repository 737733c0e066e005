package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/config"
	"github.com/cybernest/cybernest/middleware"
	"github.com/cybernest/cybernest/models"
	"github.com/cybernest/cybernest/utils"
)

const tokenTTL = 72 * time.Hour

// AuthController handles registration, login, profile management and
// third-party sign-in.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Register creates a local account with bcrypt password hashing.
func (a *AuthController) Register(ctx *gin.Context) {
	type request struct {
		DisplayName string `json:"displayName" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password" binding:"required,min=8"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "displayName, email and a password of at least 8 characters are required")
		return
	}

	displayName := utils.Sanitize(strings.TrimSpace(req.DisplayName))
	if l := len([]rune(displayName)); l < 2 || l > 40 {
		utils.Fail(ctx, http.StatusBadRequest, "display name must be 2-40 characters")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid email address")
		return
	}

	var count int64
	if err := a.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to check email")
		return
	}
	if count > 0 {
		utils.Fail(ctx, http.StatusConflict, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.OKStatus(ctx, http.StatusCreated, gin.H{"token": token, "user": userResponse(user)})
}

// Login verifies credentials and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.OK(ctx, gin.H{"token": token, "user": userResponse(user)})
}

// Logout blacklists the presented token until it would have expired.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid authorization header")
		return
	}

	token := strings.TrimSpace(parts[1])
	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid token")
		return
	}

	expiresAt := time.Now().Add(tokenTTL)
	if claims.RegisteredClaims.ExpiresAt != nil {
		expiresAt = claims.RegisteredClaims.ExpiresAt.Time
	}

	utils.BlacklistToken(token, expiresAt)
	utils.OK(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's profile.
func (a *AuthController) Me(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}
	utils.OK(ctx, gin.H{"user": userResponse(*user)})
}

// UpdateProfile updates display name, email and learning interest.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}

	var req struct {
		DisplayName      *string `json:"displayName"`
		Email            *string `json:"email"`
		LearningInterest *string `json:"learningInterest"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	if req.DisplayName != nil {
		name := utils.Sanitize(strings.TrimSpace(*req.DisplayName))
		if l := len([]rune(name)); l < 2 || l > 40 {
			utils.Fail(ctx, http.StatusBadRequest, "display name must be 2-40 characters")
			return
		}
		user.DisplayName = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			utils.Fail(ctx, http.StatusBadRequest, "invalid email address")
			return
		}
		if email != user.Email {
			var count int64
			if err := a.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, user.ID).Count(&count).Error; err != nil {
				utils.Fail(ctx, http.StatusInternalServerError, "failed to check email")
				return
			}
			if count > 0 {
				utils.Fail(ctx, http.StatusConflict, "email already in use")
				return
			}
			user.Email = email
		}
	}
	if req.LearningInterest != nil {
		user.LearningInterest = utils.Sanitize(strings.TrimSpace(*req.LearningInterest))
	}

	if err := a.db.Save(user).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to update profile")
		return
	}
	utils.OK(ctx, gin.H{"user": userResponse(*user)})
}

// UpdatePassword changes the account password after checking the current one.
func (a *AuthController) UpdatePassword(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "currentPassword and a newPassword of at least 8 characters are required")
		return
	}

	if user.PasswordHash == "" {
		utils.Fail(ctx, http.StatusBadRequest, "account uses third-party sign-in")
		return
	}
	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		utils.Fail(ctx, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to hash password")
		return
	}
	if err := a.db.Model(user).Update("password_hash", hash).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to update password")
		return
	}
	utils.OK(ctx, gin.H{"message": "password updated"})
}

// UpdateSettings merges partial settings into the stored settings document.
func (a *AuthController) UpdateSettings(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}

	var patch map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	settings := user.DecodeSettings()
	for key, raw := range patch {
		var err error
		switch key {
		case "notifications":
			err = json.Unmarshal(raw, &settings.Notifications)
		case "app":
			err = json.Unmarshal(raw, &settings.App)
		case "system":
			err = json.Unmarshal(raw, &settings.System)
		default:
			utils.Fail(ctx, http.StatusBadRequest, fmt.Sprintf("unknown settings section: %s", key))
			return
		}
		if err != nil {
			utils.Fail(ctx, http.StatusBadRequest, fmt.Sprintf("invalid %s settings", key))
			return
		}
	}

	if err := user.SetSettings(settings); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to encode settings")
		return
	}
	if err := a.db.Model(user).Update("settings", user.Settings).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to update settings")
		return
	}
	utils.OK(ctx, gin.H{"settings": settings})
}

// DeleteAccount removes the user plus the pet and phishing history rows.
func (a *AuthController) DeleteAccount(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CyberPet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PhishingResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to delete account")
		return
	}

	if authHeader := ctx.GetHeader("Authorization"); authHeader != "" {
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			utils.BlacklistToken(strings.TrimSpace(parts[1]), time.Now().Add(tokenTTL))
		}
	}
	utils.OK(ctx, gin.H{"message": "account deleted"})
}

// OAuthRedirect generates the Google authorization URL.
func (a *AuthController) OAuthRedirect(ctx *gin.Context) {
	cfg, err := a.oauthConfig(ctx.Param("provider"))
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	state := uuid.NewString()
	utils.SaveState(state, 10*time.Minute)

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	utils.OK(ctx, gin.H{"authorizationUrl": url, "state": state})
}

// OAuthCallback exchanges the authorization code for an identity and issues a JWT.
func (a *AuthController) OAuthCallback(ctx *gin.Context) {
	provider := ctx.Param("provider")
	code := ctx.Query("code")
	state := ctx.Query("state")

	if code == "" || state == "" {
		utils.Fail(ctx, http.StatusBadRequest, "missing code or state")
		return
	}
	if !utils.ConsumeState(state) {
		utils.Fail(ctx, http.StatusBadRequest, "invalid or expired state")
		return
	}

	cfg, err := a.oauthConfig(provider)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	token, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "failed to exchange code")
		return
	}

	info, err := fetchGoogleUser(token)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to fetch user info")
		return
	}

	user, err := a.findOrCreateOAuthUser(provider, info)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to persist user")
		return
	}

	jwtToken, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}
	utils.OK(ctx, gin.H{"token": jwtToken, "user": userResponse(*user)})
}

func (a *AuthController) oauthConfig(provider string) (*oauth2.Config, error) {
	cfg := config.Get()
	switch strings.ToLower(provider) {
	case "google":
		if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
			return nil, fmt.Errorf("google oauth not configured")
		}
		return &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  fmt.Sprintf("%s/api/v1/auth/oauth/google/callback", cfg.OAuthRedirectBase),
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

type oauthUser struct {
	ID          string
	DisplayName string
	Email       string
}

func (a *AuthController) findOrCreateOAuthUser(provider string, data *oauthUser) (*models.User, error) {
	var user models.User
	err := a.db.Where("provider = ? AND provider_id = ?", provider, data.ID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(data.Email))
	if email != "" {
		// Link by verified email when the account already exists locally.
		if lerr := a.db.Where("email = ?", email).First(&user).Error; lerr == nil {
			user.Provider = provider
			user.ProviderID = data.ID
			if err := a.db.Save(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
	}

	displayName := utils.Sanitize(strings.TrimSpace(data.DisplayName))
	if displayName == "" {
		displayName = "Defender"
	}
	user = models.User{
		DisplayName: displayName,
		Email:       email,
		Provider:    provider,
		ProviderID:  data.ID,
	}
	if err := a.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func fetchGoogleUser(token *oauth2.Token) (*oauthUser, error) {
	req, _ := http.NewRequest("GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google user info request failed: %s", resp.Status)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &oauthUser{ID: payload.ID, DisplayName: payload.Name, Email: payload.Email}, nil
}

// currentUser loads the authenticated user or writes the error response itself.
func (a *AuthController) currentUser(ctx *gin.Context) (*models.User, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Fail(ctx, http.StatusNotFound, "user not found")
		return nil, false
	}
	return &user, true
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":               user.ID,
		"displayName":      user.DisplayName,
		"email":            user.Email,
		"provider":         user.Provider,
		"coins":            user.Coins,
		"learningInterest": user.LearningInterest,
		"settings":         user.DecodeSettings(),
		"phishingStats":    user.DecodePhishingStats(),
		"createdAt":        user.CreatedAt,
	}
}
