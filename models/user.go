package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cybernest/cybernest/petsim"
)

// User represents a learner account. Passwords are stored as bcrypt hashes
// only; gamification stats and settings live in JSON document columns.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	DisplayName      string         `gorm:"size:64;not null" json:"displayName"`
	Email            string         `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash     string         `gorm:"size:255" json:"-"`
	Provider         string         `gorm:"size:32" json:"provider,omitempty"`
	ProviderID       string         `gorm:"size:255" json:"-"`
	Coins            int            `gorm:"default:0" json:"coins"`
	LearningInterest string         `gorm:"size:64" json:"learningInterest"`
	PhishingStats    datatypes.JSON `json:"phishingStats"`
	CyberPetStats    datatypes.JSON `json:"cyberPetStats"`
	Settings         datatypes.JSON `json:"settings"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// PhishingStats tracks quiz performance across runs.
type PhishingStats struct {
	TotalGames             int        `json:"totalGames"`
	TotalQuestionsAnswered int        `json:"totalQuestionsAnswered"`
	TotalCorrect           int        `json:"totalCorrect"`
	BestScore              int        `json:"bestScore"`
	LastScore              int        `json:"lastScore"`
	LastCompletedAt        *time.Time `json:"lastCompletedAt"`
}

// NotificationSettings toggles in-app and email notifications.
type NotificationSettings struct {
	App   bool `json:"app"`
	Email bool `json:"email"`
}

// AppSettings holds client presentation preferences.
type AppSettings struct {
	Theme        string `json:"theme"`
	Language     string `json:"language"`
	SoundEffects bool   `json:"soundEffects"`
}

// SystemSettings holds device-level preferences.
type SystemSettings struct {
	Biometrics      bool `json:"biometrics"`
	AutoLockMinutes int  `json:"autoLockMinutes"`
}

// UserSettings is the full settings document stored per user.
type UserSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	App           AppSettings          `json:"app"`
	System        SystemSettings       `json:"system"`
}

// DefaultSettings returns the settings applied to fresh accounts and used to
// backfill missing fields on load.
func DefaultSettings() UserSettings {
	return UserSettings{
		Notifications: NotificationSettings{App: true, Email: true},
		App:           AppSettings{Theme: "system", Language: "en", SoundEffects: true},
		System:        SystemSettings{AutoLockMinutes: 5},
	}
}

// BeforeCreate ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// DecodeSettings unmarshals the settings column, falling back to defaults for
// empty or missing documents.
func (u *User) DecodeSettings() UserSettings {
	settings := DefaultSettings()
	if len(u.Settings) > 0 {
		_ = json.Unmarshal(u.Settings, &settings)
	}
	if settings.App.Theme == "" {
		settings.App.Theme = "system"
	}
	if settings.App.Language == "" {
		settings.App.Language = "en"
	}
	if settings.System.AutoLockMinutes == 0 {
		settings.System.AutoLockMinutes = 5
	}
	return settings
}

// SetSettings marshals the settings document back into the column.
func (u *User) SetSettings(settings UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	u.Settings = datatypes.JSON(raw)
	return nil
}

// DecodePhishingStats unmarshals the phishing stats column.
func (u *User) DecodePhishingStats() PhishingStats {
	var stats PhishingStats
	if len(u.PhishingStats) > 0 {
		_ = json.Unmarshal(u.PhishingStats, &stats)
	}
	return stats
}

// SetPhishingStats marshals phishing stats back into the column.
func (u *User) SetPhishingStats(stats PhishingStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	u.PhishingStats = datatypes.JSON(raw)
	return nil
}

// DecodeCyberPetStats unmarshals the pet stats column.
func (u *User) DecodeCyberPetStats() petsim.CyberPetStats {
	var stats petsim.CyberPetStats
	if len(u.CyberPetStats) > 0 {
		_ = json.Unmarshal(u.CyberPetStats, &stats)
	}
	return stats
}

// SetCyberPetStats marshals pet stats back into the column.
func (u *User) SetCyberPetStats(stats petsim.CyberPetStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	u.CyberPetStats = datatypes.JSON(raw)
	return nil
}
