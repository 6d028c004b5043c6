package models

import (
	"time"

	"gorm.io/gorm"
)

// NotificationPreferences controls which notification types a parent receives.
type NotificationPreferences struct {
	DailyReminders         bool `gorm:"default:true" json:"dailyReminders"`
	ChallengeNotifications bool `gorm:"default:true" json:"challengeNotifications"`
	AchievementAlerts      bool `gorm:"default:true" json:"achievementAlerts"`
	WeeklyReports          bool `gorm:"default:false" json:"weeklyReports"`
}

type User struct {
	gorm.Model
	Email        string                  `gorm:"unique;not null" json:"email"`
	PasswordHash string                  `gorm:"not null" json:"-"`
	FirstName    string                  `json:"firstName"`
	LastName     string                  `json:"lastName"`
	Role         string                  `gorm:"default:parent" json:"role"` // parent, admin
	Preferences  NotificationPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	LastLogin    *time.Time              `json:"lastLogin"`
}
