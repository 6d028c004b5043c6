package models

import (
	"time"

	"gorm.io/gorm"
)

// RelatedEntity optionally points a notification at the record it concerns.
type RelatedEntity struct {
	Type string `json:"type"` // pillar, challenge, activity, achievement
	ID   *uint  `json:"id"`
}

type Notification struct {
	gorm.Model
	UserID        uint          `gorm:"index;not null" json:"userId"`
	Type          string        `gorm:"not null" json:"type"` // daily_reminder, achievement, pillar_transition, weekly_report
	Title         string        `gorm:"not null" json:"title"`
	Message       string        `json:"message"`
	Read          bool          `gorm:"default:false" json:"read"`
	Delivered     bool          `gorm:"default:false" json:"delivered"`
	ScheduledFor  time.Time     `json:"scheduledFor"`
	RelatedEntity RelatedEntity `gorm:"embedded;embeddedPrefix:related_" json:"relatedEntity"`
}
