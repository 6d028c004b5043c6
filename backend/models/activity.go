package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is a hands-on exercise belonging to one pillar. Reference data.
type Activity struct {
	gorm.Model
	PillarID         uint                        `gorm:"index;not null" json:"pillarId"`
	Title            string                      `gorm:"not null" json:"title"`
	Description      string                      `json:"description"`
	AgeGroup         string                      `gorm:"not null" json:"ageGroup"` // toddler, elementary, teen, all
	Duration         int                         `json:"duration"`                 // minutes
	Materials        datatypes.JSONSlice[string] `json:"materials"`
	Steps            datatypes.JSONSlice[string] `json:"steps"`
	LearningOutcomes datatypes.JSONSlice[string] `json:"learningOutcomes"`
	Tips             datatypes.JSONSlice[string] `json:"tips"`
	Difficulty       string                      `gorm:"default:medium" json:"difficulty"` // easy, medium, hard
	Tags             datatypes.JSONSlice[string] `json:"tags"`
}
