package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CurrentPillar tracks which pillar a child is actively working through.
// CompletionPercentage is a cached copy of the calculated progress value and
// is refreshed on every completion event for the active pillar.
type CurrentPillar struct {
	PillarID             *uint      `json:"pillarId"`
	StartDate            *time.Time `json:"startDate"`
	CompletionPercentage int        `gorm:"default:0" json:"completionPercentage"`
}

type Child struct {
	gorm.Model
	ParentID      uint                        `gorm:"index;not null" json:"parentId"`
	FirstName     string                      `gorm:"not null" json:"firstName"`
	LastName      string                      `gorm:"not null" json:"lastName"`
	DateOfBirth   time.Time                   `json:"dateOfBirth"`
	AgeGroup      string                      `gorm:"not null" json:"ageGroup"` // toddler, elementary, teen
	Avatar        string                      `gorm:"default:default-avatar.png" json:"avatar"`
	CurrentPillar CurrentPillar               `gorm:"embedded;embeddedPrefix:current_pillar_" json:"currentPillar"`
	Strengths     datatypes.JSONSlice[string] `json:"strengths"`
	Interests     datatypes.JSONSlice[string] `json:"interests"`
	Notes         string                      `json:"notes"`
}

// AgeGroups lists the valid child age groups in curriculum order.
var AgeGroups = []string{"toddler", "elementary", "teen"}

func ValidAgeGroup(group string) bool {
	for _, g := range AgeGroups {
		if g == group {
			return true
		}
	}
	return false
}
