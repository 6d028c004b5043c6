package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChallengeAdaptation tailors a daily challenge to one age group.
type ChallengeAdaptation struct {
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// Challenge is one of the thirty fixed daily exercises. The 30-day program
// cycles indefinitely, so Day is always in [1,30] and unique.
type Challenge struct {
	gorm.Model
	Day               int                                                `gorm:"uniqueIndex;not null" json:"day"`
	Title             string                                             `gorm:"not null" json:"title"`
	Description       string                                             `json:"description"`
	PillarID          uint                                               `gorm:"index;not null" json:"pillarId"`
	AgeAdaptations    datatypes.JSONType[map[string]ChallengeAdaptation] `json:"ageAdaptations"`
	ReflectionPrompts datatypes.JSONSlice[string]                        `json:"reflectionPrompts"`
}

// ChallengeCycleDays is the length of the repeating daily-challenge program.
const ChallengeCycleDays = 30
