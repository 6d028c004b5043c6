package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress aggregates everything a child has completed within one pillar.
// The composite unique index prevents two concurrent completion submissions
// from creating duplicate rows for the same (child, pillar) pair.
type Progress struct {
	gorm.Model
	ChildID             uint                  `gorm:"index:idx_progress_child_pillar,unique;not null" json:"childId"`
	PillarID            uint                  `gorm:"index:idx_progress_child_pillar,unique;not null" json:"pillarId"`
	Pillar              Pillar                `json:"-"`
	ActivitiesCompleted []ActivityCompletion  `json:"activitiesCompleted"`
	ChallengesCompleted []ChallengeCompletion `json:"challengesCompleted"`
	Achievements        []Achievement         `json:"achievements"`
	MonthlyAssessments  []MonthlyAssessment   `json:"monthlyAssessments"`
}

// ActivityCompletion records one completed activity. A progress row holds at
// most one completion per activity; resubmission updates the existing record.
type ActivityCompletion struct {
	gorm.Model
	ProgressID    uint      `gorm:"index" json:"-"`
	ActivityID    uint      `gorm:"not null" json:"activityId"`
	Activity      Activity  `json:"-"`
	CompletedAt   time.Time `json:"completedAt"`
	ParentNotes   string    `json:"parentNotes"`
	ChildReaction string    `gorm:"default:neutral" json:"childReaction"` // positive, neutral, negative
}

// ChallengeCompletion records one completed daily challenge, at most one per
// challenge within a progress row.
type ChallengeCompletion struct {
	gorm.Model
	ProgressID  uint      `gorm:"index" json:"-"`
	ChallengeID uint      `gorm:"not null" json:"challengeId"`
	Challenge   Challenge `json:"-"`
	CompletedAt time.Time `json:"completedAt"`
	Reflection  string    `json:"reflection"`
	Difficulty  int       `json:"difficulty"` // 1-5
}

type Achievement struct {
	gorm.Model
	ProgressID  uint      `gorm:"index" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	AwardedAt   time.Time `json:"awardedAt"`
	Icon        string    `json:"icon"`
}

type MonthlyAssessment struct {
	gorm.Model
	ProgressID          uint                        `gorm:"index" json:"-"`
	Date                time.Time                   `json:"date"`
	ConfidenceScore     int                         `gorm:"not null" json:"confidenceScore"` // 1-10
	Strengths           datatypes.JSONSlice[string] `json:"strengths"`
	AreasForImprovement datatypes.JSONSlice[string] `json:"areasForImprovement"`
	ParentObservations  string                      `json:"parentObservations"`
}
