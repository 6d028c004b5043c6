package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConfidenceQuestion is the daily reflection prompt and the child's answer.
type ConfidenceQuestion struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	ParentFeedback string `json:"parentFeedback"`
}

// DailyChallengeEntry links a habit record to the day's challenge.
type DailyChallengeEntry struct {
	ChallengeID *uint  `json:"challengeId"`
	Completed   bool   `gorm:"default:false" json:"completed"`
	Notes       string `json:"notes"`
}

// DailyHabit is the per-child daily journal entry. Date is truncated to
// midnight UTC and the (child, date) pair is unique, so a second post for the
// same day updates the existing record.
type DailyHabit struct {
	gorm.Model
	ChildID            uint                        `gorm:"index:idx_habit_child_date,unique;not null" json:"childId"`
	Date               time.Time                   `gorm:"index:idx_habit_child_date,unique;not null" json:"date"`
	ConfidenceQuestion ConfidenceQuestion          `gorm:"embedded;embeddedPrefix:question_" json:"confidenceQuestion"`
	DailyChallenge     DailyChallengeEntry         `gorm:"embedded;embeddedPrefix:challenge_" json:"dailyChallenge"`
	Mood               string                      `gorm:"default:neutral" json:"mood"` // happy, neutral, sad, excited, anxious, frustrated
	Highlights         datatypes.JSONSlice[string] `json:"highlights"`
	Struggles          datatypes.JSONSlice[string] `json:"struggles"`
}

var moods = map[string]bool{
	"happy": true, "neutral": true, "sad": true,
	"excited": true, "anxious": true, "frustrated": true,
}

func ValidMood(mood string) bool {
	return moods[mood]
}
