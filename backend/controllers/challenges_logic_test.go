package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentChallengeDay(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, currentChallengeDay(start, start))
	assert.Equal(t, 1, currentChallengeDay(start, start.Add(23*time.Hour)))
	assert.Equal(t, 2, currentChallengeDay(start, start.Add(24*time.Hour)))
	assert.Equal(t, 16, currentChallengeDay(start, start.AddDate(0, 0, 45)))
	assert.Equal(t, 30, currentChallengeDay(start, start.AddDate(0, 0, 29)))
}

func TestCurrentChallengeDayWrapsAfterThirtyDays(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, currentChallengeDay(start, start.AddDate(0, 0, 30)))
	assert.Equal(t, 1, currentChallengeDay(start, start.AddDate(0, 0, 60)))
	assert.Equal(t, 15, currentChallengeDay(start, start.AddDate(0, 0, 74)))
}

func TestCurrentChallengeDayFutureStartClamps(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, -3)

	assert.Equal(t, 1, currentChallengeDay(start, now))
}
