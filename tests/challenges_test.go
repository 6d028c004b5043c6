package tests

import (
	"fmt"
	"testing"

	"confidencecompass/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestListChallenges(t *testing.T) {
	resp := doRequest(t, "GET", "/api/challenges", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	challenges := decodeList(t, resp)
	require.Len(t, challenges, models.ChallengeCycleDays)
	for i, ch := range challenges {
		assert.Equal(t, float64(i+1), ch["day"])
		assert.NotEmpty(t, ch["title"])
	}
}

func TestChallengeByDay(t *testing.T) {
	resp := doRequest(t, "GET", "/api/challenges/day/5", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), decodeMap(t, resp)["day"])

	for _, day := range []string{"0", "31", "-1", "abc"} {
		resp := doRequest(t, "GET", "/api/challenges/day/"+day, "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetChallenge(t *testing.T) {
	var challenge models.Challenge
	require.NoError(t, db.Where("day = ?", 12).First(&challenge).Error)

	resp := doRequest(t, "GET", fmt.Sprintf("/api/challenges/%d", challenge.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, challenge.Title, decodeMap(t, resp)["title"])

	resp = doRequest(t, "GET", "/api/challenges/999999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCurrentChallenge(t *testing.T) {
	token, _ := registerParent(t)
	childID := createChild(t, token, "Drew", "toddler")

	resp := doRequest(t, "GET", "/api/challenges/current", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// A child created just now is on day 1 of the cycle
	resp = doRequest(t, "GET", fmt.Sprintf("/api/challenges/current?childId=%d", childID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeMap(t, resp)
	assert.Equal(t, float64(1), result["day"])

	adaptation := result["ageAdaptation"].(map[string]interface{})
	assert.NotEmpty(t, adaptation["description"])

	otherToken, _ := registerParent(t)
	resp = doRequest(t, "GET", fmt.Sprintf("/api/challenges/current?childId=%d", childID), otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCurrentChallengeFallsBackToBaseDescription(t *testing.T) {
	token, _ := registerParent(t)
	childID := createChild(t, token, "Alexis", "toddler")

	var challenge models.Challenge
	require.NoError(t, db.Where("day = ?", 1).First(&challenge).Error)

	original := challenge.AgeAdaptations
	challenge.AgeAdaptations = datatypes.NewJSONType(map[string]models.ChallengeAdaptation{})
	require.NoError(t, db.Save(&challenge).Error)
	defer func() {
		challenge.AgeAdaptations = original
		require.NoError(t, db.Save(&challenge).Error)
	}()

	resp := doRequest(t, "GET", fmt.Sprintf("/api/challenges/current?childId=%d", childID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	adaptation := result["ageAdaptation"].(map[string]interface{})
	assert.Equal(t, challenge.Description, adaptation["description"])
}
