package tests

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivities(t *testing.T) {
	resp := doRequest(t, "GET", "/api/activities", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	all := decodeList(t, resp)
	require.NotEmpty(t, all)

	pillar := firstPillar(t)
	resp = doRequest(t, "GET", fmt.Sprintf("/api/activities?pillarId=%d", pillar.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, a := range decodeList(t, resp) {
		assert.Equal(t, float64(pillar.ID), a["pillarId"])
	}

	// An ageGroup filter also includes activities tagged for all ages
	resp = doRequest(t, "GET", "/api/activities?ageGroup=elementary", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, a := range decodeList(t, resp) {
		assert.Contains(t, []string{"elementary", "all"}, a["ageGroup"])
	}

	resp = doRequest(t, "GET", "/api/activities?ageGroup=senior", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetActivity(t *testing.T) {
	resp := doRequest(t, "GET", "/api/activities", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	all := decodeList(t, resp)
	require.NotEmpty(t, all)
	id := uint(all[0]["ID"].(float64))

	resp = doRequest(t, "GET", fmt.Sprintf("/api/activities/%d", id), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	activity := decodeMap(t, resp)
	assert.NotEmpty(t, activity["title"])
	assert.NotEmpty(t, activity["steps"])

	resp = doRequest(t, "GET", "/api/activities/999999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecommendedActivities(t *testing.T) {
	token, _ := registerParent(t)

	resp := doRequest(t, "GET", "/api/activities/recommended", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	childID := createChild(t, token, "Hayden", "elementary")
	resp = doRequest(t, "GET", fmt.Sprintf("/api/activities/recommended?childId=%d", childID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	recommended := decodeList(t, resp)
	assert.LessOrEqual(t, len(recommended), 5)
	for _, a := range recommended {
		assert.Contains(t, []string{"elementary", "all"}, a["ageGroup"])
	}

	// With an active pillar only that pillar's activities come back
	pillar := firstPillar(t)
	resp = doRequest(t, "PUT", fmt.Sprintf("/api/children/%d", childID), token, map[string]interface{}{
		"currentPillarId": pillar.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "GET", fmt.Sprintf("/api/activities/recommended?childId=%d", childID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, a := range decodeList(t, resp) {
		assert.Equal(t, float64(pillar.ID), a["pillarId"])
	}
}
