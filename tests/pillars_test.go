package tests

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPillars(t *testing.T) {
	resp := doRequest(t, "GET", "/api/pillars", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	pillars := decodeList(t, resp)
	require.Len(t, pillars, 5)
	assert.Equal(t, "Independence & Problem-Solving", pillars[0]["name"])
	assert.Equal(t, "Managing Fear & Anxiety", pillars[4]["name"])
	for i, p := range pillars {
		assert.Equal(t, float64(i+1), p["order"])
	}
}

func TestGetPillar(t *testing.T) {
	pillar := firstPillar(t)

	resp := doRequest(t, "GET", fmt.Sprintf("/api/pillars/%d", pillar.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, pillar.Name, decodeMap(t, resp)["name"])

	resp = doRequest(t, "GET", "/api/pillars/999999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/pillars/not-an-id", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPillarTechniques(t *testing.T) {
	pillar := firstPillar(t)

	resp := doRequest(t, "GET", fmt.Sprintf("/api/pillars/%d/techniques", pillar.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	techniques := decodeList(t, resp)
	require.NotEmpty(t, techniques)
	assert.Equal(t, `The "Ask, Don't Tell" Method`, techniques[0]["name"])
	assert.NotEmpty(t, techniques[0]["steps"])
}

func TestPillarAgeAdaptations(t *testing.T) {
	pillar := firstPillar(t)

	resp := doRequest(t, "GET", fmt.Sprintf("/api/pillars/%d/age-adaptations/teen", pillar.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	adaptation := decodeMap(t, resp)
	assert.NotEmpty(t, adaptation["description"])
	assert.NotEmpty(t, adaptation["examples"])

	resp = doRequest(t, "GET", fmt.Sprintf("/api/pillars/%d/age-adaptations/senior", pillar.ID), "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
