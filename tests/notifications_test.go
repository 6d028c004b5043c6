package tests

import (
	"fmt"
	"testing"

	"confidencecompass/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationReadFlow(t *testing.T) {
	token, userID := registerParent(t)
	childID := createChild(t, token, "Kai", "elementary")
	pillar := firstPillar(t)

	// Starting a pillar generates a notification for the parent
	resp := doRequest(t, "PUT", fmt.Sprintf("/api/children/%d", childID), token, map[string]interface{}{
		"currentPillarId": pillar.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/notifications", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	notifications := decodeList(t, resp)
	require.Len(t, notifications, 1)
	assert.Equal(t, "pillar_transition", notifications[0]["type"])
	assert.Equal(t, false, notifications[0]["read"])
	notificationID := uint(notifications[0]["ID"].(float64))

	resp = doRequest(t, "GET", "/api/notifications/unread", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 1)

	resp = doRequest(t, "PUT", fmt.Sprintf("/api/notifications/%d/read", notificationID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/notifications/unread", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))

	// Another user cannot touch this notification
	otherToken, _ := registerParent(t)
	resp = doRequest(t, "PUT", fmt.Sprintf("/api/notifications/%d/read", notificationID), otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, "PUT", "/api/notifications/999999/read", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Sanity check the row belongs to the right user
	var stored models.Notification
	require.NoError(t, db.First(&stored, notificationID).Error)
	assert.Equal(t, userID, stored.UserID)
}

func TestReadAllNotifications(t *testing.T) {
	token, userID := registerParent(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Notification{
			UserID:  userID,
			Type:    "daily_reminder",
			Title:   "Daily check-in",
			Message: "Time for today's challenge",
		}).Error)
	}

	resp := doRequest(t, "PUT", "/api/notifications/read-all", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeMap(t, resp)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, float64(3), result["count"])

	resp = doRequest(t, "GET", "/api/notifications/unread", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))
}

func TestNotificationListFilters(t *testing.T) {
	token, userID := registerParent(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.Notification{
			UserID: userID,
			Type:   "daily_reminder",
			Title:  fmt.Sprintf("Reminder %d", i+1),
			Read:   i%2 == 0,
		}).Error)
	}

	resp := doRequest(t, "GET", "/api/notifications?read=false", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)

	resp = doRequest(t, "GET", "/api/notifications?limit=2", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)
}

func TestUpdateNotificationPreferences(t *testing.T) {
	token, userID := registerParent(t)

	resp := doRequest(t, "POST", "/api/notifications/preferences", token, map[string]interface{}{
		"achievementAlerts": false,
		"weeklyReports":     true,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	prefs := decodeMap(t, resp)["preferences"].(map[string]interface{})
	assert.Equal(t, false, prefs["achievementAlerts"])
	assert.Equal(t, true, prefs["weeklyReports"])
	// Untouched preferences keep their defaults
	assert.Equal(t, true, prefs["dailyReminders"])
	assert.Equal(t, true, prefs["challengeNotifications"])

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	assert.False(t, user.Preferences.AchievementAlerts)
}
