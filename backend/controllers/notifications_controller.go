package controllers

import (
	"errors"
	"strconv"

	"confidencecompass/backend/config"
	"confidencecompass/backend/middleware"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewNotificationsController(db *gorm.DB, cfg *config.Config) *NotificationsController {
	return &NotificationsController{DB: db, Cfg: cfg}
}

// List godoc
// @Summary Get notifications for current user
// @Description Optional read filter, limit (default 20) and offset
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Security ApiKeyAuth
// @Router /notifications [get]
func (nc *NotificationsController) List(c *fiber.Ctx) error {
	query := nc.DB.Where("user_id = ?", middleware.UserID(c))

	if read := c.Query("read"); read != "" {
		query = query.Where("read = ?", read == "true")
	}

	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	offset := 0
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
		offset = o
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(notifications)
}

// Unread godoc
// @Summary Get unread notifications for current user
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Security ApiKeyAuth
// @Router /notifications/unread [get]
func (nc *NotificationsController) Unread(c *fiber.Ctx) error {
	var notifications []models.Notification
	if err := nc.DB.
		Where("user_id = ? AND read = ?", middleware.UserID(c), false).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(notifications)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/{id}/read [put]
func (nc *NotificationsController) MarkRead(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Notification not found")
	}

	var notification models.Notification
	if err := nc.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Notification not found")
		}
		return utils.ServerError(c)
	}

	if notification.UserID != middleware.UserID(c) {
		return utils.Forbidden(c, "Not authorized to update this notification")
	}

	notification.Read = true
	if err := nc.DB.Save(&notification).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{"success": true})
}

// ReadAll godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /notifications/read-all [put]
func (nc *NotificationsController) ReadAll(c *fiber.Ctx) error {
	result := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", middleware.UserID(c), false).
		Update("read", true)
	if result.Error != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   result.RowsAffected,
	})
}

// UpdatePreferences godoc
// @Summary Update notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/preferences [post]
func (nc *NotificationsController) UpdatePreferences(c *fiber.Ctx) error {
	type PreferencesInput struct {
		DailyReminders         *bool `json:"dailyReminders"`
		ChallengeNotifications *bool `json:"challengeNotifications"`
		AchievementAlerts      *bool `json:"achievementAlerts"`
		WeeklyReports          *bool `json:"weeklyReports"`
	}

	var input PreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := nc.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.ServerError(c)
	}

	if input.DailyReminders != nil {
		user.Preferences.DailyReminders = *input.DailyReminders
	}
	if input.ChallengeNotifications != nil {
		user.Preferences.ChallengeNotifications = *input.ChallengeNotifications
	}
	if input.AchievementAlerts != nil {
		user.Preferences.AchievementAlerts = *input.AchievementAlerts
	}
	if input.WeeklyReports != nil {
		user.Preferences.WeeklyReports = *input.WeeklyReports
	}

	if err := nc.DB.Save(&user).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{"preferences": user.Preferences})
}
