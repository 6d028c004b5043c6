package controllers

import (
	"errors"
	"strconv"
	"time"

	"confidencecompass/backend/middleware"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// parseID converts a route parameter to a record id. Malformed ids are
// treated the same as missing records by the callers, per the API contract.
func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ownedChild loads the addressed child and verifies it belongs to the
// authenticated parent. On failure the error response has already been
// written and the returned child is nil, so callers short-circuit with:
//
//	child, err := ownedChild(c, db, c.Params("childId"))
//	if child == nil {
//		return err
//	}
func ownedChild(c *fiber.Ctx, db *gorm.DB, param string) (*models.Child, error) {
	id, err := parseID(param)
	if err != nil {
		return nil, utils.NotFound(c, "Child profile not found")
	}

	var child models.Child
	if err := db.First(&child, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(c, "Child profile not found")
		}
		return nil, utils.ServerError(c)
	}

	if child.ParentID != middleware.UserID(c) {
		return nil, utils.Forbidden(c, "Not authorized to access this profile")
	}

	return &child, nil
}

// parseDate accepts either a bare date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// truncateToDay normalizes a timestamp to midnight UTC, the granularity at
// which daily habits are keyed.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
