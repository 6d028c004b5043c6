package controllers

import (
	"errors"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ActivitiesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewActivitiesController(db *gorm.DB, cfg *config.Config) *ActivitiesController {
	return &ActivitiesController{DB: db, Cfg: cfg}
}

// List godoc
// @Summary Get all activities
// @Description Optional pillarId and ageGroup query filters
// @Tags activities
// @Produce json
// @Success 200 {array} models.Activity
// @Router /activities [get]
func (ac *ActivitiesController) List(c *fiber.Ctx) error {
	query := ac.DB.Model(&models.Activity{})

	if pillarID := c.Query("pillarId"); pillarID != "" {
		id, err := parseID(pillarID)
		if err != nil {
			return utils.BadRequest(c, "Invalid pillar ID")
		}
		query = query.Where("pillar_id = ?", id)
	}

	if ageGroup := c.Query("ageGroup"); ageGroup != "" && ageGroup != "all" {
		if !models.ValidAgeGroup(ageGroup) {
			return utils.BadRequest(c, "Invalid age group")
		}
		query = query.Where("age_group IN ?", []string{ageGroup, "all"})
	}

	var activities []models.Activity
	if err := query.Order("title").Find(&activities).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(activities)
}

// Recommended godoc
// @Summary Get recommended activities for a child
// @Description Matches the child's age group and current pillar
// @Tags activities
// @Produce json
// @Success 200 {array} models.Activity
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activities/recommended [get]
func (ac *ActivitiesController) Recommended(c *fiber.Ctx) error {
	childID := c.Query("childId")
	if childID == "" {
		return utils.BadRequest(c, "Child ID is required")
	}

	child, err := ownedChild(c, ac.DB, childID)
	if child == nil {
		return err
	}

	query := ac.DB.Where("age_group IN ?", []string{child.AgeGroup, "all"})
	if child.CurrentPillar.PillarID != nil {
		query = query.Where("pillar_id = ?", *child.CurrentPillar.PillarID)
	}

	var activities []models.Activity
	if err := query.Order("difficulty").Limit(5).Find(&activities).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(activities)
}

// Get godoc
// @Summary Get activity details
// @Tags activities
// @Produce json
// @Success 200 {object} models.Activity
// @Failure 404 {object} utils.ErrorResponse
// @Router /activities/{id} [get]
func (ac *ActivitiesController) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Activity not found")
	}

	var activity models.Activity
	if err := ac.DB.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Activity not found")
		}
		return utils.ServerError(c)
	}

	return c.JSON(activity)
}
