package controllers

import (
	"errors"
	"strconv"
	"time"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChallengesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewChallengesController(db *gorm.DB, cfg *config.Config) *ChallengesController {
	return &ChallengesController{DB: db, Cfg: cfg}
}

// currentChallengeDay maps elapsed wall-clock days since start onto the
// repeating 30-day program, always returning a day in [1,30]. Days with no
// recorded completion are simply skipped over; the cycle is a pure function
// of elapsed calendar time.
func currentChallengeDay(start, now time.Time) int {
	days := int(now.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return (days % models.ChallengeCycleDays) + 1
}

// List godoc
// @Summary Get all challenges
// @Tags challenges
// @Produce json
// @Success 200 {array} models.Challenge
// @Router /challenges [get]
func (cc *ChallengesController) List(c *fiber.Ctx) error {
	var challenges []models.Challenge
	if err := cc.DB.Order("day").Find(&challenges).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(challenges)
}

// ByDay godoc
// @Summary Get challenge for a specific day
// @Tags challenges
// @Produce json
// @Success 200 {object} models.Challenge
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /challenges/day/{day} [get]
func (cc *ChallengesController) ByDay(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil || day < 1 || day > models.ChallengeCycleDays {
		return utils.BadRequest(c, "Invalid day parameter. Must be between 1 and 30.")
	}

	var challenge models.Challenge
	if err := cc.DB.Where("day = ?", day).First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Challenge not found for this day")
		}
		return utils.ServerError(c)
	}

	return c.JSON(challenge)
}

// Current godoc
// @Summary Get the current day's challenge for a child
// @Description Resolves the child's position in the 30-day cycle and returns
// @Description the challenge with its age-specific adaptation
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /challenges/current [get]
func (cc *ChallengesController) Current(c *fiber.Ctx) error {
	childID := c.Query("childId")
	if childID == "" {
		return utils.BadRequest(c, "Child ID is required")
	}

	child, err := ownedChild(c, cc.DB, childID)
	if child == nil {
		return err
	}

	start := child.CreatedAt
	if child.CurrentPillar.StartDate != nil {
		start = *child.CurrentPillar.StartDate
	}
	day := currentChallengeDay(start, time.Now())

	var challenge models.Challenge
	if err := cc.DB.Where("day = ?", day).First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Challenge not found for current day")
		}
		return utils.ServerError(c)
	}

	adaptation, ok := challenge.AgeAdaptations.Data()[child.AgeGroup]
	if !ok {
		adaptation = models.ChallengeAdaptation{Description: challenge.Description}
	}

	return c.JSON(fiber.Map{
		"id":                challenge.ID,
		"day":               challenge.Day,
		"title":             challenge.Title,
		"description":       challenge.Description,
		"pillarId":          challenge.PillarID,
		"reflectionPrompts": challenge.ReflectionPrompts,
		"ageAdaptation":     adaptation,
	})
}

// Get godoc
// @Summary Get challenge details
// @Tags challenges
// @Produce json
// @Success 200 {object} models.Challenge
// @Failure 404 {object} utils.ErrorResponse
// @Router /challenges/{id} [get]
func (cc *ChallengesController) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Challenge not found")
	}

	var challenge models.Challenge
	if err := cc.DB.First(&challenge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Challenge not found")
		}
		return utils.ServerError(c)
	}

	return c.JSON(challenge)
}
