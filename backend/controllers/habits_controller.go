package controllers

import (
	"errors"
	"math/rand"
	"time"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Age-appropriate confidence question pools. Selection is uniform random with
// no repetition avoidance across days.
var confidenceQuestions = map[string][]string{
	"toddler": {
		"What made you feel happy today?",
		"What was something you did all by yourself?",
		"What was something new you tried today?",
		"What was your favorite part of today?",
		"Who did you play with today?",
	},
	"elementary": {
		"What was something challenging you did today?",
		"When did you feel proud of yourself today?",
		"What problem did you solve today?",
		"What's something kind you did for someone else?",
		"What's something you learned today?",
	},
	"teen": {
		"What's something you accomplished today that you're proud of?",
		"When did you step outside your comfort zone today?",
		"How did you handle a difficult situation today?",
		"What's something you did today that shows your strengths?",
		"What's a goal you're working toward right now?",
	},
}

// pickConfidenceQuestion selects a question for the age group, falling back
// to the elementary pool for unknown groups.
func pickConfidenceQuestion(ageGroup string, intn func(n int) int) string {
	pool, ok := confidenceQuestions[ageGroup]
	if !ok {
		pool = confidenceQuestions["elementary"]
	}
	return pool[intn(len(pool))]
}

type HabitsController struct {
	DB  *gorm.DB
	Cfg *config.Config
	// Intn picks the question index. The default top-level rand.Intn is
	// safe for concurrent requests; tests inject a seeded source.
	Intn func(n int) int
}

func NewHabitsController(db *gorm.DB, cfg *config.Config) *HabitsController {
	return &HabitsController{
		DB:   db,
		Cfg:  cfg,
		Intn: rand.Intn,
	}
}

// List godoc
// @Summary Get daily habits for a child
// @Description Optional startDate and endDate query filters (YYYY-MM-DD)
// @Tags habits
// @Produce json
// @Success 200 {array} models.DailyHabit
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{childId} [get]
func (hc *HabitsController) List(c *fiber.Ctx) error {
	child, err := ownedChild(c, hc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	query := hc.DB.Where("child_id = ?", child.ID)

	if startDate := c.Query("startDate"); startDate != "" {
		start, err := parseDate(startDate)
		if err != nil {
			return utils.BadRequest(c, "Invalid start date")
		}
		query = query.Where("date >= ?", truncateToDay(start))
	}
	if endDate := c.Query("endDate"); endDate != "" {
		end, err := parseDate(endDate)
		if err != nil {
			return utils.BadRequest(c, "Invalid end date")
		}
		query = query.Where("date <= ?", truncateToDay(end))
	}

	var habits []models.DailyHabit
	if err := query.Order("date DESC").Find(&habits).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(habits)
}

// Record godoc
// @Summary Record a daily habit entry
// @Description Upserts the (child, date) record. Each provided field replaces
// @Description the stored value; omitted fields are left unchanged.
// @Tags habits
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{childId} [post]
func (hc *HabitsController) Record(c *fiber.Ctx) error {
	child, err := ownedChild(c, hc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	type HabitInput struct {
		Date               *string                     `json:"date"`
		ConfidenceQuestion *models.ConfidenceQuestion  `json:"confidenceQuestion"`
		DailyChallenge     *models.DailyChallengeEntry `json:"dailyChallenge"`
		Mood               *string                     `json:"mood"`
		Highlights         *[]string                   `json:"highlights"`
		Struggles          *[]string                   `json:"struggles"`
	}

	var input HabitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Mood != nil && !models.ValidMood(*input.Mood) {
		return utils.BadRequest(c, "Invalid mood")
	}

	day := truncateToDay(time.Now())
	if input.Date != nil {
		parsed, err := parseDate(*input.Date)
		if err != nil {
			return utils.BadRequest(c, "Invalid date")
		}
		day = truncateToDay(parsed)
	}

	var habit models.DailyHabit
	err = hc.DB.Where("child_id = ? AND date = ?", child.ID, day).First(&habit).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		habit = models.DailyHabit{ChildID: child.ID, Date: day}
		if input.ConfidenceQuestion != nil {
			habit.ConfidenceQuestion = *input.ConfidenceQuestion
		} else {
			habit.ConfidenceQuestion.Question = pickConfidenceQuestion(child.AgeGroup, hc.Intn)
		}
	case err != nil:
		return utils.ServerError(c)
	default:
		if input.ConfidenceQuestion != nil {
			habit.ConfidenceQuestion = *input.ConfidenceQuestion
		}
	}

	if input.DailyChallenge != nil {
		habit.DailyChallenge = *input.DailyChallenge
	}
	if input.Mood != nil {
		habit.Mood = *input.Mood
	}
	if input.Highlights != nil {
		habit.Highlights = datatypes.JSONSlice[string](*input.Highlights)
	}
	if input.Struggles != nil {
		habit.Struggles = datatypes.JSONSlice[string](*input.Struggles)
	}

	if err := hc.DB.Save(&habit).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{
		"habitId": habit.ID,
		"date":    habit.Date,
	})
}

// Today godoc
// @Summary Get today's habit entry for a child
// @Description When no entry exists yet, returns an unsaved template with a
// @Description freshly generated confidence question
// @Tags habits
// @Produce json
// @Success 200 {object} models.DailyHabit
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{childId}/today [get]
func (hc *HabitsController) Today(c *fiber.Ctx) error {
	child, err := ownedChild(c, hc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	today := truncateToDay(time.Now())

	var habit models.DailyHabit
	dbErr := hc.DB.Where("child_id = ? AND date = ?", child.ID, today).First(&habit).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		habit = models.DailyHabit{
			ChildID: child.ID,
			Date:    today,
			ConfidenceQuestion: models.ConfidenceQuestion{
				Question: pickConfidenceQuestion(child.AgeGroup, hc.Intn),
			},
			Mood:       "neutral",
			Highlights: datatypes.JSONSlice[string]{},
			Struggles:  datatypes.JSONSlice[string]{},
		}
	} else if dbErr != nil {
		return utils.ServerError(c)
	}

	return c.JSON(habit)
}
