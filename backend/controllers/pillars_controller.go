package controllers

import (
	"errors"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PillarsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPillarsController(db *gorm.DB, cfg *config.Config) *PillarsController {
	return &PillarsController{DB: db, Cfg: cfg}
}

// List godoc
// @Summary Get all pillars
// @Tags pillars
// @Produce json
// @Success 200 {array} models.Pillar
// @Router /pillars [get]
func (pc *PillarsController) List(c *fiber.Ctx) error {
	var pillars []models.Pillar
	if err := pc.DB.Order("sort_order").Find(&pillars).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(pillars)
}

// Get godoc
// @Summary Get pillar details
// @Tags pillars
// @Produce json
// @Success 200 {object} models.Pillar
// @Failure 404 {object} utils.ErrorResponse
// @Router /pillars/{id} [get]
func (pc *PillarsController) Get(c *fiber.Ctx) error {
	pillar, err := pc.loadPillar(c)
	if pillar == nil {
		return err
	}

	return c.JSON(pillar)
}

// Techniques godoc
// @Summary Get techniques for a pillar
// @Tags pillars
// @Produce json
// @Success 200 {array} models.Technique
// @Failure 404 {object} utils.ErrorResponse
// @Router /pillars/{id}/techniques [get]
func (pc *PillarsController) Techniques(c *fiber.Ctx) error {
	pillar, err := pc.loadPillar(c)
	if pillar == nil {
		return err
	}

	return c.JSON(pillar.Techniques.Data())
}

// AgeAdaptations godoc
// @Summary Get age-specific adaptations for a pillar
// @Tags pillars
// @Produce json
// @Success 200 {object} models.PillarAdaptation
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /pillars/{id}/age-adaptations/{ageGroup} [get]
func (pc *PillarsController) AgeAdaptations(c *fiber.Ctx) error {
	ageGroup := c.Params("ageGroup")
	if !models.ValidAgeGroup(ageGroup) {
		return utils.BadRequest(c, "Invalid age group")
	}

	pillar, err := pc.loadPillar(c)
	if pillar == nil {
		return err
	}

	adaptation, ok := pillar.AgeAdaptations.Data()[ageGroup]
	if !ok {
		return utils.NotFound(c, "Adaptations not found for this age group")
	}

	return c.JSON(adaptation)
}

func (pc *PillarsController) loadPillar(c *fiber.Ctx) (*models.Pillar, error) {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return nil, utils.NotFound(c, "Pillar not found")
	}

	var pillar models.Pillar
	if err := pc.DB.First(&pillar, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(c, "Pillar not found")
		}
		return nil, utils.ServerError(c)
	}

	return &pillar, nil
}
