package controllers

import (
	"time"

	"confidencecompass/backend/config"
	"confidencecompass/backend/middleware"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChildrenController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewChildrenController(db *gorm.DB, cfg *config.Config) *ChildrenController {
	return &ChildrenController{DB: db, Cfg: cfg}
}

// List godoc
// @Summary Get all children for current parent
// @Tags children
// @Produce json
// @Success 200 {array} models.Child
// @Security ApiKeyAuth
// @Router /children [get]
func (cc *ChildrenController) List(c *fiber.Ctx) error {
	var children []models.Child
	if err := cc.DB.
		Where("parent_id = ?", middleware.UserID(c)).
		Order("first_name").
		Find(&children).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(children)
}

// Create godoc
// @Summary Create a new child profile
// @Tags children
// @Accept json
// @Produce json
// @Success 200 {object} models.Child
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /children [post]
func (cc *ChildrenController) Create(c *fiber.Ctx) error {
	type ChildInput struct {
		FirstName   string   `json:"firstName"`
		LastName    string   `json:"lastName"`
		DateOfBirth string   `json:"dateOfBirth"`
		AgeGroup    string   `json:"ageGroup"`
		Avatar      string   `json:"avatar"`
		Strengths   []string `json:"strengths"`
		Interests   []string `json:"interests"`
		Notes       string   `json:"notes"`
	}

	var input ChildInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.FirstName == "" || input.LastName == "" {
		return utils.BadRequest(c, "First and last name are required")
	}

	if !models.ValidAgeGroup(input.AgeGroup) {
		return utils.BadRequest(c, "Invalid age group")
	}

	dob, err := parseDate(input.DateOfBirth)
	if err != nil {
		return utils.BadRequest(c, "Invalid date of birth")
	}

	child := models.Child{
		ParentID:    middleware.UserID(c),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: dob,
		AgeGroup:    input.AgeGroup,
		Strengths:   datatypes.JSONSlice[string](input.Strengths),
		Interests:   datatypes.JSONSlice[string](input.Interests),
		Notes:       input.Notes,
	}
	if input.Avatar != "" {
		child.Avatar = input.Avatar
	}

	if err := cc.DB.Create(&child).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(child)
}

// Get godoc
// @Summary Get child profile details
// @Tags children
// @Produce json
// @Success 200 {object} models.Child
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /children/{id} [get]
func (cc *ChildrenController) Get(c *fiber.Ctx) error {
	child, err := ownedChild(c, cc.DB, c.Params("id"))
	if child == nil {
		return err
	}

	return c.JSON(child)
}

// Update godoc
// @Summary Update child profile
// @Description Updates provided fields only. Setting currentPillarId starts
// @Description a new pillar cycle for the child.
// @Tags children
// @Accept json
// @Produce json
// @Success 200 {object} models.Child
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /children/{id} [put]
func (cc *ChildrenController) Update(c *fiber.Ctx) error {
	child, err := ownedChild(c, cc.DB, c.Params("id"))
	if child == nil {
		return err
	}

	type ChildUpdate struct {
		FirstName       *string   `json:"firstName"`
		LastName        *string   `json:"lastName"`
		DateOfBirth     *string   `json:"dateOfBirth"`
		AgeGroup        *string   `json:"ageGroup"`
		Avatar          *string   `json:"avatar"`
		Strengths       *[]string `json:"strengths"`
		Interests       *[]string `json:"interests"`
		Notes           *string   `json:"notes"`
		CurrentPillarID *uint     `json:"currentPillarId"`
	}

	var input ChildUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.FirstName != nil {
		child.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		child.LastName = *input.LastName
	}
	if input.DateOfBirth != nil {
		dob, err := parseDate(*input.DateOfBirth)
		if err != nil {
			return utils.BadRequest(c, "Invalid date of birth")
		}
		child.DateOfBirth = dob
	}
	if input.AgeGroup != nil {
		if !models.ValidAgeGroup(*input.AgeGroup) {
			return utils.BadRequest(c, "Invalid age group")
		}
		child.AgeGroup = *input.AgeGroup
	}
	if input.Avatar != nil {
		child.Avatar = *input.Avatar
	}
	if input.Strengths != nil {
		child.Strengths = datatypes.JSONSlice[string](*input.Strengths)
	}
	if input.Interests != nil {
		child.Interests = datatypes.JSONSlice[string](*input.Interests)
	}
	if input.Notes != nil {
		child.Notes = *input.Notes
	}

	pillarChanged := false
	if input.CurrentPillarID != nil {
		var pillar models.Pillar
		if err := cc.DB.First(&pillar, *input.CurrentPillarID).Error; err != nil {
			return utils.NotFound(c, "Pillar not found")
		}
		now := time.Now()
		child.CurrentPillar = models.CurrentPillar{
			PillarID:             input.CurrentPillarID,
			StartDate:            &now,
			CompletionPercentage: 0,
		}
		pillarChanged = true
	}

	if err := cc.DB.Save(child).Error; err != nil {
		return utils.ServerError(c)
	}

	if pillarChanged {
		cc.notifyPillarTransition(child)
	}

	return c.JSON(child)
}

// Delete godoc
// @Summary Delete child profile
// @Tags children
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /children/{id} [delete]
func (cc *ChildrenController) Delete(c *fiber.Ctx) error {
	child, err := ownedChild(c, cc.DB, c.Params("id"))
	if child == nil {
		return err
	}

	if err := cc.DB.Delete(child).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (cc *ChildrenController) notifyPillarTransition(child *models.Child) {
	var parent models.User
	if err := cc.DB.First(&parent, child.ParentID).Error; err != nil {
		return
	}
	if !parent.Preferences.ChallengeNotifications {
		return
	}

	var pillar models.Pillar
	if err := cc.DB.First(&pillar, *child.CurrentPillar.PillarID).Error; err != nil {
		return
	}

	cc.DB.Create(&models.Notification{
		UserID:       child.ParentID,
		Type:         "pillar_transition",
		Title:        "New pillar started",
		Message:      child.FirstName + " is now working on " + pillar.Name + ".",
		ScheduledFor: time.Now(),
		RelatedEntity: models.RelatedEntity{
			Type: "pillar",
			ID:   child.CurrentPillar.PillarID,
		},
	})
}
