package controllers

import (
	"errors"
	"fmt"
	"math"
	"time"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Completion-percentage policy. Targets and weights are fixed across all
// pillars, not configurable.
const (
	targetActivities = 10
	targetChallenges = 20
	activityWeight   = 0.5
	challengeWeight  = 0.5

	explorerThreshold = 5
	championThreshold = 10
)

// calculateCompletionPercentage derives a 0-100 pillar completion value from
// completed activity and challenge counts. Each component saturates at its
// target, so the result is monotonic non-decreasing in both counts.
func calculateCompletionPercentage(activities, challenges int) int {
	activityPart := math.Min(float64(activities)/targetActivities, 1)
	challengePart := math.Min(float64(challenges)/targetChallenges, 1)
	return int(math.Round((activityPart*activityWeight + challengePart*challengeWeight) * 100))
}

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetOverall godoc
// @Summary Get overall progress for a child
// @Description Aggregates progress, achievements and assessment scores across
// @Description all pillars
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{childId} [get]
func (pc *ProgressController) GetOverall(c *fiber.Ctx) error {
	child, err := ownedChild(c, pc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	var progresses []models.Progress
	if err := pc.DB.Where("child_id = ?", child.ID).
		Preload("Pillar").
		Preload("ActivitiesCompleted").
		Preload("ChallengesCompleted").
		Preload("Achievements").
		Preload("MonthlyAssessments").
		Find(&progresses).Error; err != nil {
		return utils.ServerError(c)
	}

	// Overall confidence score: mean of all monthly assessment scores.
	scoreSum, scoreCount := 0, 0
	totalActivities, totalChallenges := 0, 0
	achievements := []models.Achievement{}
	pillarProgress := make([]fiber.Map, 0, len(progresses))

	for _, p := range progresses {
		for _, a := range p.MonthlyAssessments {
			scoreSum += a.ConfidenceScore
			scoreCount++
		}
		totalActivities += len(p.ActivitiesCompleted)
		totalChallenges += len(p.ChallengesCompleted)
		achievements = append(achievements, p.Achievements...)

		pillarProgress = append(pillarProgress, fiber.Map{
			"pillarId":             p.PillarID,
			"name":                 p.Pillar.Name,
			"completionPercentage": calculateCompletionPercentage(len(p.ActivitiesCompleted), len(p.ChallengesCompleted)),
			"activitiesCompleted":  len(p.ActivitiesCompleted),
			"challengesCompleted":  len(p.ChallengesCompleted),
		})
	}

	overallScore := 0
	if scoreCount > 0 {
		overallScore = int(math.Round(float64(scoreSum) / float64(scoreCount)))
	}

	return c.JSON(fiber.Map{
		"childId":             child.ID,
		"overallScore":        overallScore,
		"pillarProgress":      pillarProgress,
		"activitiesCompleted": totalActivities,
		"challengesCompleted": totalChallenges,
		"achievements":        achievements,
	})
}

// GetPillars godoc
// @Summary Get per-pillar progress for a child
// @Tags progress
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{childId}/pillars [get]
func (pc *ProgressController) GetPillars(c *fiber.Ctx) error {
	child, err := ownedChild(c, pc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	var progresses []models.Progress
	if err := pc.DB.Where("child_id = ?", child.ID).
		Preload("Pillar").
		Preload("ActivitiesCompleted").
		Preload("ChallengesCompleted").
		Find(&progresses).Error; err != nil {
		return utils.ServerError(c)
	}

	pillarProgress := make([]fiber.Map, 0, len(progresses))
	for _, p := range progresses {
		pillarProgress = append(pillarProgress, fiber.Map{
			"pillarId":             p.PillarID,
			"name":                 p.Pillar.Name,
			"completionPercentage": calculateCompletionPercentage(len(p.ActivitiesCompleted), len(p.ChallengesCompleted)),
			"activitiesCompleted":  len(p.ActivitiesCompleted),
			"challengesCompleted":  len(p.ChallengesCompleted),
		})
	}

	return c.JSON(pillarProgress)
}

// GetPillar godoc
// @Summary Get detailed progress for one pillar
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{childId}/pillars/{pillarId} [get]
func (pc *ProgressController) GetPillar(c *fiber.Ctx) error {
	child, err := ownedChild(c, pc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	pillarID, perr := parseID(c.Params("pillarId"))
	if perr != nil {
		return utils.NotFound(c, "Progress data not found for this pillar")
	}

	var progress models.Progress
	if err := pc.DB.Where("child_id = ? AND pillar_id = ?", child.ID, pillarID).
		Preload("Pillar").
		Preload("ActivitiesCompleted.Activity").
		Preload("ChallengesCompleted.Challenge").
		Preload("Achievements").
		Preload("MonthlyAssessments").
		First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Progress data not found for this pillar")
		}
		return utils.ServerError(c)
	}

	activities := make([]fiber.Map, 0, len(progress.ActivitiesCompleted))
	for _, a := range progress.ActivitiesCompleted {
		activities = append(activities, fiber.Map{
			"activityId":    a.ActivityID,
			"title":         a.Activity.Title,
			"completedAt":   a.CompletedAt,
			"parentNotes":   a.ParentNotes,
			"childReaction": a.ChildReaction,
		})
	}

	challenges := make([]fiber.Map, 0, len(progress.ChallengesCompleted))
	for _, ch := range progress.ChallengesCompleted {
		challenges = append(challenges, fiber.Map{
			"challengeId": ch.ChallengeID,
			"title":       ch.Challenge.Title,
			"day":         ch.Challenge.Day,
			"completedAt": ch.CompletedAt,
			"reflection":  ch.Reflection,
			"difficulty":  ch.Difficulty,
		})
	}

	return c.JSON(fiber.Map{
		"pillarId":             progress.PillarID,
		"name":                 progress.Pillar.Name,
		"completionPercentage": calculateCompletionPercentage(len(progress.ActivitiesCompleted), len(progress.ChallengesCompleted)),
		"activitiesCompleted":  activities,
		"challengesCompleted":  challenges,
		"achievements":         progress.Achievements,
		"monthlyAssessments":   progress.MonthlyAssessments,
	})
}

// CompleteActivity godoc
// @Summary Mark an activity as completed
// @Description Records the completion, evaluates achievements and refreshes
// @Description the child's cached completion percentage
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{childId}/activities/{activityId} [post]
func (pc *ProgressController) CompleteActivity(c *fiber.Ctx) error {
	child, err := ownedChild(c, pc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	activityID, perr := parseID(c.Params("activityId"))
	if perr != nil {
		return utils.NotFound(c, "Activity not found")
	}

	var activity models.Activity
	if err := pc.DB.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Activity not found")
		}
		return utils.ServerError(c)
	}

	type CompletionInput struct {
		ParentNotes   string `json:"parentNotes"`
		ChildReaction string `json:"childReaction"`
	}

	var input CompletionInput
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	reaction := input.ChildReaction
	if reaction == "" {
		reaction = "neutral"
	}
	if reaction != "positive" && reaction != "neutral" && reaction != "negative" {
		return utils.BadRequest(c, "Invalid child reaction")
	}

	var activityCount, percentage int
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := findOrCreateProgress(tx, child.ID, activity.PillarID)
		if err != nil {
			return err
		}

		now := time.Now()
		var completion models.ActivityCompletion
		err = tx.Where("progress_id = ? AND activity_id = ?", progress.ID, activity.ID).
			First(&completion).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			completion = models.ActivityCompletion{
				ProgressID:    progress.ID,
				ActivityID:    activity.ID,
				CompletedAt:   now,
				ParentNotes:   input.ParentNotes,
				ChildReaction: reaction,
			}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Resubmission updates the existing record in place; the count
			// never grows past one entry per activity.
			completion.CompletedAt = now
			completion.ParentNotes = input.ParentNotes
			completion.ChildReaction = reaction
			if err := tx.Save(&completion).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.ActivityCompletion{}).
			Where("progress_id = ?", progress.ID).Count(&count).Error; err != nil {
			return err
		}
		activityCount = int(count)

		if activityCount == explorerThreshold {
			name := progress.Pillar.Name + " Explorer"
			description := fmt.Sprintf("Completed %d activities in the %s pillar", explorerThreshold, progress.Pillar.Name)
			if err := awardAchievement(tx, progress, child, name, description, "explorer-badge.png"); err != nil {
				return err
			}
		}

		var challengeCount int64
		if err := tx.Model(&models.ChallengeCompletion{}).
			Where("progress_id = ?", progress.ID).Count(&challengeCount).Error; err != nil {
			return err
		}

		percentage = calculateCompletionPercentage(activityCount, int(challengeCount))
		return updateChildPercentage(tx, child, activity.PillarID, percentage)
	})
	if txErr != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"updatedProgress": fiber.Map{
			"activitiesCompleted":  activityCount,
			"completionPercentage": percentage,
		},
	})
}

// CompleteChallenge godoc
// @Summary Mark a daily challenge as completed
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{childId}/challenges/{challengeId} [post]
func (pc *ProgressController) CompleteChallenge(c *fiber.Ctx) error {
	child, err := ownedChild(c, pc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	challengeID, perr := parseID(c.Params("challengeId"))
	if perr != nil {
		return utils.NotFound(c, "Challenge not found")
	}

	var challenge models.Challenge
	if err := pc.DB.First(&challenge, challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Challenge not found")
		}
		return utils.ServerError(c)
	}

	type CompletionInput struct {
		Reflection string `json:"reflection"`
		Difficulty int    `json:"difficulty"`
	}

	var input CompletionInput
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Difficulty != 0 && (input.Difficulty < 1 || input.Difficulty > 5) {
		return utils.BadRequest(c, "Difficulty must be between 1 and 5")
	}

	var challengeCount, percentage int
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := findOrCreateProgress(tx, child.ID, challenge.PillarID)
		if err != nil {
			return err
		}

		now := time.Now()
		var completion models.ChallengeCompletion
		err = tx.Where("progress_id = ? AND challenge_id = ?", progress.ID, challenge.ID).
			First(&completion).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			completion = models.ChallengeCompletion{
				ProgressID:  progress.ID,
				ChallengeID: challenge.ID,
				CompletedAt: now,
				Reflection:  input.Reflection,
				Difficulty:  input.Difficulty,
			}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			completion.CompletedAt = now
			completion.Reflection = input.Reflection
			completion.Difficulty = input.Difficulty
			if err := tx.Save(&completion).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.ChallengeCompletion{}).
			Where("progress_id = ?", progress.ID).Count(&count).Error; err != nil {
			return err
		}
		challengeCount = int(count)

		if challengeCount == championThreshold {
			name := progress.Pillar.Name + " Champion"
			description := fmt.Sprintf("Completed %d challenges in the %s pillar", championThreshold, progress.Pillar.Name)
			if err := awardAchievement(tx, progress, child, name, description, "champion-badge.png"); err != nil {
				return err
			}
		}

		var activityCount int64
		if err := tx.Model(&models.ActivityCompletion{}).
			Where("progress_id = ?", progress.ID).Count(&activityCount).Error; err != nil {
			return err
		}

		percentage = calculateCompletionPercentage(int(activityCount), challengeCount)
		return updateChildPercentage(tx, child, challenge.PillarID, percentage)
	})
	if txErr != nil {
		return utils.ServerError(c)
	}

	nextDay := (challenge.Day % models.ChallengeCycleDays) + 1
	var nextChallenge *models.Challenge
	var next models.Challenge
	if err := pc.DB.Where("day = ?", nextDay).First(&next).Error; err == nil {
		nextChallenge = &next
	}

	return c.JSON(fiber.Map{
		"success": true,
		"updatedProgress": fiber.Map{
			"challengesCompleted":  challengeCount,
			"completionPercentage": percentage,
		},
		"nextChallenge": nextChallenge,
	})
}

// AddAssessment godoc
// @Summary Record a monthly confidence assessment
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.MonthlyAssessment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{childId}/assessments [post]
func (pc *ProgressController) AddAssessment(c *fiber.Ctx) error {
	child, err := ownedChild(c, pc.DB, c.Params("childId"))
	if child == nil {
		return err
	}

	type AssessmentInput struct {
		PillarID            *uint    `json:"pillarId"`
		ConfidenceScore     int      `json:"confidenceScore"`
		Strengths           []string `json:"strengths"`
		AreasForImprovement []string `json:"areasForImprovement"`
		ParentObservations  string   `json:"parentObservations"`
	}

	var input AssessmentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.ConfidenceScore < 1 || input.ConfidenceScore > 10 {
		return utils.BadRequest(c, "Confidence score must be between 1 and 10")
	}

	pillarID := input.PillarID
	if pillarID == nil {
		pillarID = child.CurrentPillar.PillarID
	}
	if pillarID == nil {
		return utils.BadRequest(c, "No pillar specified and no active pillar for this child")
	}

	var pillar models.Pillar
	if err := pc.DB.First(&pillar, *pillarID).Error; err != nil {
		return utils.NotFound(c, "Pillar not found")
	}

	var assessment models.MonthlyAssessment
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := findOrCreateProgress(tx, child.ID, *pillarID)
		if err != nil {
			return err
		}

		assessment = models.MonthlyAssessment{
			ProgressID:          progress.ID,
			Date:                time.Now(),
			ConfidenceScore:     input.ConfidenceScore,
			Strengths:           datatypes.JSONSlice[string](input.Strengths),
			AreasForImprovement: datatypes.JSONSlice[string](input.AreasForImprovement),
			ParentObservations:  input.ParentObservations,
		}
		return tx.Create(&assessment).Error
	})
	if txErr != nil {
		return utils.ServerError(c)
	}

	return c.JSON(assessment)
}

// findOrCreateProgress returns the progress row for a (child, pillar) pair,
// creating it lazily on the first completion event. The Pillar association is
// always populated.
func findOrCreateProgress(tx *gorm.DB, childID, pillarID uint) (*models.Progress, error) {
	var progress models.Progress
	err := tx.Where("child_id = ? AND pillar_id = ?", childID, pillarID).
		Preload("Pillar").First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.Progress{ChildID: childID, PillarID: pillarID}
	if err := tx.Create(&progress).Error; err != nil {
		return nil, err
	}
	if err := tx.First(&progress.Pillar, pillarID).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// awardAchievement inserts the named achievement unless the progress row
// already holds one with that exact name, then notifies the parent if
// achievement alerts are enabled.
func awardAchievement(tx *gorm.DB, progress *models.Progress, child *models.Child, name, description, icon string) error {
	var existing int64
	if err := tx.Model(&models.Achievement{}).
		Where("progress_id = ? AND name = ?", progress.ID, name).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	achievement := models.Achievement{
		ProgressID:  progress.ID,
		Name:        name,
		Description: description,
		AwardedAt:   time.Now(),
		Icon:        icon,
	}
	if err := tx.Create(&achievement).Error; err != nil {
		return err
	}

	var parent models.User
	if err := tx.First(&parent, child.ParentID).Error; err != nil {
		return err
	}
	if !parent.Preferences.AchievementAlerts {
		return nil
	}

	return tx.Create(&models.Notification{
		UserID:       child.ParentID,
		Type:         "achievement",
		Title:        "Achievement unlocked",
		Message:      child.FirstName + " earned the \"" + name + "\" achievement!",
		ScheduledFor: time.Now(),
		RelatedEntity: models.RelatedEntity{
			Type: "achievement",
			ID:   &achievement.ID,
		},
	}).Error
}

// updateChildPercentage refreshes the cached completion percentage, but only
// when the completed pillar is the child's currently active one.
func updateChildPercentage(tx *gorm.DB, child *models.Child, pillarID uint, percentage int) error {
	if child.CurrentPillar.PillarID == nil || *child.CurrentPillar.PillarID != pillarID {
		return nil
	}
	child.CurrentPillar.CompletionPercentage = percentage
	return tx.Save(child).Error
}
