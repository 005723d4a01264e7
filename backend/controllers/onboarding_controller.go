package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/engine"
	"tradequest/backend/models"
	"tradequest/backend/utils"
)

type OnboardingController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewOnboardingController(db *gorm.DB, cfg *config.Config) *OnboardingController {
	return &OnboardingController{DB: db, Cfg: cfg}
}

func (oc *OnboardingController) profile(userID uint) (*models.OnboardingProfile, error) {
	var profile models.OnboardingProfile
	err := oc.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.OnboardingProfile{UserID: userID}
		err = oc.DB.Create(&profile).Error
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveAnswers godoc
// @Summary Save onboarding answers
// @Description Merges a partial answer set into the user's questionnaire
// @Tags onboarding
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /onboarding/answers [put]
func (oc *OnboardingController) SaveAnswers(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, oc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var incoming engine.OnboardingAnswers
	if err := c.BodyParser(&incoming); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if problems := incoming.Validate(); problems != nil {
		return utils.ValidationError(c, problems)
	}

	profile, err := oc.profile(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load onboarding profile")
	}
	if profile.CompletedAt != nil {
		return utils.Conflict(c, "Onboarding already completed")
	}
	if err := profile.Apply(&incoming); err != nil {
		return utils.InternalServerError(c, "Could not store answers")
	}
	if err := oc.DB.Save(profile).Error; err != nil {
		return utils.InternalServerError(c, "Could not store answers")
	}

	// Live preview for the reassurance UI: recomputed from scratch on every
	// save, never patched incrementally.
	answers, err := profile.Answers()
	if err != nil {
		return utils.InternalServerError(c, "Could not read stored answers")
	}
	res := engine.ResolvePath(answers)

	return c.JSON(fiber.Map{
		"leading_archetype": res.Archetype,
		"match_percent":     res.MatchPercent,
		"scores":            res.Scores,
	})
}

// Preview godoc
// @Summary Preview path resolution
// @Description Returns the live archetype scores for the saved answers
// @Tags onboarding
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /onboarding/preview [get]
func (oc *OnboardingController) Preview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, oc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := oc.profile(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load onboarding profile")
	}
	answers, err := profile.Answers()
	if err != nil {
		return utils.InternalServerError(c, "Could not read stored answers")
	}

	res := engine.ResolvePath(answers)
	return c.JSON(fiber.Map{
		"leading_archetype": res.Archetype,
		"match_percent":     res.MatchPercent,
		"scores":            res.Scores,
		"fired_rules":       res.FiredRules,
	})
}

// Complete godoc
// @Summary Complete onboarding
// @Description Resolves the learning path and materializes the user's lesson plan
// @Tags onboarding
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /onboarding/complete [post]
func (oc *OnboardingController) Complete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, oc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := oc.profile(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load onboarding profile")
	}
	if profile.CompletedAt != nil {
		return utils.Conflict(c, "Onboarding already completed")
	}

	answers, err := profile.Answers()
	if err != nil {
		return utils.InternalServerError(c, "Could not read stored answers")
	}

	res := engine.ResolvePath(answers)
	curriculum, ok := engine.CurriculumFor(res.Archetype)
	if !ok {
		return utils.InternalServerError(c, "No curriculum for resolved archetype")
	}

	trace, err := json.Marshal(res.FiredRules)
	if err != nil {
		return utils.InternalServerError(c, "Could not encode resolution trace")
	}

	now := time.Now()
	path := models.UserPath{
		UserID:         userID,
		Archetype:      string(res.Archetype),
		MatchPercent:   res.MatchPercent,
		FiredRules:     trace,
		TotalLessons:   curriculum.TotalLessons,
		EstimatedWeeks: curriculum.EstimatedWeeks,
		ResolvedAt:     now,
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&path).Error; err != nil {
			return err
		}
		profile.CompletedAt = &now
		return tx.Save(profile).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not store resolved path")
	}

	return c.JSON(fiber.Map{
		"archetype":       res.Archetype,
		"match_percent":   res.MatchPercent,
		"fired_rules":     res.FiredRules,
		"total_lessons":   curriculum.TotalLessons,
		"estimated_weeks": curriculum.EstimatedWeeks,
	})
}
