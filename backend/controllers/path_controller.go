package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/engine"
	"tradequest/backend/models"
	"tradequest/backend/utils"
)

type PathController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPathController(db *gorm.DB, cfg *config.Config) *PathController {
	return &PathController{DB: db, Cfg: cfg}
}

// GetPath godoc
// @Summary Get the user's learning path
// @Description Returns the curriculum with per-lesson states derived from completions
// @Tags path
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /path [get]
func (pc *PathController) GetPath(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var path models.UserPath
	if err := pc.DB.Where("user_id = ?", userID).First(&path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Onboarding not completed")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	curriculum, ok := engine.CurriculumFor(engine.Archetype(path.Archetype))
	if !ok {
		return utils.InternalServerError(c, "Unknown archetype on stored path")
	}

	completed, err := pc.completedSet(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	// Display state is recomputed from the completed set on every render;
	// nothing about "current" is stored.
	progress := engine.DeriveLessonStates(curriculum.Lessons, completed)

	return c.JSON(fiber.Map{
		"archetype":       path.Archetype,
		"match_percent":   path.MatchPercent,
		"estimated_weeks": curriculum.EstimatedWeeks,
		"total_lessons":   curriculum.TotalLessons,
		"lessons":         progress.Lessons,
		"modules":         progress.Modules,
		"days":            progress.Days,
		"current":         progress.Current,
	})
}

// GetCurriculum godoc
// @Summary Get a curriculum
// @Description Returns the static lesson plan of one archetype
// @Tags path
// @Produce json
// @Success 200 {object} engine.Curriculum
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /path/curriculum/{archetype} [get]
func (pc *PathController) GetCurriculum(c *fiber.Ctx) error {
	archetype := c.Params("archetype")
	if !engine.ValidArchetype(archetype) {
		return utils.NotFound(c, "Unknown archetype")
	}
	curriculum, _ := engine.CurriculumFor(engine.Archetype(archetype))
	return c.JSON(curriculum)
}

func (pc *PathController) completedSet(userID uint) (map[engine.LessonCode]bool, error) {
	var completions []models.LessonCompletion
	if err := pc.DB.Where("user_id = ?", userID).Find(&completions).Error; err != nil {
		return nil, err
	}
	completed := make(map[engine.LessonCode]bool, len(completions))
	for _, lc := range completions {
		completed[engine.LessonCode(lc.LessonCode)] = true
	}
	return completed, nil
}
