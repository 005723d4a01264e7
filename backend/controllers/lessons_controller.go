package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/engine"
	"tradequest/backend/models"
	"tradequest/backend/utils"
)

type LessonsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLessonsController(db *gorm.DB, cfg *config.Config) *LessonsController {
	return &LessonsController{DB: db, Cfg: cfg}
}

// CompleteLesson godoc
// @Summary Complete a lesson
// @Description Records a lesson completion and credits XP exactly once
// @Tags lessons
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{code}/complete [post]
func (lc *LessonsController) CompleteLesson(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	code := engine.LessonCode(c.Params("code"))
	if _, _, err := engine.ParseLessonCode(code); err != nil {
		return utils.BadRequest(c, "Invalid lesson code")
	}

	type CompleteInput struct {
		Score     *int   `json:"score"`
		AttemptID string `json:"attempt_id"`
	}
	var input CompleteInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}
	if input.Score != nil && (*input.Score < 0 || *input.Score > 100) {
		return utils.BadRequest(c, "Score must be between 0 and 100")
	}
	if input.AttemptID == "" {
		input.AttemptID = uuid.NewString()
	}

	var path models.UserPath
	if err := lc.DB.Where("user_id = ?", userID).First(&path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Onboarding not completed")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	curriculum, ok := engine.CurriculumFor(engine.Archetype(path.Archetype))
	if !ok {
		return utils.InternalServerError(c, "Unknown archetype on stored path")
	}
	if !curriculumContains(curriculum, code) {
		return utils.NotFound(c, "Lesson is not part of your path")
	}

	award := engine.LessonXPAward(input.Score)
	alreadyCompleted := false

	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.LessonCompletion
		err := tx.Where("user_id = ? AND lesson_code = ?", userID, string(code)).First(&existing).Error
		if err == nil {
			// Retried submission: the completion stands, nothing is
			// credited a second time.
			alreadyCompleted = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.LessonCompletion{
			UserID:      userID,
			LessonCode:  string(code),
			Score:       input.Score,
			AttemptID:   input.AttemptID,
			CompletedAt: time.Now(),
		}).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.XPEvent{
			UserID:         userID,
			Amount:         award,
			Source:         "lesson",
			IdempotencyKey: fmt.Sprintf("lesson:%d:%s", userID, code),
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.UserProgress{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"total_xp":          gorm.Expr("total_xp + ?", award),
				"lessons_completed": gorm.Expr("lessons_completed + 1"),
				"last_active":       time.Now(),
			}).Error; err != nil {
			return err
		}

		return addPeriodXP(tx, userID, award, lc.Cfg.CohortSize)
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not record completion")
	}

	var progress models.UserProgress
	if err := lc.DB.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	info := engine.ComputeLevel(progress.TotalXP)

	return c.JSON(fiber.Map{
		"lesson":            code,
		"already_completed": alreadyCompleted,
		"xp_awarded":        awardUnlessDuplicate(award, alreadyCompleted),
		"total_xp":          progress.TotalXP,
		"level":             info,
		"rewards_owed":      len(engine.RewardsOwed(progress.LastGrantedLevel, info.Level)),
	})
}

func awardUnlessDuplicate(award int, duplicate bool) int {
	if duplicate {
		return 0
	}
	return award
}

func curriculumContains(c engine.Curriculum, code engine.LessonCode) bool {
	for _, l := range c.Lessons {
		if l.Code == code {
			return true
		}
	}
	return false
}
