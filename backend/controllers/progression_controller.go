package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/engine"
	"tradequest/backend/models"
	"tradequest/backend/utils"
)

type ProgressionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressionController(db *gorm.DB, cfg *config.Config) *ProgressionController {
	return &ProgressionController{DB: db, Cfg: cfg}
}

// GetProgression godoc
// @Summary Get progression state
// @Description Returns level, tier, XP within level and any unclaimed rewards
// @Tags progression
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progression [get]
func (pc *ProgressionController) GetProgression(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := pc.progressRow(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	info := engine.ComputeLevel(progress.TotalXP)
	owed := engine.RewardsOwed(progress.LastGrantedLevel, info.Level)

	var unlocks []models.FeatureUnlock
	if err := pc.DB.Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Find(&unlocks).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"level":          info,
		"streak_days":    progress.StreakDays,
		"coins":          progress.Coins,
		"rewards_owed":   owed,
		"active_unlocks": unlocks,
	})
}

// ClaimRewards godoc
// @Summary Claim level rewards
// @Description Grants every level reward owed since the last claim, exactly once
// @Tags progression
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progression/claim [post]
func (pc *ProgressionController) ClaimRewards(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := pc.progressRow(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	info := engine.ComputeLevel(progress.TotalXP)
	owed := engine.RewardsOwed(progress.LastGrantedLevel, info.Level)
	if len(owed) == 0 {
		return c.JSON(fiber.Map{"granted": []engine.LevelReward{}, "coins": progress.Coins})
	}

	granted := make([]engine.LevelReward, 0, len(owed))
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		coins := 0
		for _, reward := range owed {
			grant := models.RewardGrant{
				UserID:    userID,
				RewardID:  reward.ID,
				Coins:     reward.Bundle.Coins,
				Badge:     reward.Bundle.Badge,
				GrantedAt: time.Now(),
			}
			if err := tx.Create(&grant).Error; err != nil {
				// The unique index already holds this reward: a racing
				// claim granted it, skip without failing the batch.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return err
			}
			coins += reward.Bundle.Coins
			granted = append(granted, reward)

			// The grant row above is the once-only gate, so unlock rows for
			// a fresh grant cannot already exist.
			for _, unlock := range reward.Bundle.Unlocks {
				if err := tx.Create(&models.FeatureUnlock{
					UserID:    userID,
					RewardID:  reward.ID,
					Feature:   unlock.Feature,
					ExpiresAt: unlock.ExpiresFrom(grant.GrantedAt),
				}).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&models.UserProgress{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"coins":              gorm.Expr("coins + ?", coins),
				"last_granted_level": info.Level,
			}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not grant rewards")
	}

	return c.JSON(fiber.Map{
		"granted": granted,
		"level":   info.Level,
	})
}

// GetOverview godoc
// @Summary Get progress overview
// @Description Returns the combined streak, level and league summary
// @Tags progression
// @Produce json
// @Success 200 {object} models.ProgressOverview
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progression/overview [get]
func (pc *ProgressionController) GetOverview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := pc.progressRow(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	info := engine.ComputeLevel(progress.TotalXP)
	overview := models.ProgressOverview{
		StreakDays:       progress.StreakDays,
		LessonsCompleted: progress.LessonsCompleted,
		Coins:            progress.Coins,
		Level:            info,
		RewardsOwed:      len(engine.RewardsOwed(progress.LastGrantedLevel, info.Level)),
	}

	period := engine.PeriodID(time.Now())
	var membership models.LeagueMembership
	if err := pc.DB.Where("user_id = ? AND period_id = ?", userID, period).
		First(&membership).Error; err == nil {
		status := engine.ComputeLeagueStatus(membership.Rank, membership.PeriodXP, pc.Cfg.CohortSize)
		if membership.League != "" {
			status.League = engine.League(membership.League)
		}
		overview.League = &status
	}

	return c.JSON(overview)
}

func (pc *ProgressionController) progressRow(userID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := pc.DB.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.UserProgress{UserID: userID, LastActive: time.Now(), LastGrantedLevel: 1}
		err = pc.DB.Create(&progress).Error
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
