package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/engine"
	"tradequest/backend/models"
	"tradequest/backend/utils"
)

type LeagueController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLeagueController(db *gorm.DB, cfg *config.Config) *LeagueController {
	return &LeagueController{DB: db, Cfg: cfg}
}

// addPeriodXP upserts the user's membership for the current period and adds
// the award to their period experience. Called inside the lesson-completion
// transaction so period XP can never drift from the XP ledger.
func addPeriodXP(tx *gorm.DB, userID uint, amount, cohortSize int) error {
	now := time.Now()
	period := engine.PeriodID(now)

	var membership models.LeagueMembership
	err := tx.Where("user_id = ? AND period_id = ?", userID, period).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		membership, err = newMembership(tx, userID, period, cohortSize)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return tx.Model(&membership).
		Update("period_xp", gorm.Expr("period_xp + ?", amount)).Error
}

// newMembership places a user into the current period: into the latest
// cohort with room, or a fresh one. The league carries over from the
// previous period with the zone movement applied; first-time players start
// without a league and get their initial placement from period XP.
func newMembership(tx *gorm.DB, userID uint, period, cohortSize int) (models.LeagueMembership, error) {
	if cohortSize < 1 {
		cohortSize = engine.DefaultCohortSize
	}

	var cohortID uint = 1
	var latest models.LeagueMembership
	err := tx.Where("period_id = ?", period).Order("cohort_id DESC").First(&latest).Error
	if err == nil {
		var members int64
		if err := tx.Model(&models.LeagueMembership{}).
			Where("period_id = ? AND cohort_id = ?", period, latest.CohortID).
			Count(&members).Error; err != nil {
			return models.LeagueMembership{}, err
		}
		cohortID = latest.CohortID
		if members >= int64(cohortSize) {
			cohortID++
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LeagueMembership{}, err
	}

	league := ""
	var previous models.LeagueMembership
	err = tx.Where("user_id = ? AND period_id < ?", userID, period).
		Order("period_id DESC").First(&previous).Error
	if err == nil && previous.League != "" {
		zone := engine.ZoneFor(engine.ClampRank(previous.Rank, cohortSize), cohortSize)
		league = string(engine.NextLeague(engine.League(previous.League), zone))
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LeagueMembership{}, err
	}

	membership := models.LeagueMembership{
		UserID:   userID,
		PeriodID: period,
		CohortID: cohortID,
		League:   league,
	}
	if err := tx.Create(&membership).Error; err != nil {
		return models.LeagueMembership{}, err
	}
	return membership, nil
}

// GetLeague godoc
// @Summary Get league status
// @Description Returns the user's tier, zone and reward tier for the current period
// @Tags league
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /league [get]
func (lc *LeagueController) GetLeague(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	now := time.Now()
	period := engine.PeriodID(now)

	var membership models.LeagueMembership
	err = lc.DB.Where("user_id = ? AND period_id = ?", userID, period).First(&membership).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	rank := engine.Unranked
	if membership.ID != 0 && membership.PeriodXP > 0 {
		var ahead int64
		if err := lc.DB.Model(&models.LeagueMembership{}).
			Where("period_id = ? AND cohort_id = ? AND period_xp > ?", period, membership.CohortID, membership.PeriodXP).
			Count(&ahead).Error; err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
		rank = engine.ClampRank(int(ahead)+1, lc.Cfg.CohortSize)
	}

	status := engine.ComputeLeagueStatus(rank, membership.PeriodXP, lc.Cfg.CohortSize)
	if membership.League != "" {
		status.League = engine.League(membership.League)
	}

	return c.JSON(fiber.Map{
		"league":      status.League,
		"zone":        status.Zone,
		"reward_tier": status.RewardTier,
		"rank":        status.Rank,
		"period_xp":   status.PeriodXP,
		"period_id":   period,
		"days_left":   engine.DaysLeftInPeriod(now),
		"reward":      engine.RewardFor(status.League, status.RewardTier),
	})
}

// GetLeaderboard godoc
// @Summary Get the cohort leaderboard
// @Description Lists the user's cohort for the current period, best first
// @Tags league
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /league/leaderboard [get]
func (lc *LeagueController) GetLeaderboard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	period := engine.PeriodID(time.Now())

	var membership models.LeagueMembership
	if err := lc.DB.Where("user_id = ? AND period_id = ?", userID, period).First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"entries": []fiber.Map{}, "period_id": period})
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var cohort []models.LeagueMembership
	if err := lc.DB.Where("period_id = ? AND cohort_id = ?", period, membership.CohortID).
		Order("period_xp DESC").Find(&cohort).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	// Tied totals share a rank, matching what GetLeague computes by counting
	// members with strictly more period XP.
	xps := make([]int, len(cohort))
	for i, m := range cohort {
		xps[i] = m.PeriodXP
	}
	ranks := engine.CompetitionRanks(xps)

	entries := make([]fiber.Map, 0, len(cohort))
	for i, m := range cohort {
		rank := ranks[i]
		var user models.User
		lc.DB.Select("username", "display_name").First(&user, m.UserID)

		entries = append(entries, fiber.Map{
			"rank":        rank,
			"username":    user.Username,
			"period_xp":   m.PeriodXP,
			"zone":        engine.ZoneFor(rank, lc.Cfg.CohortSize),
			"reward_tier": engine.RewardTierFor(rank),
			"is_me":       m.UserID == userID,
		})
	}

	return c.JSON(fiber.Map{
		"entries":   entries,
		"cohort_id": membership.CohortID,
		"period_id": period,
	})
}

// SettleLeaguePeriods closes every unsettled membership from past periods:
// final ranks are frozen and the period reward is granted once. The zone
// movement itself lands when the next period's membership is created. Runs
// from the monthly scheduler and is safe to re-run.
func SettleLeaguePeriods(db *gorm.DB, logger *log.Logger, cohortSize int) {
	period := engine.PeriodID(time.Now())

	var stale []models.LeagueMembership
	if err := db.Where("period_id < ? AND settled = false", period).
		Order("period_id, cohort_id, period_xp DESC").Find(&stale).Error; err != nil {
		logger.Printf("league settlement: query failed: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	settled := 0
	pos, rank, prevXP := 0, 0, -1
	var lastPeriod, lastCohort = -1, uint(0)
	for _, m := range stale {
		if m.PeriodID != lastPeriod || m.CohortID != lastCohort {
			lastPeriod, lastCohort = m.PeriodID, m.CohortID
			pos, rank, prevXP = 0, 0, -1
		}
		pos++
		// Same tie convention as engine.CompetitionRanks: equal totals freeze
		// at the shared rank.
		if m.PeriodXP != prevXP {
			rank = pos
			prevXP = m.PeriodXP
		}

		finalRank := rank
		if m.PeriodXP == 0 {
			finalRank = engine.Unranked
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			return settleMembership(tx, m, finalRank, cohortSize)
		})
		if err != nil {
			logger.Printf("league settlement: user %d period %d: %v", m.UserID, m.PeriodID, err)
			continue
		}
		settled++
	}

	logger.Printf("league settlement: settled %d memberships", settled)
}

func settleMembership(tx *gorm.DB, m models.LeagueMembership, finalRank, cohortSize int) error {
	league := engine.League(m.League)
	if m.League == "" {
		league = engine.InitialLeague(m.PeriodXP)
	}
	rewardTier := engine.RewardTierFor(finalRank)
	reward := engine.RewardFor(league, rewardTier)

	if rewardTier != engine.RewardNone {
		grant := models.RewardGrant{
			UserID:    m.UserID,
			RewardID:  fmt.Sprintf("league:%d:%d", m.PeriodID, m.UserID),
			Coins:     reward.Coins + reward.BonusCoins,
			Badge:     reward.StatusFlag,
			GrantedAt: time.Now(),
		}
		if err := tx.Create(&grant).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.UserProgress{}).
			Where("user_id = ?", m.UserID).
			Update("coins", gorm.Expr("coins + ?", grant.Coins)).Error; err != nil {
			return err
		}
	}

	// The row keeps the league it was played at; the next period's
	// membership applies the zone movement when it is created.
	return tx.Model(&models.LeagueMembership{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"rank":    finalRank,
			"league":  string(league),
			"settled": true,
		}).Error
}
