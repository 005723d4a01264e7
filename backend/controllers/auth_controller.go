package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/engine"
	"tradequest/backend/models"
	"tradequest/backend/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account with an empty onboarding profile
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Username, email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		DisplayName:  input.DisplayName,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.UserProgress{
			UserID:           user.ID,
			LastActive:       time.Now(),
			StreakDays:       1,
			LastGrantedLevel: 1,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OnboardingProfile{UserID: user.ID}).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user, update the login streak and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.DB.Create(&models.LoginHistory{
		UserID:    user.ID,
		LoginTime: time.Now(),
	})

	// Maintain the login streak: a gap under 48h keeps it alive.
	var progress models.UserProgress
	if err := ac.DB.Where("user_id = ?", user.ID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserProgress{
				UserID:           user.ID,
				LastActive:       time.Now(),
				StreakDays:       1,
				LastGrantedLevel: 1,
			}
			ac.DB.Create(&progress)
		} else {
			return utils.InternalServerError(c, "Could not query database")
		}
	} else {
		if time.Since(progress.LastActive) < 48*time.Hour {
			progress.StreakDays++
		} else {
			progress.StreakDays = 1
		}
		progress.LastActive = time.Now()
		ac.DB.Save(&progress)
	}

	streakXP := ac.grantStreakXP(user.ID, progress.StreakDays)

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		"streak_days": progress.StreakDays,
		"streak_xp":   streakXP,
	})
}

// grantStreakXP credits the milestone bonus through the XP event ledger. The
// day-scoped idempotency key caps the credit at once per calendar day, so
// repeated logins on a milestone day pay out only the first time. Login never
// fails over the bonus.
func (ac *AuthController) grantStreakXP(userID uint, streakDays int) int {
	award := engine.StreakXPAward(streakDays)
	if award == 0 {
		return 0
	}

	credited := 0
	_ = ac.DB.Transaction(func(tx *gorm.DB) error {
		key := fmt.Sprintf("streak:%d:%s", userID, time.Now().Format("2006-01-02"))

		var existing models.XPEvent
		err := tx.Where("idempotency_key = ?", key).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.XPEvent{
			UserID:         userID,
			Amount:         award,
			Source:         "streak",
			IdempotencyKey: key,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.UserProgress{}).
			Where("user_id = ?", userID).
			Update("total_xp", gorm.Expr("total_xp + ?", award)).Error; err != nil {
			return err
		}

		if err := addPeriodXP(tx, userID, award, ac.Cfg.CohortSize); err != nil {
			return err
		}
		credited = award
		return nil
	})
	return credited
}
