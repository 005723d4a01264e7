package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tradequest/backend/config"
	"tradequest/backend/models"
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProgress{},
		&models.LoginHistory{},
		&models.OnboardingProfile{},
		&models.UserPath{},
		&models.LessonCompletion{},
		&models.XPEvent{},
		&models.RewardGrant{},
		&models.FeatureUnlock{},
		&models.LeagueMembership{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
