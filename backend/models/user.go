package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"` // user, admin
	DisplayName  string
}

// UserProgress is the single mutable progression row per user: login streak,
// coin wallet, cumulative XP and the last level whose rewards were granted.
// TotalXP is only ever written together with an XPEvent row in the same
// transaction, so a retried grant can never double-credit.
type UserProgress struct {
	gorm.Model
	UserID           uint `gorm:"uniqueIndex"`
	LastActive       time.Time
	StreakDays       int `gorm:"default:0"`
	TotalXP          int `gorm:"default:0"`
	Coins            int `gorm:"default:0"`
	LastGrantedLevel int `gorm:"default:1"`
	LessonsCompleted int `gorm:"default:0"`
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
