package models

import (
	"time"

	"gorm.io/gorm"
)

// LessonCompletion records one finished lesson. The (user, lesson) unique
// index is the idempotency guard: a retried submission of the same lesson
// inserts nothing and grants nothing.
type LessonCompletion struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex:idx_user_lesson"`
	LessonCode  string `gorm:"uniqueIndex:idx_user_lesson;size:16"`
	Score       *int   // quiz score 0-100, nil when the lesson has no quiz
	AttemptID   string `gorm:"size:64"`
	CompletedAt time.Time
}

// XPEvent is the append-only grant ledger. Every XP credit carries an
// idempotency key; the unique index makes crediting at-most-once per logical
// event regardless of client retries.
type XPEvent struct {
	gorm.Model
	UserID         uint `gorm:"index"`
	Amount         int
	Source         string `gorm:"size:32"` // lesson, streak, league
	IdempotencyKey string `gorm:"uniqueIndex;size:96"`
}

// RewardGrant marks a level or league reward as issued. The (user, reward)
// unique index prevents re-granting after retries or recomputation.
type RewardGrant struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex:idx_user_reward"`
	RewardID  string `gorm:"uniqueIndex:idx_user_reward;size:64"`
	Coins     int
	Badge     string
	GrantedAt time.Time
}

// FeatureUnlock records temporary feature access granted by a reward, with
// its expiry. Written in the same transaction as the RewardGrant that owes
// it, so a grant can never lose its unlocks.
type FeatureUnlock struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex:idx_user_reward_feature"`
	RewardID  string `gorm:"uniqueIndex:idx_user_reward_feature;size:64"`
	Feature   string `gorm:"uniqueIndex:idx_user_reward_feature;size:32"`
	ExpiresAt time.Time
}
