package models

import "tradequest/backend/engine"

// ProgressOverview is the API view of a user's overall standing, assembled
// from the stored UserProgress row and the derived engine values.
type ProgressOverview struct {
	StreakDays       int                  `json:"streak_days"`
	LessonsCompleted int                  `json:"lessons_completed"`
	Coins            int                  `json:"coins"`
	Level            engine.LevelInfo     `json:"level"`
	RewardsOwed      int                  `json:"rewards_owed"`
	League           *engine.LeagueStatus `json:"league,omitempty"`
}
