package engine

import (
	"fmt"
	"time"
)

// TimedUnlock grants temporary access to a feature, in days.
type TimedUnlock struct {
	Feature string `json:"feature"`
	Days    int    `json:"days"`
}

// RewardBundle is everything attached to reaching one level.
type RewardBundle struct {
	Coins   int           `json:"coins"`
	Badge   string        `json:"badge,omitempty"`
	Unlocks []TimedUnlock `json:"unlocks,omitempty"`
}

// LevelReward is a bundle tagged with the level that owes it and a stable
// identifier the persistence layer uses to record the grant exactly once.
type LevelReward struct {
	ID     string       `json:"id"`
	Level  int          `json:"level"`
	Bundle RewardBundle `json:"bundle"`
}

// coinsPerLevel scales the base currency reward with the level number.
const coinsPerLevel = 10

// milestoneBundles carries the extra rewards of milestone levels, on top of
// the per-level base coins. IDs derive from the level, so keep levels stable.
var milestoneBundles = map[int]RewardBundle{
	5:   {Coins: 100},
	10:  {Coins: 250, Badge: "novice_complete"},
	15:  {Coins: 300, Unlocks: []TimedUnlock{{Feature: "advanced_charts", Days: 7}}},
	20:  {Coins: 400},
	25:  {Coins: 750, Badge: "apprentice_complete"},
	30:  {Coins: 500, Unlocks: []TimedUnlock{{Feature: "strategy_backtests", Days: 7}}},
	40:  {Coins: 1500, Badge: "trader_complete"},
	50:  {Coins: 2000, Unlocks: []TimedUnlock{{Feature: "premium_insights", Days: 14}}},
	60:  {Coins: 3000, Badge: "expert_complete"},
	75:  {Coins: 4000, Unlocks: []TimedUnlock{{Feature: "premium_insights", Days: 30}}},
	80:  {Coins: 5000, Badge: "master_complete"},
	90:  {Coins: 7500},
	100: {Coins: 15000, Badge: "legend", Unlocks: []TimedUnlock{{Feature: "premium_insights", Days: 90}}},
}

// streakMilestoneXP rewards keeping a login streak alive. Only milestone
// days pay out; the persistence layer caps crediting at once per day.
var streakMilestoneXP = map[int]int{
	3:   25,
	7:   50,
	14:  100,
	30:  250,
	60:  500,
	100: 1000,
}

// StreakXPAward returns the XP owed for reaching a streak milestone, or 0
// when the day is not a milestone.
func StreakXPAward(streakDays int) int {
	return streakMilestoneXP[streakDays]
}

// ExpiresFrom resolves the unlock's expiry relative to its grant time.
func (u TimedUnlock) ExpiresFrom(grantedAt time.Time) time.Time {
	return grantedAt.AddDate(0, 0, u.Days)
}

// RewardForLevel returns the full bundle owed for reaching one level: the
// base coins plus any milestone extras.
func RewardForLevel(level int) RewardBundle {
	bundle := RewardBundle{Coins: level * coinsPerLevel}
	if extra, ok := milestoneBundles[level]; ok {
		bundle.Coins += extra.Coins
		bundle.Badge = extra.Badge
		bundle.Unlocks = extra.Unlocks
	}
	return bundle
}

// RewardsOwed lists the level rewards earned but not yet granted: one bundle
// for every level in (lastGranted, current]. Recording the grants is the
// persistence layer's job; recomputing this list is always safe.
func RewardsOwed(lastGrantedLevel, currentLevel int) []LevelReward {
	if lastGrantedLevel < 1 {
		lastGrantedLevel = 1
	}
	if currentLevel > MaxLevel {
		currentLevel = MaxLevel
	}
	var owed []LevelReward
	for level := lastGrantedLevel + 1; level <= currentLevel; level++ {
		owed = append(owed, LevelReward{
			ID:     fmt.Sprintf("level:%d", level),
			Level:  level,
			Bundle: RewardForLevel(level),
		})
	}
	return owed
}
