package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZoneBoundaries(t *testing.T) {
	assert.Equal(t, ZonePromotion, ZoneFor(1, DefaultCohortSize))
	assert.Equal(t, ZonePromotion, ZoneFor(10, DefaultCohortSize))
	assert.Equal(t, ZoneSafe, ZoneFor(11, DefaultCohortSize))
	assert.Equal(t, ZoneSafe, ZoneFor(45, DefaultCohortSize))
	assert.Equal(t, ZoneDemotion, ZoneFor(46, DefaultCohortSize))
	assert.Equal(t, ZoneDemotion, ZoneFor(50, DefaultCohortSize))
}

func TestZoneUnranked(t *testing.T) {
	assert.Equal(t, ZoneNone, ZoneFor(Unranked, DefaultCohortSize))
}

func TestZoneSmallCohort(t *testing.T) {
	// Cohort of 12: top 10 promote, bottom 5 demote. Rank 11 is both past
	// the promotion cut and inside the bottom five, so it demotes.
	assert.Equal(t, ZonePromotion, ZoneFor(10, 12))
	assert.Equal(t, ZoneDemotion, ZoneFor(11, 12))
	assert.Equal(t, ZoneDemotion, ZoneFor(12, 12))
}

func TestClampRank(t *testing.T) {
	assert.Equal(t, Unranked, ClampRank(0, 50))
	assert.Equal(t, Unranked, ClampRank(-3, 50))
	assert.Equal(t, 50, ClampRank(70, 50))
	assert.Equal(t, 17, ClampRank(17, 50))
}

func TestCompetitionRanksTiesShareRank(t *testing.T) {
	// Sorted best first: the two 80s share rank 2, the next total resumes at
	// its ordinal position, zero XP stays unranked.
	ranks := CompetitionRanks([]int{120, 80, 80, 50, 0, 0})
	assert.Equal(t, []int{1, 2, 2, 4, Unranked, Unranked}, ranks)
}

func TestCompetitionRanksMatchCountOfStrictlyHigher(t *testing.T) {
	xps := []int{300, 300, 300, 120, 90, 90, 10}
	ranks := CompetitionRanks(xps)
	for i, xp := range xps {
		ahead := 0
		for _, other := range xps {
			if other > xp {
				ahead++
			}
		}
		assert.Equal(t, ahead+1, ranks[i])
	}
}

func TestCompetitionRanksEmptyAndAllZero(t *testing.T) {
	assert.Empty(t, CompetitionRanks(nil))
	assert.Equal(t, []int{Unranked, Unranked}, CompetitionRanks([]int{0, 0}))
}

func TestRewardTierFor(t *testing.T) {
	assert.Equal(t, RewardTop1, RewardTierFor(1))
	assert.Equal(t, RewardTop3, RewardTierFor(2))
	assert.Equal(t, RewardTop3, RewardTierFor(3))
	assert.Equal(t, RewardTop10, RewardTierFor(4))
	assert.Equal(t, RewardTop10, RewardTierFor(10))
	assert.Equal(t, RewardParticipation, RewardTierFor(11))
	assert.Equal(t, RewardParticipation, RewardTierFor(50))
	assert.Equal(t, RewardNone, RewardTierFor(Unranked))
}

func TestInitialLeaguePlacement(t *testing.T) {
	assert.Equal(t, LeagueBronze, InitialLeague(0))
	assert.Equal(t, LeagueBronze, InitialLeague(499))
	assert.Equal(t, LeagueSilver, InitialLeague(500))
	assert.Equal(t, LeagueGold, InitialLeague(1500))
	assert.Equal(t, LeagueChallenger, InitialLeague(40000))
	assert.Equal(t, LeagueBronze, InitialLeague(-100))
}

func TestComputeLeagueStatusUnranked(t *testing.T) {
	status := ComputeLeagueStatus(Unranked, 800, DefaultCohortSize)
	assert.Equal(t, ZoneNone, status.Zone)
	assert.Equal(t, RewardNone, status.RewardTier)
}

func TestComputeLeagueStatusClampsInputs(t *testing.T) {
	status := ComputeLeagueStatus(120, -50, DefaultCohortSize)
	assert.Equal(t, DefaultCohortSize, status.Rank)
	assert.Equal(t, 0, status.PeriodXP)
	assert.Equal(t, LeagueBronze, status.League)
	assert.Equal(t, ZoneDemotion, status.Zone)
}

func TestNextLeagueMovement(t *testing.T) {
	assert.Equal(t, LeagueSilver, NextLeague(LeagueBronze, ZonePromotion))
	assert.Equal(t, LeagueBronze, NextLeague(LeagueSilver, ZoneDemotion))
	assert.Equal(t, LeagueGold, NextLeague(LeagueGold, ZoneSafe))

	// Movement saturates at the ends of the ladder.
	assert.Equal(t, LeagueBronze, NextLeague(LeagueBronze, ZoneDemotion))
	assert.Equal(t, LeagueChallenger, NextLeague(LeagueChallenger, ZonePromotion))

	// No zone means no movement.
	assert.Equal(t, LeagueDiamond, NextLeague(LeagueDiamond, ZoneNone))
}

func TestLeagueRewardsScaleUp(t *testing.T) {
	prev := 0
	for _, league := range []League{LeagueBronze, LeagueSilver, LeagueGold, LeaguePlatinum,
		LeagueDiamond, LeagueMaster, LeagueGrandmaster, LeagueChallenger} {
		reward := RewardFor(league, RewardTop1)
		assert.Greater(t, reward.Coins, prev, "top-1 payout must grow with league")
		prev = reward.Coins
	}
}

func TestChallengerExclusives(t *testing.T) {
	top := RewardFor(LeagueChallenger, RewardTop1)
	assert.NotZero(t, top.BonusCoins)
	assert.Equal(t, "challenger_champion", top.StatusFlag)

	// Only the very top of the very top league pays those out.
	assert.Zero(t, RewardFor(LeagueChallenger, RewardTop3).BonusCoins)
	assert.Zero(t, RewardFor(LeagueGrandmaster, RewardTop1).BonusCoins)
	assert.Empty(t, RewardFor(LeagueGrandmaster, RewardTop1).StatusFlag)
}

func TestRewardForNone(t *testing.T) {
	assert.Equal(t, LeagueReward{}, RewardFor(LeagueGold, RewardNone))
}

func TestPeriodIDMonotonic(t *testing.T) {
	dec := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, PeriodID(jan)-PeriodID(dec))

	feb := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, PeriodID(feb)-PeriodID(jan))
}

func TestDaysLeftInPeriod(t *testing.T) {
	assert.Equal(t, 1, DaysLeftInPeriod(time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysLeftInPeriod(time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysLeftInPeriod(time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)))
}
