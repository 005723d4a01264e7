package engine

import "time"

// DefaultCohortSize bounds one league instance for one period.
const DefaultCohortSize = 50

// Unranked marks a user with no rank in the current period.
const Unranked = 0

// League is one of the eight ordered competitive tiers.
type League string

const (
	LeagueBronze      League = "bronze"
	LeagueSilver      League = "silver"
	LeagueGold        League = "gold"
	LeaguePlatinum    League = "platinum"
	LeagueDiamond     League = "diamond"
	LeagueMaster      League = "master"
	LeagueGrandmaster League = "grandmaster"
	LeagueChallenger  League = "challenger"
)

// leagueLadder orders the tiers bottom to top. MinPeriodXP is the monthly
// experience requirement used for initial tier assignment; MinAggregateRank
// is the career-rank threshold a user must have reached before the tier is
// assignable at all.
var leagueLadder = []struct {
	League           League
	MinPeriodXP      int
	MinAggregateRank int
}{
	{LeagueBronze, 0, 0},
	{LeagueSilver, 500, 0},
	{LeagueGold, 1500, 40},
	{LeaguePlatinum, 3000, 30},
	{LeagueDiamond, 6000, 25},
	{LeagueMaster, 10000, 15},
	{LeagueGrandmaster, 20000, 10},
	{LeagueChallenger, 40000, 5},
}

// Zone classifies a rank within its cohort for end-of-period movement.
type Zone string

const (
	ZonePromotion Zone = "promotion"
	ZoneSafe      Zone = "safe"
	ZoneDemotion  Zone = "demotion"
	ZoneNone      Zone = "none" // unranked users sit outside the zones
)

// RewardTier buckets the end-of-period payout by final rank.
type RewardTier string

const (
	RewardTop1          RewardTier = "top_1"
	RewardTop3          RewardTier = "top_3"
	RewardTop10         RewardTier = "top_10"
	RewardParticipation RewardTier = "participation"
	RewardNone          RewardTier = "none"
)

// LeagueStatus is the derived competitive standing of one user.
type LeagueStatus struct {
	League     League     `json:"league"`
	Zone       Zone       `json:"zone"`
	RewardTier RewardTier `json:"reward_tier"`
	Rank       int        `json:"rank"`
	PeriodXP   int        `json:"period_xp"`
}

// ClampRank forces a rank into [1, cohortSize]; Unranked passes through.
func ClampRank(rank, cohortSize int) int {
	if rank <= Unranked {
		return Unranked
	}
	if cohortSize < 1 {
		cohortSize = DefaultCohortSize
	}
	if rank > cohortSize {
		return cohortSize
	}
	return rank
}

// CompetitionRanks assigns ranks to a cohort's period XP totals sorted best
// first. Tied totals share the rank of the first of them, so the rank always
// equals the count of strictly higher totals plus one, and zero XP stays
// Unranked.
func CompetitionRanks(periodXPs []int) []int {
	ranks := make([]int, len(periodXPs))
	for i, xp := range periodXPs {
		switch {
		case xp <= 0:
			ranks[i] = Unranked
		case i > 0 && xp == periodXPs[i-1]:
			ranks[i] = ranks[i-1]
		default:
			ranks[i] = i + 1
		}
	}
	return ranks
}

// ZoneFor derives the zone from rank and cohort size: the top 10 sit in the
// promotion zone, the bottom 5 in the demotion zone.
func ZoneFor(rank, cohortSize int) Zone {
	if rank == Unranked {
		return ZoneNone
	}
	if cohortSize < 1 {
		cohortSize = DefaultCohortSize
	}
	switch {
	case rank <= 10:
		return ZonePromotion
	case rank > cohortSize-5:
		return ZoneDemotion
	default:
		return ZoneSafe
	}
}

// RewardTierFor buckets the final rank. Unranked users get nothing.
func RewardTierFor(rank int) RewardTier {
	switch {
	case rank == Unranked:
		return RewardNone
	case rank == 1:
		return RewardTop1
	case rank <= 3:
		return RewardTop3
	case rank <= 10:
		return RewardTop10
	default:
		return RewardParticipation
	}
}

// InitialLeague places a user with no league history by their period XP.
func InitialLeague(periodXP int) League {
	if periodXP < 0 {
		periodXP = 0
	}
	placed := LeagueBronze
	for _, step := range leagueLadder {
		if periodXP >= step.MinPeriodXP {
			placed = step.League
		}
	}
	return placed
}

// ComputeLeagueStatus derives the full standing from a rank, period XP and
// cohort size. Negative XP is clamped; ranks beyond the cohort are clamped to
// its bounds. The league here is the initial-placement tier; callers with a
// stored membership substitute their persisted tier.
func ComputeLeagueStatus(rank, periodXP, cohortSize int) LeagueStatus {
	if periodXP < 0 {
		periodXP = 0
	}
	rank = ClampRank(rank, cohortSize)
	return LeagueStatus{
		League:     InitialLeague(periodXP),
		Zone:       ZoneFor(rank, cohortSize),
		RewardTier: RewardTierFor(rank),
		Rank:       rank,
		PeriodXP:   periodXP,
	}
}

// NextLeague applies the end-of-period zone movement to a tier.
func NextLeague(current League, zone Zone) League {
	idx := leagueIndex(current)
	switch zone {
	case ZonePromotion:
		if idx < len(leagueLadder)-1 {
			idx++
		}
	case ZoneDemotion:
		if idx > 0 {
			idx--
		}
	}
	return leagueLadder[idx].League
}

func leagueIndex(l League) int {
	for i, step := range leagueLadder {
		if step.League == l {
			return i
		}
	}
	return 0
}

// PeriodID is a monotonically increasing identifier of the calendar month a
// time falls in. A stored id smaller than the current one means a settlement
// is due.
func PeriodID(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// DaysLeftInPeriod counts the days remaining in the current calendar month,
// including today.
func DaysLeftInPeriod(t time.Time) int {
	lastOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, -1)
	return lastOfMonth.Day() - t.Day() + 1
}
