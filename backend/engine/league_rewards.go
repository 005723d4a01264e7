package engine

// LeagueReward is the end-of-period payout for one (league, reward tier)
// combination. Higher leagues pay more; only Challenger carries the one-time
// bonus and the permanent status flag.
type LeagueReward struct {
	Coins       int    `json:"coins"`
	PremiumDays int    `json:"premium_days,omitempty"`
	BonusCoins  int    `json:"bonus_coins,omitempty"` // one-time, top tier only
	StatusFlag  string `json:"status_flag,omitempty"` // permanent, top tier only
}

// leaguePayouts scales the payout per league. Coins are the top-1 amounts;
// lower reward tiers take a fraction of them (see RewardFor).
var leaguePayouts = map[League]struct {
	top1Coins   int
	premiumDays int
}{
	LeagueBronze:      {top1Coins: 200, premiumDays: 0},
	LeagueSilver:      {top1Coins: 400, premiumDays: 0},
	LeagueGold:        {top1Coins: 800, premiumDays: 3},
	LeaguePlatinum:    {top1Coins: 1500, premiumDays: 5},
	LeagueDiamond:     {top1Coins: 3000, premiumDays: 7},
	LeagueMaster:      {top1Coins: 6000, premiumDays: 14},
	LeagueGrandmaster: {top1Coins: 12000, premiumDays: 21},
	LeagueChallenger:  {top1Coins: 25000, premiumDays: 30},
}

// RewardFor returns the payout bundle for a final standing. Unranked users
// (RewardNone) receive nothing.
func RewardFor(league League, tier RewardTier) LeagueReward {
	payout, ok := leaguePayouts[league]
	if !ok || tier == RewardNone {
		return LeagueReward{}
	}

	var reward LeagueReward
	switch tier {
	case RewardTop1:
		reward = LeagueReward{Coins: payout.top1Coins, PremiumDays: payout.premiumDays}
		if league == LeagueChallenger {
			reward.BonusCoins = 100000
			reward.StatusFlag = "challenger_champion"
		}
	case RewardTop3:
		reward = LeagueReward{Coins: payout.top1Coins / 2, PremiumDays: payout.premiumDays / 2}
	case RewardTop10:
		reward = LeagueReward{Coins: payout.top1Coins / 4}
	case RewardParticipation:
		reward = LeagueReward{Coins: payout.top1Coins / 10}
	}
	return reward
}
