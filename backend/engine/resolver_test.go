package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCompleteBeginnerGetsZeroToHero(t *testing.T) {
	answers := &OnboardingAnswers{
		CurrentKnowledge:  "zero",
		TradingExperience: []string{"none"},
		TradingStyle:      "not_sure",
	}

	res := ResolvePath(answers)
	assert.Equal(t, ZeroToHero, res.Archetype)
	assert.Greater(t, res.MatchPercent, 0)
	assert.NotEmpty(t, res.FiredRules)
}

func TestResolveIntensiveProfileGetsDayTrader(t *testing.T) {
	answers := &OnboardingAnswers{
		TradingStyle:  "day_trading",
		ScreenTime:    "all_day",
		RiskTolerance: "aggressive",
	}

	res := ResolvePath(answers)
	assert.Equal(t, DayTrader, res.Archetype)
}

func TestResolveEmptyAnswersFallsBackToDefault(t *testing.T) {
	res := ResolvePath(&OnboardingAnswers{})
	assert.Equal(t, DefaultArchetype, res.Archetype)
	assert.Equal(t, 0, res.MatchPercent)
	assert.Empty(t, res.FiredRules)
}

func TestResolveTieBreaksByPriorityOrder(t *testing.T) {
	// chart_experience=some scores 1 for chart_master; trading_experience
	// [stocks] scores 1 for swing_trader. Equal scores: swing_trader is
	// earlier in the priority list and must win.
	answers := &OnboardingAnswers{
		ChartExperience:   "some",
		TradingExperience: []string{"stocks"},
	}

	res := ResolvePath(answers)
	assert.Equal(t, res.Scores[SwingTrader], res.Scores[ChartMaster])
	assert.Equal(t, SwingTrader, res.Archetype)
}

func TestResolveIsDeterministic(t *testing.T) {
	answers := &OnboardingAnswers{
		CurrentKnowledge: "intermediate",
		TradingStyle:     "technical_analysis",
		ChartExperience:  "regular",
		LearningFocus:    []string{"charts"},
	}

	first := ResolvePath(answers)
	for i := 0; i < 10; i++ {
		again := ResolvePath(answers)
		assert.Equal(t, first.Archetype, again.Archetype)
		assert.Equal(t, first.MatchPercent, again.MatchPercent)
		assert.Equal(t, first.FiredRules, again.FiredRules)
	}
}

func TestResolveMatchPercentWithinBounds(t *testing.T) {
	cases := []*OnboardingAnswers{
		{TradingStyle: "day_trading"},
		{CurrentKnowledge: "zero", TradingStyle: "not_sure", TradingExperience: []string{"none"}},
		{RiskTolerance: "risk_averse", ScreenTime: "minimal", MarketInterests: []string{"etfs"}},
	}
	for _, answers := range cases {
		res := ResolvePath(answers)
		assert.GreaterOrEqual(t, res.MatchPercent, 0)
		assert.LessOrEqual(t, res.MatchPercent, 100)
	}
}

func TestResolveTraceOnlyContainsWinnerRules(t *testing.T) {
	answers := &OnboardingAnswers{
		TradingStyle:  "long_term_investing",
		RiskTolerance: "moderate",
		CapitalRange:  "over_10k",
	}

	res := ResolvePath(answers)
	assert.Equal(t, PositionInvestor, res.Archetype)
	for _, fired := range res.FiredRules {
		assert.Equal(t, PositionInvestor, fired.Target)
	}
}
