package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradequest/backend/engine"
)

func TestProfileApplyMergesPartialAnswers(t *testing.T) {
	profile := OnboardingProfile{UserID: 7}

	require.NoError(t, profile.Apply(&engine.OnboardingAnswers{
		RiskTolerance: "calculated",
	}))
	require.NoError(t, profile.Apply(&engine.OnboardingAnswers{
		TradingStyle:    "swing_trading",
		MarketInterests: []string{"stocks", "etfs"},
	}))

	// The second save must not wipe the first answer.
	assert.Equal(t, "calculated", profile.RiskTolerance)
	assert.Equal(t, "swing_trading", profile.TradingStyle)
	assert.NotEmpty(t, profile.MarketInterests)
}

func TestProfileAnswersRoundTrip(t *testing.T) {
	profile := OnboardingProfile{UserID: 7}
	original := &engine.OnboardingAnswers{
		CurrentKnowledge:  "basic",
		TradingStyle:      "day_trading",
		RiskTolerance:     "aggressive",
		TradingExperience: []string{"crypto", "forex"},
		Motivations:       []string{"financial_freedom"},
	}
	require.NoError(t, profile.Apply(original))

	restored, err := profile.Answers()
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestProfileAnswersEmptyProfile(t *testing.T) {
	profile := OnboardingProfile{UserID: 7}

	answers, err := profile.Answers()
	require.NoError(t, err)
	assert.Nil(t, answers.Validate())
	assert.Equal(t, engine.DefaultArchetype, engine.ResolvePath(answers).Archetype)
}
