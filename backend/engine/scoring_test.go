package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyAnswers(t *testing.T) {
	vec := Score(&OnboardingAnswers{})

	assert.Len(t, vec, len(Archetypes()))
	for archetype, score := range vec {
		assert.Equal(t, 0, score, "archetype %s should start at zero", archetype)
	}
}

func TestScoreNilAnswers(t *testing.T) {
	vec := Score(nil)
	for _, score := range vec {
		assert.Equal(t, 0, score)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	answers := &OnboardingAnswers{
		CurrentKnowledge:  "basic",
		TradingStyle:      "swing_trading",
		RiskTolerance:     "calculated",
		TradingExperience: []string{"stocks", "crypto"},
	}

	first := Score(answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(answers))
	}
}

func TestScoreNeverNegative(t *testing.T) {
	answers := &OnboardingAnswers{
		CurrentKnowledge: "advanced",
		TradingStyle:     "day_trading",
		RiskTolerance:    "risk_averse",
		ScreenTime:       "minimal",
		MarketInterests:  []string{"etfs", "crypto"},
	}

	for _, score := range Score(answers) {
		assert.GreaterOrEqual(t, score, 0)
	}
}

// Answering one more question may only add weight, never remove it.
func TestScoreMonotonicUnderNewAnswers(t *testing.T) {
	partial := &OnboardingAnswers{TradingStyle: "day_trading"}
	fuller := &OnboardingAnswers{
		TradingStyle:  "day_trading",
		RiskTolerance: "aggressive",
		ScreenTime:    "all_day",
	}

	before := Score(partial)
	after := Score(fuller)
	for _, a := range Archetypes() {
		assert.GreaterOrEqual(t, after[a], before[a], "archetype %s lost score", a)
	}
}

func TestScoreIgnoresMissingFields(t *testing.T) {
	// Only one field answered: every firing rule must reference that field.
	answers := &OnboardingAnswers{RiskTolerance: "aggressive"}
	vec := Score(answers)

	total := 0
	for _, score := range vec {
		total += score
	}

	expected := 0
	for _, r := range scoringRules() {
		if r.Field == FieldRiskTolerance && ruleFires(r, answers) {
			expected += r.Weight
		}
	}
	assert.Equal(t, expected, total)
	assert.Greater(t, total, 0)
}

func TestValidateAcceptsPartialAnswers(t *testing.T) {
	assert.Nil(t, (&OnboardingAnswers{}).Validate())
	assert.Nil(t, (&OnboardingAnswers{RiskTolerance: "moderate"}).Validate())
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	problems := (&OnboardingAnswers{RiskTolerance: "yolo"}).Validate()
	assert.Contains(t, problems, string(FieldRiskTolerance))
}

func TestValidateRejectsOverCapMultiSelect(t *testing.T) {
	problems := (&OnboardingAnswers{
		Motivations: []string{"financial_freedom", "new_skill", "fun"},
	}).Validate()
	assert.Contains(t, problems, string(FieldMotivations))
}

func TestValidateAcceptsFullAnswerSet(t *testing.T) {
	answers := &OnboardingAnswers{
		CurrentKnowledge:  "basic",
		TradingStyle:      "swing_trading",
		RiskTolerance:     "calculated",
		ScreenTime:        "evenings",
		TimeCommitment:    "30_60m",
		LearningPace:      "steady",
		InvestmentHorizon: "weeks",
		TechComfort:       "medium",
		CapitalRange:      "100_1k",
		ChartExperience:   "some",
		PrimaryGoal:       "extra_income",
		TradingExperience: []string{"stocks"},
		MarketInterests:   []string{"stocks", "etfs"},
		Motivations:       []string{"new_skill"},
		LearningFocus:     []string{"fundamentals"},
	}
	assert.Nil(t, answers.Validate())
}
