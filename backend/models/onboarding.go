package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tradequest/backend/engine"
)

// OnboardingProfile stores one user's questionnaire. Single-select answers
// are plain columns ("" while unanswered); multi-select answers are JSON
// arrays. The row exists from registration on and fills in as the user moves
// through the flow.
type OnboardingProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex"`

	CurrentKnowledge  string
	TradingStyle      string
	RiskTolerance     string
	ScreenTime        string
	TimeCommitment    string
	LearningPace      string
	InvestmentHorizon string
	TechComfort       string
	CapitalRange      string
	ChartExperience   string
	PrimaryGoal       string

	TradingExperience datatypes.JSON
	MarketInterests   datatypes.JSON
	Motivations       datatypes.JSON
	LearningFocus     datatypes.JSON

	CompletedAt *time.Time
}

// Answers converts the stored profile to the engine's answer record.
func (p *OnboardingProfile) Answers() (*engine.OnboardingAnswers, error) {
	answers := &engine.OnboardingAnswers{
		CurrentKnowledge:  p.CurrentKnowledge,
		TradingStyle:      p.TradingStyle,
		RiskTolerance:     p.RiskTolerance,
		ScreenTime:        p.ScreenTime,
		TimeCommitment:    p.TimeCommitment,
		LearningPace:      p.LearningPace,
		InvestmentHorizon: p.InvestmentHorizon,
		TechComfort:       p.TechComfort,
		CapitalRange:      p.CapitalRange,
		ChartExperience:   p.ChartExperience,
		PrimaryGoal:       p.PrimaryGoal,
	}
	for _, col := range []struct {
		raw  datatypes.JSON
		dest *[]string
	}{
		{p.TradingExperience, &answers.TradingExperience},
		{p.MarketInterests, &answers.MarketInterests},
		{p.Motivations, &answers.Motivations},
		{p.LearningFocus, &answers.LearningFocus},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, err
		}
	}
	return answers, nil
}

// Apply merges a (possibly partial) answer record into the profile. Only
// fields carrying a value overwrite; the rest of the profile is untouched, so
// the flow can save one question at a time.
func (p *OnboardingProfile) Apply(a *engine.OnboardingAnswers) error {
	setStr := func(dest *string, v string) {
		if v != "" {
			*dest = v
		}
	}
	setStr(&p.CurrentKnowledge, a.CurrentKnowledge)
	setStr(&p.TradingStyle, a.TradingStyle)
	setStr(&p.RiskTolerance, a.RiskTolerance)
	setStr(&p.ScreenTime, a.ScreenTime)
	setStr(&p.TimeCommitment, a.TimeCommitment)
	setStr(&p.LearningPace, a.LearningPace)
	setStr(&p.InvestmentHorizon, a.InvestmentHorizon)
	setStr(&p.TechComfort, a.TechComfort)
	setStr(&p.CapitalRange, a.CapitalRange)
	setStr(&p.ChartExperience, a.ChartExperience)
	setStr(&p.PrimaryGoal, a.PrimaryGoal)

	for _, col := range []struct {
		vals []string
		dest *datatypes.JSON
	}{
		{a.TradingExperience, &p.TradingExperience},
		{a.MarketInterests, &p.MarketInterests},
		{a.Motivations, &p.Motivations},
		{a.LearningFocus, &p.LearningFocus},
	} {
		if len(col.vals) == 0 {
			continue
		}
		raw, err := json.Marshal(col.vals)
		if err != nil {
			return err
		}
		*col.dest = raw
	}
	return nil
}

// UserPath is the materialized outcome of onboarding: the assigned archetype
// and its resolution trace. Written once when the flow completes.
type UserPath struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex"`
	Archetype      string `gorm:"not null"`
	MatchPercent   int
	FiredRules     datatypes.JSON
	TotalLessons   int
	EstimatedWeeks int
	ResolvedAt     time.Time
}
