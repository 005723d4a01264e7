package engine

import "fmt"

// Field names one onboarding question. Every scoring rule references exactly
// one field.
type Field string

const (
	FieldCurrentKnowledge  Field = "current_knowledge"
	FieldTradingStyle      Field = "trading_style"
	FieldRiskTolerance     Field = "risk_tolerance"
	FieldScreenTime        Field = "screen_time"
	FieldTimeCommitment    Field = "time_commitment"
	FieldLearningPace      Field = "learning_pace"
	FieldInvestmentHorizon Field = "investment_horizon"
	FieldTechComfort       Field = "tech_comfort"
	FieldCapitalRange      Field = "capital_range"
	FieldChartExperience   Field = "chart_experience"
	FieldPrimaryGoal       Field = "primary_goal"
	FieldTradingExperience Field = "trading_experience"
	FieldMarketInterests   Field = "market_interests"
	FieldMotivations       Field = "motivations"
	FieldLearningFocus     Field = "learning_focus"
)

// OnboardingAnswers is the closed record of a user's onboarding questionnaire.
// Single-select fields hold one value from their allowed set or "" while
// unanswered; multi-select fields hold a bounded slice or nil. The record may
// be partial at any point during the flow.
type OnboardingAnswers struct {
	CurrentKnowledge  string `json:"current_knowledge"`
	TradingStyle      string `json:"trading_style"`
	RiskTolerance     string `json:"risk_tolerance"`
	ScreenTime        string `json:"screen_time"`
	TimeCommitment    string `json:"time_commitment"`
	LearningPace      string `json:"learning_pace"`
	InvestmentHorizon string `json:"investment_horizon"`
	TechComfort       string `json:"tech_comfort"`
	CapitalRange      string `json:"capital_range"`
	ChartExperience   string `json:"chart_experience"`
	PrimaryGoal       string `json:"primary_goal"`

	TradingExperience []string `json:"trading_experience"` // up to 3
	MarketInterests   []string `json:"market_interests"`   // up to 3
	Motivations       []string `json:"motivations"`        // up to 2
	LearningFocus     []string `json:"learning_focus"`     // up to 2
}

// allowedValues is the closed value set per field. Values outside these sets
// are rejected at the boundary instead of silently scoring zero.
var allowedValues = map[Field][]string{
	FieldCurrentKnowledge:  {"zero", "basic", "intermediate", "advanced"},
	FieldTradingStyle:      {"not_sure", "day_trading", "swing_trading", "long_term_investing", "technical_analysis"},
	FieldRiskTolerance:     {"risk_averse", "calculated", "moderate", "aggressive"},
	FieldScreenTime:        {"minimal", "evenings", "few_hours", "all_day"},
	FieldTimeCommitment:    {"under_15m", "15_30m", "30_60m", "over_1h"},
	FieldLearningPace:      {"relaxed", "steady", "intensive"},
	FieldInvestmentHorizon: {"days", "weeks", "months", "years"},
	FieldTechComfort:       {"low", "medium", "high"},
	FieldCapitalRange:      {"under_100", "100_1k", "1k_10k", "over_10k"},
	FieldChartExperience:   {"never", "some", "regular"},
	FieldPrimaryGoal:       {"learn_basics", "extra_income", "full_time_trading", "grow_savings", "master_charts"},
	FieldTradingExperience: {"none", "stocks", "crypto", "forex", "options"},
	FieldMarketInterests:   {"stocks", "crypto", "forex", "etfs", "commodities"},
	FieldMotivations:       {"financial_freedom", "new_skill", "beat_market", "fun", "career"},
	FieldLearningFocus:     {"fundamentals", "charts", "psychology", "automation"},
}

// multiSelectCap limits how many values a multi-select field may carry.
var multiSelectCap = map[Field]int{
	FieldTradingExperience: 3,
	FieldMarketInterests:   3,
	FieldMotivations:       2,
	FieldLearningFocus:     2,
}

// values returns the current value(s) of a field, nil when unanswered.
func (a *OnboardingAnswers) values(f Field) []string {
	switch f {
	case FieldCurrentKnowledge:
		return single(a.CurrentKnowledge)
	case FieldTradingStyle:
		return single(a.TradingStyle)
	case FieldRiskTolerance:
		return single(a.RiskTolerance)
	case FieldScreenTime:
		return single(a.ScreenTime)
	case FieldTimeCommitment:
		return single(a.TimeCommitment)
	case FieldLearningPace:
		return single(a.LearningPace)
	case FieldInvestmentHorizon:
		return single(a.InvestmentHorizon)
	case FieldTechComfort:
		return single(a.TechComfort)
	case FieldCapitalRange:
		return single(a.CapitalRange)
	case FieldChartExperience:
		return single(a.ChartExperience)
	case FieldPrimaryGoal:
		return single(a.PrimaryGoal)
	case FieldTradingExperience:
		return a.TradingExperience
	case FieldMarketInterests:
		return a.MarketInterests
	case FieldMotivations:
		return a.Motivations
	case FieldLearningFocus:
		return a.LearningFocus
	}
	return nil
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// answered reports whether the field currently holds at least one value.
func (a *OnboardingAnswers) answered(f Field) bool {
	return len(a.values(f)) > 0
}

// Validate checks every present value against its field's allowed set and
// enforces multi-select caps. Absent fields are fine; the questionnaire is
// allowed to be partial.
func (a *OnboardingAnswers) Validate() map[string]string {
	problems := make(map[string]string)
	for f := range allowedValues {
		vals := a.values(f)
		if len(vals) == 0 {
			continue
		}
		if limit, ok := multiSelectCap[f]; ok && len(vals) > limit {
			problems[string(f)] = fmt.Sprintf("at most %d selections allowed", limit)
			continue
		}
		for _, v := range vals {
			if !allowed(f, v) {
				problems[string(f)] = fmt.Sprintf("invalid value %q", v)
				break
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

func allowed(f Field, v string) bool {
	for _, w := range allowedValues[f] {
		if w == v {
			return true
		}
	}
	return false
}
