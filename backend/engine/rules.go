package engine

// Rule awards Weight points to Target when the referenced answer field holds
// any of the listed values. Exact match for single-select fields, membership
// for multi-select fields. Rules are independent: evaluation order never
// changes the resulting score vector.
type Rule struct {
	Field  Field
	Values []string
	Target Archetype
	Weight int
}

// scoringRules is the canonical rule table. It is data, not control flow:
// adding an archetype or a question means adding rows here, not touching the
// evaluator. Keep rows grouped by field.
func scoringRules() []Rule {
	return []Rule{
		// current_knowledge
		{FieldCurrentKnowledge, []string{"zero"}, ZeroToHero, 3},
		{FieldCurrentKnowledge, []string{"zero"}, RiskAverse, 1},
		{FieldCurrentKnowledge, []string{"basic"}, ZeroToHero, 1},
		{FieldCurrentKnowledge, []string{"basic"}, SwingTrader, 1},
		{FieldCurrentKnowledge, []string{"intermediate"}, SwingTrader, 2},
		{FieldCurrentKnowledge, []string{"intermediate"}, ChartMaster, 1},
		{FieldCurrentKnowledge, []string{"advanced"}, FastTrack, 3},
		{FieldCurrentKnowledge, []string{"advanced"}, ChartMaster, 1},

		// trading_style
		{FieldTradingStyle, []string{"not_sure"}, ZeroToHero, 2},
		{FieldTradingStyle, []string{"day_trading"}, DayTrader, 4},
		{FieldTradingStyle, []string{"swing_trading"}, SwingTrader, 4},
		{FieldTradingStyle, []string{"long_term_investing"}, PositionInvestor, 4},
		{FieldTradingStyle, []string{"technical_analysis"}, ChartMaster, 4},

		// risk_tolerance
		{FieldRiskTolerance, []string{"risk_averse"}, RiskAverse, 4},
		{FieldRiskTolerance, []string{"risk_averse"}, PositionInvestor, 1},
		{FieldRiskTolerance, []string{"calculated"}, SwingTrader, 2},
		{FieldRiskTolerance, []string{"calculated"}, RiskAverse, 1},
		{FieldRiskTolerance, []string{"moderate"}, SwingTrader, 1},
		{FieldRiskTolerance, []string{"moderate"}, PositionInvestor, 1},
		{FieldRiskTolerance, []string{"aggressive"}, DayTrader, 2},
		{FieldRiskTolerance, []string{"aggressive"}, FastTrack, 1},

		// screen_time
		{FieldScreenTime, []string{"minimal"}, PositionInvestor, 2},
		{FieldScreenTime, []string{"minimal"}, RiskAverse, 1},
		{FieldScreenTime, []string{"evenings"}, SwingTrader, 2},
		{FieldScreenTime, []string{"few_hours"}, SwingTrader, 1},
		{FieldScreenTime, []string{"few_hours"}, ChartMaster, 1},
		{FieldScreenTime, []string{"all_day"}, DayTrader, 3},

		// time_commitment
		{FieldTimeCommitment, []string{"under_15m"}, RiskAverse, 1},
		{FieldTimeCommitment, []string{"under_15m"}, PositionInvestor, 1},
		{FieldTimeCommitment, []string{"15_30m"}, SwingTrader, 1},
		{FieldTimeCommitment, []string{"30_60m"}, ChartMaster, 1},
		{FieldTimeCommitment, []string{"over_1h"}, DayTrader, 1},
		{FieldTimeCommitment, []string{"over_1h"}, FastTrack, 1},

		// learning_pace
		{FieldLearningPace, []string{"relaxed"}, ZeroToHero, 1},
		{FieldLearningPace, []string{"relaxed"}, RiskAverse, 1},
		{FieldLearningPace, []string{"steady"}, SwingTrader, 1},
		{FieldLearningPace, []string{"intensive"}, FastTrack, 3},

		// investment_horizon
		{FieldInvestmentHorizon, []string{"days"}, DayTrader, 2},
		{FieldInvestmentHorizon, []string{"weeks"}, SwingTrader, 2},
		{FieldInvestmentHorizon, []string{"months"}, PositionInvestor, 1},
		{FieldInvestmentHorizon, []string{"years"}, PositionInvestor, 3},

		// tech_comfort
		{FieldTechComfort, []string{"high"}, TechEnthusiast, 3},
		{FieldTechComfort, []string{"high"}, ChartMaster, 1},
		{FieldTechComfort, []string{"medium"}, SwingTrader, 1},
		{FieldTechComfort, []string{"low"}, ZeroToHero, 1},

		// capital_range
		{FieldCapitalRange, []string{"under_100"}, ZeroToHero, 1},
		{FieldCapitalRange, []string{"100_1k"}, SwingTrader, 1},
		{FieldCapitalRange, []string{"1k_10k"}, PositionInvestor, 1},
		{FieldCapitalRange, []string{"over_10k"}, PositionInvestor, 2},

		// chart_experience
		{FieldChartExperience, []string{"never"}, ZeroToHero, 1},
		{FieldChartExperience, []string{"some"}, ChartMaster, 1},
		{FieldChartExperience, []string{"regular"}, ChartMaster, 3},

		// primary_goal
		{FieldPrimaryGoal, []string{"learn_basics"}, ZeroToHero, 2},
		{FieldPrimaryGoal, []string{"extra_income"}, SwingTrader, 2},
		{FieldPrimaryGoal, []string{"full_time_trading"}, DayTrader, 3},
		{FieldPrimaryGoal, []string{"grow_savings"}, PositionInvestor, 2},
		{FieldPrimaryGoal, []string{"master_charts"}, ChartMaster, 3},

		// trading_experience (multi-select)
		{FieldTradingExperience, []string{"none"}, ZeroToHero, 3},
		{FieldTradingExperience, []string{"stocks"}, SwingTrader, 1},
		{FieldTradingExperience, []string{"crypto"}, TechEnthusiast, 2},
		{FieldTradingExperience, []string{"forex"}, DayTrader, 1},
		{FieldTradingExperience, []string{"options"}, FastTrack, 2},

		// market_interests (multi-select)
		{FieldMarketInterests, []string{"crypto"}, TechEnthusiast, 2},
		{FieldMarketInterests, []string{"stocks"}, PositionInvestor, 1},
		{FieldMarketInterests, []string{"forex"}, DayTrader, 1},
		{FieldMarketInterests, []string{"etfs"}, RiskAverse, 2},
		{FieldMarketInterests, []string{"commodities"}, SwingTrader, 1},

		// motivations (multi-select)
		{FieldMotivations, []string{"financial_freedom"}, DayTrader, 1},
		{FieldMotivations, []string{"new_skill"}, ZeroToHero, 1},
		{FieldMotivations, []string{"beat_market"}, FastTrack, 1},
		{FieldMotivations, []string{"fun"}, TechEnthusiast, 1},
		{FieldMotivations, []string{"career"}, ChartMaster, 1},

		// learning_focus (multi-select)
		{FieldLearningFocus, []string{"fundamentals"}, PositionInvestor, 2},
		{FieldLearningFocus, []string{"charts"}, ChartMaster, 2},
		{FieldLearningFocus, []string{"psychology"}, RiskAverse, 2},
		{FieldLearningFocus, []string{"automation"}, TechEnthusiast, 3},
	}
}
