package engine

import "math"

// FiredRule records one rule that contributed to the winning archetype's
// score. The list is a diagnostic trace: callers may render or log it, the
// engine itself never does.
type FiredRule struct {
	Field  Field     `json:"field"`
	Value  string    `json:"value"`
	Weight int       `json:"weight"`
	Target Archetype `json:"target"`
}

// PathResolution is the outcome of resolving onboarding answers to a path.
type PathResolution struct {
	Archetype    Archetype   `json:"archetype"`
	MatchPercent int         `json:"match_percent"`
	Scores       ScoreVector `json:"scores"`
	FiredRules   []FiredRule `json:"fired_rules"`
}

// ResolvePath scores the answers and picks the winning archetype. Ties break
// by archetype priority order. When nothing scored at all the resolver falls
// back to DefaultArchetype with a 0% match instead of picking arbitrarily.
func ResolvePath(answers *OnboardingAnswers) PathResolution {
	scores := Score(answers)

	winner := DefaultArchetype
	best := 0
	for _, a := range archetypePriority {
		if scores[a] > best {
			best = scores[a]
			winner = a
		}
	}

	res := PathResolution{
		Archetype:    winner,
		MatchPercent: 0,
		Scores:       scores,
	}
	if best == 0 {
		return res
	}

	if ceiling := maxAchievable(answers); ceiling > 0 {
		res.MatchPercent = int(math.Round(float64(best) / float64(ceiling) * 100))
	}
	res.FiredRules = firedRulesFor(winner, answers)
	return res
}

// firedRulesFor walks the rule table in declaration order and collects every
// rule that fired for the given archetype, one trace entry per matched value.
func firedRulesFor(target Archetype, answers *OnboardingAnswers) []FiredRule {
	var fired []FiredRule
	for _, r := range scoringRules() {
		if r.Target != target {
			continue
		}
		for _, v := range answers.values(r.Field) {
			for _, want := range r.Values {
				if v == want {
					fired = append(fired, FiredRule{Field: r.Field, Value: v, Weight: r.Weight, Target: r.Target})
				}
			}
		}
	}
	return fired
}
