package engine

// ScoreVector maps every archetype to its accumulated score for one answer
// set. Entries are zero-initialized and never negative.
type ScoreVector map[Archetype]int

// Score evaluates the full rule table against the answers and returns the
// per-archetype score vector. Missing fields contribute nothing. The function
// is pure; calling it again with the same answers yields the same vector, so
// the onboarding UI can recompute it after every question.
func Score(answers *OnboardingAnswers) ScoreVector {
	vec := make(ScoreVector, len(archetypePriority))
	for _, a := range archetypePriority {
		vec[a] = 0
	}
	if answers == nil {
		return vec
	}
	for _, r := range scoringRules() {
		if ruleFires(r, answers) {
			vec[r.Target] += r.Weight
		}
	}
	return vec
}

func ruleFires(r Rule, answers *OnboardingAnswers) bool {
	vals := answers.values(r.Field)
	for _, v := range vals {
		for _, want := range r.Values {
			if v == want {
				return true
			}
		}
	}
	return false
}

// maxAchievable returns the highest total any archetype could reach given the
// set of fields that are currently answered. It is the denominator of the
// match percentage. A single-select field can satisfy at most one of an
// archetype's rules, so only the heaviest rule per (archetype, field) counts
// there; multi-select rules can all fire at once.
func maxAchievable(answers *OnboardingAnswers) int {
	if answers == nil {
		return 0
	}
	type key struct {
		target Archetype
		field  Field
	}
	best := make(map[key]int)
	ceil := make(map[Archetype]int, len(archetypePriority))
	for _, r := range scoringRules() {
		if !answers.answered(r.Field) {
			continue
		}
		if _, multi := multiSelectCap[r.Field]; multi {
			ceil[r.Target] += r.Weight
			continue
		}
		k := key{r.Target, r.Field}
		if r.Weight > best[k] {
			ceil[r.Target] += r.Weight - best[k]
			best[k] = r.Weight
		}
	}
	max := 0
	for _, total := range ceil {
		if total > max {
			max = total
		}
	}
	return max
}
