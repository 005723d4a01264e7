package engine

// Archetype identifies one of the learning paths a user can be assigned to.
type Archetype string

const (
	ZeroToHero       Archetype = "zero_to_hero"
	DayTrader        Archetype = "day_trader"
	SwingTrader      Archetype = "swing_trader"
	PositionInvestor Archetype = "position_investor"
	ChartMaster      Archetype = "chart_master"
	RiskAverse       Archetype = "risk_averse"
	TechEnthusiast   Archetype = "tech_enthusiast"
	FastTrack        Archetype = "fast_track"
)

// DefaultArchetype is assigned when no onboarding answer scored anything.
const DefaultArchetype = ZeroToHero

// archetypePriority is the declaration order of the archetypes. It doubles as
// the tie-break order during path resolution: when two archetypes reach the
// same score, the one listed first wins. Keep this list stable.
var archetypePriority = []Archetype{
	ZeroToHero,
	DayTrader,
	SwingTrader,
	PositionInvestor,
	ChartMaster,
	RiskAverse,
	TechEnthusiast,
	FastTrack,
}

// Archetypes returns the archetypes in priority order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypePriority))
	copy(out, archetypePriority)
	return out
}

// ValidArchetype reports whether s names a known archetype.
func ValidArchetype(s string) bool {
	for _, a := range archetypePriority {
		if string(a) == s {
			return true
		}
	}
	return false
}
