package engine

import "math"

// MaxLevel caps the progression.
const MaxLevel = 100

// Tier is one of the six named experience bands.
type Tier string

const (
	TierNovice     Tier = "novice"
	TierApprentice Tier = "apprentice"
	TierTrader     Tier = "trader"
	TierExpert     Tier = "expert"
	TierMaster     Tier = "master"
	TierLegend     Tier = "legend"
)

// tierBand describes one band of the level curve. Levels inside a geometric
// band require base*ratio^(level-first) XP each; the first band (after level
// 1) grows linearly instead.
type tierBand struct {
	tier  Tier
	first int
	last  int
	base  float64
	ratio float64
}

var tierBands = []tierBand{
	{TierNovice, 1, 10, 100, 0},            // linear: 100 * (level-1)
	{TierApprentice, 11, 25, 1000, 1.15},
	{TierTrader, 26, 40, 7500, 1.12},
	{TierExpert, 41, 60, 40000, 1.10},
	{TierMaster, 61, 80, 250000, 1.08},
	{TierLegend, 81, 100, 1100000, 1.05},
}

// cumulativeXP[L] is the total XP required to reach level L. Index 0 is
// unused; level 1 requires 0. Strictly increasing by construction since every
// per-level requirement is positive.
var cumulativeXP = buildCumulativeTable()

func buildCumulativeTable() []int {
	table := make([]int, MaxLevel+1)
	for level := 2; level <= MaxLevel; level++ {
		table[level] = table[level-1] + levelRequirement(level)
	}
	return table
}

// levelRequirement is the XP needed to go from level-1 to level.
func levelRequirement(level int) int {
	band := bandFor(level)
	if band.ratio == 0 {
		return int(band.base) * (level - 1)
	}
	return int(math.Round(band.base * math.Pow(band.ratio, float64(level-band.first))))
}

func bandFor(level int) tierBand {
	for _, b := range tierBands {
		if level >= b.first && level <= b.last {
			return b
		}
	}
	if level < 1 {
		return tierBands[0]
	}
	return tierBands[len(tierBands)-1]
}

// CumulativeRequirement returns the total XP needed to reach a level.
// Levels outside [1, MaxLevel] are clamped.
func CumulativeRequirement(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return cumulativeXP[level]
}

// TierForLevel maps a level to its band name.
func TierForLevel(level int) Tier {
	return bandFor(level).tier
}

// BaseLessonXP is the award for completing any lesson.
const BaseLessonXP = 50

// LessonXPAward returns the XP granted for one lesson completion. A quiz
// score of 90 or better earns a mastery bonus; lessons without a quiz pass a
// nil score and get the base amount.
func LessonXPAward(score *int) int {
	xp := BaseLessonXP
	if score != nil && *score >= 90 {
		xp += 25
	}
	return xp
}

// LevelInfo is the derived progression state for a total XP amount.
type LevelInfo struct {
	Level       int  `json:"level"`
	Tier        Tier `json:"tier"`
	TotalXP     int  `json:"total_xp"`
	XPIntoLevel int  `json:"xp_into_level"`
	// XPForNext is the remaining cost of the current level, 0 at MaxLevel.
	XPForNext int `json:"xp_for_next"`
}

// ComputeLevel converts cumulative XP into the level reached: the greatest
// level whose cumulative requirement is within the total. Negative XP is a
// policy violation upstream and is clamped to 0 here so the function stays
// total.
func ComputeLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	for level < MaxLevel && totalXP >= cumulativeXP[level+1] {
		level++
	}
	info := LevelInfo{
		Level:       level,
		Tier:        TierForLevel(level),
		TotalXP:     totalXP,
		XPIntoLevel: totalXP - cumulativeXP[level],
	}
	if level < MaxLevel {
		info.XPForNext = cumulativeXP[level+1] - cumulativeXP[level]
	}
	return info
}
