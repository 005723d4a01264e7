package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// LessonCode identifies a lesson as "<module>.<sequence>", e.g. "3.5".
// Module membership and intra-module order both come from the code.
type LessonCode string

// ParseLessonCode splits a code into its module and sequence numbers.
func ParseLessonCode(code LessonCode) (module, sequence int, err error) {
	parts := strings.Split(string(code), ".")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed lesson code %q", code)
	}
	module, err = strconv.Atoi(parts[0])
	if err != nil || module < 1 {
		return 0, 0, fmt.Errorf("malformed lesson code %q", code)
	}
	sequence, err = strconv.Atoi(parts[1])
	if err != nil || sequence < 1 {
		return 0, 0, fmt.Errorf("malformed lesson code %q", code)
	}
	return module, sequence, nil
}

// CurriculumLesson is one entry of an archetype's ordered lesson plan. Day
// clusters consecutive lessons for the path screen's day-based layout.
type CurriculumLesson struct {
	Code LessonCode `json:"code"`
	Day  int        `json:"day"`
}

// Curriculum is the immutable lesson plan of one archetype.
type Curriculum struct {
	Archetype      Archetype          `json:"archetype"`
	Lessons        []CurriculumLesson `json:"lessons"`
	TotalLessons   int                `json:"total_lessons"`
	EstimatedWeeks int                `json:"estimated_weeks"`
}

// curriculumShape is the compact authored form of a curriculum: lesson counts
// per module, how many lessons share a day on the path screen, and the
// advertised duration.
type curriculumShape struct {
	moduleSizes   []int
	lessonsPerDay int
	weeks         int
}

// curriculumShapes defines the plan for every archetype. Module sizes are
// authored data; lesson codes derive from them as <module>.<sequence>.
var curriculumShapes = map[Archetype]curriculumShape{
	ZeroToHero:       {moduleSizes: []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, lessonsPerDay: 2, weeks: 12},
	DayTrader:        {moduleSizes: []int{4, 4, 4, 4, 4, 4, 4, 4}, lessonsPerDay: 2, weeks: 8},
	SwingTrader:      {moduleSizes: []int{4, 4, 4, 3, 4, 4, 4, 3}, lessonsPerDay: 2, weeks: 8},
	PositionInvestor: {moduleSizes: []int{4, 4, 4, 4, 4, 4, 4}, lessonsPerDay: 2, weeks: 10},
	ChartMaster:      {moduleSizes: []int{4, 4, 5, 4, 4, 5, 4, 4}, lessonsPerDay: 2, weeks: 9},
	RiskAverse:       {moduleSizes: []int{4, 3, 4, 4, 4, 4, 3}, lessonsPerDay: 2, weeks: 10},
	TechEnthusiast:   {moduleSizes: []int{4, 4, 4, 4, 3, 4, 4, 3}, lessonsPerDay: 2, weeks: 8},
	FastTrack:        {moduleSizes: []int{4, 4, 4, 4, 4}, lessonsPerDay: 3, weeks: 4},
}

var catalog = buildCatalog()

func buildCatalog() map[Archetype]Curriculum {
	out := make(map[Archetype]Curriculum, len(curriculumShapes))
	for archetype, shape := range curriculumShapes {
		var lessons []CurriculumLesson
		pos := 0
		perDay := shape.lessonsPerDay
		if perDay < 1 {
			perDay = 1
		}
		for m, size := range shape.moduleSizes {
			for s := 1; s <= size; s++ {
				lessons = append(lessons, CurriculumLesson{
					Code: LessonCode(fmt.Sprintf("%d.%d", m+1, s)),
					Day:  pos/perDay + 1,
				})
				pos++
			}
		}
		out[archetype] = Curriculum{
			Archetype:      archetype,
			Lessons:        lessons,
			TotalLessons:   len(lessons),
			EstimatedWeeks: shape.weeks,
		}
	}
	return out
}

// CurriculumFor returns the lesson plan for an archetype. The second return
// is false for unknown archetypes.
func CurriculumFor(a Archetype) (Curriculum, bool) {
	c, ok := catalog[a]
	return c, ok
}

// ValidateCatalog checks the authored curriculum data: every archetype must
// have at least one well-formed lesson code and no duplicates. A failure here
// is a data-authoring bug and must abort startup.
func ValidateCatalog() error {
	for _, a := range archetypePriority {
		c, ok := catalog[a]
		if !ok || len(c.Lessons) == 0 {
			return fmt.Errorf("curriculum for %s is empty", a)
		}
		seen := make(map[LessonCode]bool, len(c.Lessons))
		for _, l := range c.Lessons {
			if _, _, err := ParseLessonCode(l.Code); err != nil {
				return fmt.Errorf("curriculum for %s: %w", a, err)
			}
			if seen[l.Code] {
				return fmt.Errorf("curriculum for %s: duplicate lesson code %q", a, l.Code)
			}
			seen[l.Code] = true
		}
	}
	return nil
}
