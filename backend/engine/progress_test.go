package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two modules of two lessons each, one lesson per day pair.
func twoModulePlan() []CurriculumLesson {
	return []CurriculumLesson{
		{Code: "1.1", Day: 1},
		{Code: "1.2", Day: 1},
		{Code: "2.1", Day: 2},
		{Code: "2.2", Day: 2},
	}
}

func statesByCode(p PathProgress) map[LessonCode]LessonState {
	out := make(map[LessonCode]LessonState, len(p.Lessons))
	for _, l := range p.Lessons {
		out[l.Code] = l.State
	}
	return out
}

func TestDeriveFreshPath(t *testing.T) {
	p := DeriveLessonStates(twoModulePlan(), nil)

	states := statesByCode(p)
	assert.Equal(t, LessonCurrent, states["1.1"])
	assert.Equal(t, LessonLocked, states["1.2"])
	assert.Equal(t, LessonLocked, states["2.1"])
	assert.Equal(t, LessonLocked, states["2.2"])

	require.NotNil(t, p.Current)
	assert.Equal(t, LessonCode("1.1"), *p.Current)
	assert.True(t, p.Modules[0].Unlocked)
	assert.False(t, p.Modules[1].Unlocked)
}

func TestDerivePartialFirstModule(t *testing.T) {
	completed := map[LessonCode]bool{"1.1": true}
	p := DeriveLessonStates(twoModulePlan(), completed)

	states := statesByCode(p)
	assert.Equal(t, LessonCompleted, states["1.1"])
	assert.Equal(t, LessonCurrent, states["1.2"])
	assert.Equal(t, LessonLocked, states["2.1"])
	assert.Equal(t, LessonLocked, states["2.2"])

	// Soft gate: one completion in module 1 already unlocks module 2 even
	// though the current lesson still sits in module 1.
	assert.True(t, p.Modules[1].Unlocked)
	assert.Equal(t, 1, p.Modules[0].Completed)
}

func TestDeriveAdvancesIntoSecondModule(t *testing.T) {
	completed := map[LessonCode]bool{"1.1": true, "1.2": true}
	p := DeriveLessonStates(twoModulePlan(), completed)

	states := statesByCode(p)
	assert.Equal(t, LessonCurrent, states["2.1"])
	assert.Equal(t, LessonLocked, states["2.2"])
	assert.True(t, p.Modules[1].Unlocked)
}

func TestDeriveAtMostOneCurrent(t *testing.T) {
	plans := []map[LessonCode]bool{
		nil,
		{"1.1": true},
		{"1.2": true},
		{"1.1": true, "2.1": true},
		{"1.1": true, "1.2": true, "2.1": true, "2.2": true},
	}
	for _, completed := range plans {
		p := DeriveLessonStates(twoModulePlan(), completed)
		current := 0
		for _, l := range p.Lessons {
			if l.State == LessonCurrent {
				current++
			}
		}
		assert.LessOrEqual(t, current, 1, "completed=%v", completed)
	}
}

func TestDeriveExhaustedCurriculum(t *testing.T) {
	completed := map[LessonCode]bool{"1.1": true, "1.2": true, "2.1": true, "2.2": true}
	p := DeriveLessonStates(twoModulePlan(), completed)

	assert.Nil(t, p.Current)
	for _, l := range p.Lessons {
		assert.Equal(t, LessonCompleted, l.State)
	}
}

func TestDeriveEmptyLessonList(t *testing.T) {
	p := DeriveLessonStates(nil, map[LessonCode]bool{"1.1": true})
	assert.Nil(t, p.Current)
	assert.Empty(t, p.Lessons)
	assert.Empty(t, p.Modules)
}

func TestDeriveIgnoresUnknownCompletedCodes(t *testing.T) {
	completed := map[LessonCode]bool{"9.9": true, "nonsense": true}
	p := DeriveLessonStates(twoModulePlan(), completed)

	require.NotNil(t, p.Current)
	assert.Equal(t, LessonCode("1.1"), *p.Current)
	assert.Equal(t, 0, p.Modules[0].Completed)
}

func TestDeriveDayAggregates(t *testing.T) {
	completed := map[LessonCode]bool{"1.1": true, "1.2": true, "2.1": true}
	p := DeriveLessonStates(twoModulePlan(), completed)

	require.Len(t, p.Days, 2)
	assert.Equal(t, DayProgress{Day: 1, Completed: 2, Total: 2}, p.Days[0])
	assert.Equal(t, DayProgress{Day: 2, Completed: 1, Total: 2}, p.Days[1])
}

func TestDeriveRealCurriculum(t *testing.T) {
	c, ok := CurriculumFor(ZeroToHero)
	require.True(t, ok)

	completed := map[LessonCode]bool{"1.1": true, "1.2": true}
	p := DeriveLessonStates(c.Lessons, completed)

	require.NotNil(t, p.Current)
	assert.Equal(t, LessonCode("1.3"), *p.Current)
	assert.Len(t, p.Lessons, c.TotalLessons)
}
