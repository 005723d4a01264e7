package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, ValidateCatalog())
}

func TestEveryArchetypeHasCurriculum(t *testing.T) {
	for _, a := range Archetypes() {
		c, ok := CurriculumFor(a)
		require.True(t, ok, "missing curriculum for %s", a)
		assert.NotEmpty(t, c.Lessons)
		assert.Equal(t, len(c.Lessons), c.TotalLessons)
		assert.Greater(t, c.EstimatedWeeks, 0)
	}
}

func TestCurriculumCodesAreOrderedAndUnique(t *testing.T) {
	for _, a := range Archetypes() {
		c, _ := CurriculumFor(a)
		seen := make(map[LessonCode]bool)
		lastModule, lastSeq := 0, 0
		for _, l := range c.Lessons {
			module, seq, err := ParseLessonCode(l.Code)
			require.NoError(t, err)
			assert.False(t, seen[l.Code], "%s repeats %s", a, l.Code)
			seen[l.Code] = true

			if module == lastModule {
				assert.Equal(t, lastSeq+1, seq, "%s: %s out of order", a, l.Code)
			} else {
				assert.Equal(t, lastModule+1, module, "%s: module jump at %s", a, l.Code)
				assert.Equal(t, 1, seq)
			}
			lastModule, lastSeq = module, seq
		}
	}
}

func TestCurriculumDaysNeverDecrease(t *testing.T) {
	for _, a := range Archetypes() {
		c, _ := CurriculumFor(a)
		lastDay := 1
		for _, l := range c.Lessons {
			assert.GreaterOrEqual(t, l.Day, lastDay)
			assert.LessOrEqual(t, l.Day, lastDay+1)
			lastDay = l.Day
		}
	}
}

func TestCurriculumForUnknownArchetype(t *testing.T) {
	_, ok := CurriculumFor(Archetype("momentum_wizard"))
	assert.False(t, ok)
}

func TestParseLessonCode(t *testing.T) {
	module, seq, err := ParseLessonCode("3.5")
	require.NoError(t, err)
	assert.Equal(t, 3, module)
	assert.Equal(t, 5, seq)

	for _, bad := range []LessonCode{"", "3", "3.5.1", "a.1", "1.b", "0.1", "1.0", "-1.2"} {
		_, _, err := ParseLessonCode(bad)
		assert.Error(t, err, "code %q should not parse", bad)
	}
}
