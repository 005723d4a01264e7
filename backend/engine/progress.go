package engine

// LessonState is the display state of a lesson on the path screen.
type LessonState string

const (
	LessonLocked    LessonState = "locked"
	LessonCurrent   LessonState = "current"
	LessonCompleted LessonState = "completed"
)

// LessonStatus pairs a curriculum entry with its derived state.
type LessonStatus struct {
	Code  LessonCode  `json:"code"`
	Day   int         `json:"day"`
	State LessonState `json:"state"`
}

// ModuleProgress aggregates one module bucket.
type ModuleProgress struct {
	Module    int  `json:"module"`
	Unlocked  bool `json:"unlocked"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
}

// DayProgress aggregates one day bucket.
type DayProgress struct {
	Day       int  `json:"day"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
}

// PathProgress is the full derived view of a user's path.
type PathProgress struct {
	Lessons []LessonStatus   `json:"lessons"`
	Modules []ModuleProgress `json:"modules"`
	Days    []DayProgress    `json:"days"`
	// Current is nil when the curriculum is exhausted or empty.
	Current *LessonCode `json:"current"`
}

// DeriveLessonStates recomputes the display state of every lesson from the
// curriculum order and the completed set. Nothing is stored: there is no
// "current" flag to drift out of sync with completion history.
//
// Rules:
//   - a lesson is completed iff it is in the completed set
//   - a module is unlocked if it is the first one, or any lesson in a
//     strictly earlier module is completed (a soft gate: partial progress in
//     the previous group opens the next)
//   - the single current lesson is the first non-completed lesson in sequence
//     order whose module is unlocked
//   - every other non-completed lesson is locked
//
// Completed codes not present in the curriculum are ignored.
func DeriveLessonStates(lessons []CurriculumLesson, completed map[LessonCode]bool) PathProgress {
	progress := PathProgress{
		Lessons: make([]LessonStatus, 0, len(lessons)),
	}
	if len(lessons) == 0 {
		return progress
	}

	// Module order follows first appearance in the lesson sequence.
	moduleIndex := make(map[int]int)
	dayIndex := make(map[int]int)
	for _, l := range lessons {
		m, _, err := ParseLessonCode(l.Code)
		if err != nil {
			continue
		}
		if _, ok := moduleIndex[m]; !ok {
			moduleIndex[m] = len(progress.Modules)
			progress.Modules = append(progress.Modules, ModuleProgress{Module: m})
		}
		progress.Modules[moduleIndex[m]].Total++
		if completed[l.Code] {
			progress.Modules[moduleIndex[m]].Completed++
		}
		if _, ok := dayIndex[l.Day]; !ok {
			dayIndex[l.Day] = len(progress.Days)
			progress.Days = append(progress.Days, DayProgress{Day: l.Day})
		}
		progress.Days[dayIndex[l.Day]].Total++
		if completed[l.Code] {
			progress.Days[dayIndex[l.Day]].Completed++
		}
	}

	// A module unlocks as soon as any strictly earlier module has at least
	// one completion.
	anyEarlierCompleted := false
	for i := range progress.Modules {
		progress.Modules[i].Unlocked = i == 0 || anyEarlierCompleted
		if progress.Modules[i].Completed > 0 {
			anyEarlierCompleted = true
		}
	}

	for _, l := range lessons {
		m, _, err := ParseLessonCode(l.Code)
		if err != nil {
			continue
		}
		state := LessonLocked
		switch {
		case completed[l.Code]:
			state = LessonCompleted
		case progress.Current == nil && progress.Modules[moduleIndex[m]].Unlocked:
			code := l.Code
			progress.Current = &code
			state = LessonCurrent
		}
		progress.Lessons = append(progress.Lessons, LessonStatus{Code: l.Code, Day: l.Day, State: state})
	}
	return progress
}
