package domain

import (
	"sort"
	"time"
)

// Assessment is one completed PHQ-9 screening. Score is the sum of the nine
// answers (each 0-3).
type Assessment struct {
	ID      string
	UserID  string
	Score   int
	Answers []int
	TakenAt time.Time
}

// PHQ9Questions maps answer index to the short symptom label used when
// deriving problem areas for plan generation.
var PHQ9Questions = []string{
	"Little interest or pleasure",
	"Feeling down/depressed",
	"Sleep problems",
	"Feeling tired",
	"Appetite problems",
	"Feeling bad about self",
	"Concentration problems",
	"Moving/speaking differently",
	"Thoughts of self-harm",
}

// ProblemAreas returns the labels of the highest-scoring answers above 1,
// most affected first, capped at three. Ties keep question order.
func ProblemAreas(answers []int) []string {
	type scored struct {
		idx   int
		value int
	}
	var candidates []scored
	for i, v := range answers {
		if i < len(PHQ9Questions) && v > 1 {
			candidates = append(candidates, scored{idx: i, value: v})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].value > candidates[b].value
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	areas := make([]string, 0, len(candidates))
	for _, c := range candidates {
		areas = append(areas, PHQ9Questions[c.idx])
	}
	return areas
}

// TimeBlock is a recurring daily window expressed as HH:MM clock strings.
type TimeBlock struct {
	Start string
	End   string
}

// RecurringBlock marks the user unavailable on the given days between
// Start and End.
type RecurringBlock struct {
	Days []Weekday
	TimeBlock
}

// Availability collects the user's unavailable hours. Both fields optional.
type Availability struct {
	Busy  *RecurringBlock
	Sleep *TimeBlock
}

// AssessmentContext is the ephemeral bundle of state a single plan generation
// request is built from.
type AssessmentContext struct {
	Score        int
	Severity     Severity
	Trend        Trend
	TrendDetail  string // human-readable, e.g. "IMPROVING (from 18 to 12)"
	ProblemAreas []string
	Preferences  string
	FocusAreas   []FocusArea
	FixedEvents  []CalendarEntry
	Availability *Availability
	Intensity    Intensity
}
