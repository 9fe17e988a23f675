package domain

type Severity string

const (
	SeverityMinimal          Severity = "Minimal"
	SeverityMild             Severity = "Mild"
	SeverityModerate         Severity = "Moderate"
	SeverityModeratelySevere Severity = "Moderately Severe"
	SeveritySevere           Severity = "Severe"
)

// SeverityForScore maps a PHQ-9 total score (0-27) onto its screening band.
func SeverityForScore(score int) Severity {
	switch {
	case score <= 4:
		return SeverityMinimal
	case score <= 9:
		return SeverityMild
	case score <= 14:
		return SeverityModerate
	case score <= 19:
		return SeverityModeratelySevere
	default:
		return SeveritySevere
	}
}

type Trend string

const (
	TrendFirstAssessment Trend = "first_assessment"
	TrendImproving       Trend = "improving"
	TrendWorsening       Trend = "worsening"
	TrendStable          Trend = "stable"
)

// TrendFromScores derives the score trend from the latest score and the one
// before it. previous is nil when only a single assessment exists.
func TrendFromScores(latest int, previous *int) Trend {
	if previous == nil {
		return TrendFirstAssessment
	}
	switch {
	case latest < *previous:
		return TrendImproving
	case latest > *previous:
		return TrendWorsening
	default:
		return TrendStable
	}
}

type Intensity string

const (
	IntensityVeryGentle Intensity = "Very Gentle"
	IntensityGentle     Intensity = "Gentle"
	IntensityStandard   Intensity = "Standard"
	IntensityLittlePush Intensity = "A Little Push"
	IntensityMotivated  Intensity = "Motivated"
)

// Intensities lists the five pace levels in ascending order of ambition.
var Intensities = []Intensity{
	IntensityVeryGentle,
	IntensityGentle,
	IntensityStandard,
	IntensityLittlePush,
	IntensityMotivated,
}

// ValidIntensities is the canonical set of accepted intensity strings.
var ValidIntensities = map[string]bool{
	"Very Gentle": true, "Gentle": true, "Standard": true,
	"A Little Push": true, "Motivated": true,
}

type FocusArea string

const (
	FocusMindfulness      FocusArea = "Mindfulness"
	FocusPhysicalActivity FocusArea = "Physical Activity"
	FocusSocialConnection FocusArea = "Social Connection"
	FocusHobbies          FocusArea = "Hobbies"
	FocusProductivity     FocusArea = "Productivity"
)

// FocusAreas lists the fixed focus vocabulary in display order.
var FocusAreas = []FocusArea{
	FocusMindfulness,
	FocusPhysicalActivity,
	FocusSocialConnection,
	FocusHobbies,
	FocusProductivity,
}

// MaxFocusAreas caps how many focus tags a single plan request may carry.
const MaxFocusAreas = 3

// Mood values recorded against a completed calendar entry.
const (
	MoodLow     = -1
	MoodNeutral = 0
	MoodGood    = 1
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the seven days Monday-first, matching the index order used
// for date projection.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayIndex = map[Weekday]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3,
	Friday: 4, Saturday: 5, Sunday: 6,
}

// Index returns the Monday-based index (Monday=0 .. Sunday=6) and whether the
// weekday is one of the seven canonical values.
func (w Weekday) Index() (int, bool) {
	i, ok := weekdayIndex[w]
	return i, ok
}

// ParseWeekday validates a day name from untrusted generator output.
func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(s)
	if _, ok := weekdayIndex[w]; !ok {
		return "", false
	}
	return w, true
}
