package domain

import "time"

// DraftEvent is an unsaved candidate activity produced by parsing generator
// output. It carries a symbolic weekday rather than a concrete date; it must
// be projected onto a date before it can be persisted.
type DraftEvent struct {
	Day       Weekday
	Activity  string
	StartTime string // canonical HH:MM:SS
	EndTime   string // canonical HH:MM:SS
	Color     string // hex color, e.g. #6f42c1
}

// CalendarEntry is a persisted calendar row. Generated entries are owned by
// the most recent committed plan and replaced wholesale on each new commit;
// manual entries are user-authored and never touched by plan synthesis.
type CalendarEntry struct {
	ID          string
	UserID      string
	Title       string
	Start       time.Time
	End         time.Time
	Color       string
	IsGenerated bool
	Completed   bool
	UserMood    *int // MoodLow, MoodNeutral or MoodGood; nil when unset
}
