package plan

import (
	"time"

	"github.com/ellisbraun/haven/internal/domain"
)

// DaysAhead returns how many days separate anchor from the next occurrence of
// w, in [0, 6]. The anchor's own weekday maps to 0, not 7.
func DaysAhead(w domain.Weekday, anchor time.Time) int {
	idx, _ := w.Index()
	// time.Weekday is Sunday-based; shift to the Monday-based index.
	anchorIdx := (int(anchor.Weekday()) + 6) % 7
	return (idx - anchorIdx + 7) % 7
}

// NextOccurrence projects a symbolic weekday onto the next concrete date at
// or after anchor, at midnight in the anchor's location. The anchor must be
// captured once per generation pass and reused for every record in it, so
// that "Monday" resolves to the same date across a whole draft.
func NextOccurrence(w domain.Weekday, anchor time.Time) time.Time {
	d := anchor.AddDate(0, 0, DaysAhead(w, anchor))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, anchor.Location())
}

// CombineDateTime attaches a canonical "HH:MM:SS" clock string to a date.
func CombineDateTime(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, date.Location()), nil
}
