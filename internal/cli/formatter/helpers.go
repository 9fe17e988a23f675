package formatter

import (
	"fmt"
	"time"
)

// TruncID shortens a UUID to its first eight characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// HumanTimestamp renders an instant as a compact local date and time.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("Mon Jan 2 15:04")
}

// HumanClock renders only the clock portion of an instant.
func HumanClock(t time.Time) string {
	return t.Local().Format("15:04")
}

// RelativeDate returns a human-friendly day label relative to now.
func RelativeDate(t time.Time, now time.Time) string {
	day := func(x time.Time) time.Time {
		x = x.Local()
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, x.Location())
	}
	diff := int(day(t).Sub(day(now)).Hours() / 24)
	switch diff {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}
	if diff > 1 && diff < 7 {
		return t.Local().Format("Monday")
	}
	return t.Local().Format("Jan 2")
}

// Percent renders a ratio as a whole-number percentage.
func Percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", part*100/total)
}
