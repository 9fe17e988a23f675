package cli

import (
	"fmt"
	"time"

	"github.com/ellisbraun/haven/internal/plan"
)

// validateOptionalClock accepts an empty string or anything the time
// normalizer can read.
func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := plan.NormalizeTime(s); !ok {
		return fmt.Errorf("use a time like 09:00 or 5:30 PM")
	}
	return nil
}

// parseDateTime reads a "YYYY-MM-DD HH:MM" style pair in local time.
func parseDateTime(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("use a date like 2025-03-08")
	}
	normalized, ok := plan.NormalizeTime(clock)
	if !ok {
		return time.Time{}, fmt.Errorf("use a time like 09:00 or 5:30 PM")
	}
	return plan.CombineDateTime(d, normalized)
}
