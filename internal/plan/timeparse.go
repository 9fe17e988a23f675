package plan

import (
	"strings"
	"time"
)

// timeLayouts are tried in priority order; the first layout that parses wins.
var timeLayouts = []string{
	"15:04:05", // 17:30:00
	"15:04",    // 17:30
	"3:04:05 PM",
	"3:04 PM",
	"3PM",
}

// NormalizeTime canonicalizes free-form time text into "HH:MM:SS". The second
// return is false when no accepted pattern matches; callers must treat that as
// "this one record is unusable", not as a pipeline failure.
func NormalizeTime(text string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return "", false
}
