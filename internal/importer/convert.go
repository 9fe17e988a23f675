package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/plan"
)

// Convert transforms a validated ImportSchema into calendar entries ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema is
// valid. Imported entries are always manual so plan commits never replace them.
func Convert(schema *ImportSchema, userID string) ([]*domain.CalendarEntry, error) {
	entries := make([]*domain.CalendarEntry, 0, len(schema.Entries))

	for _, e := range schema.Entries {
		date, err := time.ParseInLocation("2006-01-02", e.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", e.Date, err)
		}

		startClock, ok := plan.NormalizeTime(e.Start)
		if !ok {
			return nil, fmt.Errorf("normalizing start %q", e.Start)
		}
		endClock, ok := plan.NormalizeTime(e.End)
		if !ok {
			return nil, fmt.Errorf("normalizing end %q", e.End)
		}
		start, err := plan.CombineDateTime(date, startClock)
		if err != nil {
			return nil, err
		}
		end, err := plan.CombineDateTime(date, endClock)
		if err != nil {
			return nil, err
		}

		entries = append(entries, &domain.CalendarEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			Title:     e.Title,
			Start:     start,
			End:       end,
			Color:     domain.CoalesceStr(e.Color, "#6f42c1"),
			Completed: e.Completed,
			UserMood:  e.Mood,
		})
	}
	return entries, nil
}
