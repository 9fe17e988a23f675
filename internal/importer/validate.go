package importer

import (
	"fmt"
	"regexp"
	"time"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/plan"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Entries) == 0 {
		errs = append(errs, fmt.Errorf("the file contains no entries"))
	}
	for i, e := range schema.Entries {
		errs = append(errs, validateEntry(i, &e)...)
	}
	return errs
}

func validateEntry(i int, e *EntryImport) []error {
	var errs []error
	prefix := fmt.Sprintf("entries[%d]", i)

	if e.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if e.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	} else if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date %q (expected YYYY-MM-DD)", prefix, e.Date))
	}

	start, startOK := plan.NormalizeTime(e.Start)
	if !startOK {
		errs = append(errs, fmt.Errorf("%s.start: unparseable time %q", prefix, e.Start))
	}
	end, endOK := plan.NormalizeTime(e.End)
	if !endOK {
		errs = append(errs, fmt.Errorf("%s.end: unparseable time %q", prefix, e.End))
	}
	if startOK && endOK && end <= start {
		errs = append(errs, fmt.Errorf("%s: end %q must be after start %q", prefix, e.End, e.Start))
	}

	if e.Color != "" && !hexColor.MatchString(e.Color) {
		errs = append(errs, fmt.Errorf("%s.color: invalid hex color %q", prefix, e.Color))
	}
	if e.Mood != nil {
		switch *e.Mood {
		case domain.MoodLow, domain.MoodNeutral, domain.MoodGood:
		default:
			errs = append(errs, fmt.Errorf("%s.mood: must be -1, 0 or 1", prefix))
		}
		if !e.Completed {
			errs = append(errs, fmt.Errorf("%s.mood: only completed entries carry a mood", prefix))
		}
	}

	return errs
}
