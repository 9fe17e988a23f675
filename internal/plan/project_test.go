package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellisbraun/haven/internal/domain"
)

func TestDaysAhead_Bounds(t *testing.T) {
	// A full week of anchors against every weekday: offsets stay in
	// [0,6] and are zero exactly when the anchor already sits on
	// that weekday.
	base := time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC) // a Monday
	for i := 0; i < 7; i++ {
		anchor := base.AddDate(0, 0, i)
		for _, day := range []domain.Weekday{
			domain.Monday, domain.Tuesday, domain.Wednesday,
			domain.Thursday, domain.Friday, domain.Saturday, domain.Sunday,
		} {
			offset := DaysAhead(day, anchor)
			assert.GreaterOrEqual(t, offset, 0)
			assert.LessOrEqual(t, offset, 6)

			sameDay := anchor.Weekday().String() == string(day)
			assert.Equal(t, sameDay, offset == 0,
				"anchor %s target %s offset %d", anchor.Weekday(), day, offset)
		}
	}
}

func TestDaysAhead_KnownOffsets(t *testing.T) {
	wednesday := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysAhead(domain.Friday, wednesday))
	assert.Equal(t, 5, DaysAhead(domain.Monday, wednesday))
	assert.Equal(t, 0, DaysAhead(domain.Wednesday, wednesday))
}

func TestNextOccurrence(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	anchor := time.Date(2025, time.March, 5, 23, 45, 0, 0, loc) // Wednesday night

	next := NextOccurrence(domain.Saturday, anchor)
	assert.Equal(t, time.Date(2025, time.March, 8, 0, 0, 0, 0, loc), next)
	assert.Equal(t, loc, next.Location())
}

func TestNextOccurrence_SameDayIsToday(t *testing.T) {
	anchor := time.Date(2025, time.March, 5, 16, 0, 0, 0, time.UTC)
	next := NextOccurrence(domain.Wednesday, anchor)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), next)
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)

	at, err := CombineDateTime(date, "07:15:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 8, 7, 15, 0, 0, time.UTC), at)

	_, err = CombineDateTime(date, "late morning")
	assert.Error(t, err)
}
