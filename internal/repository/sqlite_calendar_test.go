package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarTestSetup(t *testing.T) *SQLiteCalendarRepo {
	t.Helper()
	return NewSQLiteCalendarRepo(testutil.NewTestDB(t))
}

func TestCalendarRepo_InsertAndGetByID(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("u1", "Evening walk", testutil.WithGenerated(true))
	require.NoError(t, repo.Insert(ctx, e))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening walk", fetched.Title)
	assert.Equal(t, "u1", fetched.UserID)
	assert.True(t, fetched.IsGenerated)
	assert.False(t, fetched.Completed)
	assert.Nil(t, fetched.UserMood)
	assert.True(t, fetched.Start.Equal(e.Start))
}

func TestCalendarRepo_GetByID_NotFound(t *testing.T) {
	repo := calendarTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCalendarRepo_ListByUser_OrderedAndScoped(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	later := time.Now().UTC().Add(4 * time.Hour).Truncate(time.Second)
	e1 := testutil.NewTestEntry("u1", "Later", testutil.WithStart(later))
	e2 := testutil.NewTestEntry("u1", "Sooner")
	other := testutil.NewTestEntry("u2", "Other user")
	for _, e := range []*domain.CalendarEntry{e1, e2, other} {
		require.NoError(t, repo.Insert(ctx, e))
	}

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sooner", list[0].Title)
	assert.Equal(t, "Later", list[1].Title)
}

func TestCalendarRepo_ListSince(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	old := testutil.NewTestEntry("u1", "Last month",
		testutil.WithStart(time.Now().UTC().AddDate(0, -1, 0)))
	recent := testutil.NewTestEntry("u1", "Yesterday",
		testutil.WithStart(time.Now().UTC().Add(-24*time.Hour)), testutil.WithMood(domain.MoodGood))
	require.NoError(t, repo.Insert(ctx, old))
	require.NoError(t, repo.Insert(ctx, recent))

	list, err := repo.ListSince(ctx, "u1", time.Now().UTC().AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Yesterday", list[0].Title)
	require.NotNil(t, list[0].UserMood)
	assert.Equal(t, domain.MoodGood, *list[0].UserMood)
}

func TestCalendarRepo_DeleteGenerated_LeavesManual(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	gen := testutil.NewTestEntry("u1", "Generated", testutil.WithGenerated(true))
	manual := testutil.NewTestEntry("u1", "Dentist")
	otherGen := testutil.NewTestEntry("u2", "Other generated", testutil.WithGenerated(true))
	for _, e := range []*domain.CalendarEntry{gen, manual, otherGen} {
		require.NoError(t, repo.Insert(ctx, e))
	}

	require.NoError(t, repo.DeleteGenerated(ctx, "u1"))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dentist", list[0].Title)

	// Another user's generated set is untouched.
	otherList, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, otherList, 1)
}

func TestCalendarRepo_UpdateCompletion(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("u1", "Journal")
	require.NoError(t, repo.Insert(ctx, e))

	mood := domain.MoodLow
	require.NoError(t, repo.UpdateCompletion(ctx, e.ID, true, &mood))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Completed)
	require.NotNil(t, fetched.UserMood)
	assert.Equal(t, domain.MoodLow, *fetched.UserMood)

	// Un-completing clears the mood.
	require.NoError(t, repo.UpdateCompletion(ctx, e.ID, false, nil))
	fetched, err = repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Completed)
	assert.Nil(t, fetched.UserMood)
}

func TestCalendarRepo_UpdateCompletion_NotFound(t *testing.T) {
	repo := calendarTestSetup(t)
	err := repo.UpdateCompletion(context.Background(), "missing", true, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCalendarRepo_UpdateSchedule(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("u1", "Stretch")
	require.NoError(t, repo.Insert(ctx, e))

	newStart := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	newEnd := newStart.Add(45 * time.Minute)
	require.NoError(t, repo.UpdateSchedule(ctx, e.ID, newStart, newEnd))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Start.Equal(newStart))
	assert.True(t, fetched.End.Equal(newEnd))
}

func TestCalendarRepo_DeleteAndDeleteAll(t *testing.T) {
	repo := calendarTestSetup(t)
	ctx := context.Background()

	e1 := testutil.NewTestEntry("u1", "A")
	e2 := testutil.NewTestEntry("u1", "B")
	require.NoError(t, repo.Insert(ctx, e1))
	require.NoError(t, repo.Insert(ctx, e2))

	require.NoError(t, repo.Delete(ctx, e1.ID))
	assert.ErrorIs(t, repo.Delete(ctx, e1.ID), ErrNotFound)

	require.NoError(t, repo.DeleteAllByUser(ctx, "u1"))
	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
