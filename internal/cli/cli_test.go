package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/service"
	"github.com/ellisbraun/haven/internal/testutil"
)

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers("1,2,0, 1,0,0,2,0,0")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 1, 0, 0, 2, 0, 0}, answers)

	_, err = parseAnswers("1,2,3")
	assert.Error(t, err)

	_, err = parseAnswers("1,2,0,1,0,0,2,0,9")
	assert.Error(t, err)

	_, err = parseAnswers("1,2,0,1,0,0,2,0,x")
	assert.Error(t, err)
}

func TestParseMood(t *testing.T) {
	m, err := parseMood("good")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodGood, m)

	m, err = parseMood("OK")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodNeutral, m)

	m, err = parseMood("low")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodLow, m)

	_, err = parseMood("ecstatic")
	assert.Error(t, err)
}

func TestAvailabilityFromFlags(t *testing.T) {
	a, err := availabilityFromFlags(nil, "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = availabilityFromFlags([]string{"Monday", "Friday"}, "09:00", "17:00", "", "")
	require.NoError(t, err)
	require.NotNil(t, a)
	require.NotNil(t, a.Busy)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Friday}, a.Busy.Days)
	assert.Nil(t, a.Sleep)

	a, err = availabilityFromFlags(nil, "", "", "23:00", "07:00")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Nil(t, a.Busy)
	require.NotNil(t, a.Sleep)
	assert.Equal(t, "23:00", a.Sleep.Start)

	_, err = availabilityFromFlags([]string{"Blursday"}, "09:00", "17:00", "", "")
	assert.Error(t, err)

	// A busy window without days or times is treated as absent.
	a, err = availabilityFromFlags([]string{"Monday"}, "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestValidateOptionalClock(t *testing.T) {
	assert.NoError(t, validateOptionalClock(""))
	assert.NoError(t, validateOptionalClock("09:00"))
	assert.NoError(t, validateOptionalClock("5:30 PM"))
	assert.Error(t, validateOptionalClock("sometime"))
}

func TestParseDateTime(t *testing.T) {
	at, err := parseDateTime("2025-03-08", "15:00")
	require.NoError(t, err)
	assert.Equal(t, 2025, at.Year())
	assert.Equal(t, 15, at.Hour())

	_, err = parseDateTime("March 8th", "15:00")
	assert.Error(t, err)

	_, err = parseDateTime("2025-03-08", "threeish")
	assert.Error(t, err)
}

// fakeCalendarService serves canned entries for ID resolution tests.
type fakeCalendarService struct {
	service.CalendarService
	entries []*domain.CalendarEntry
}

func (f *fakeCalendarService) List(context.Context, string) ([]*domain.CalendarEntry, error) {
	return f.entries, nil
}

func TestResolveEntryID(t *testing.T) {
	fake := &fakeCalendarService{entries: []*domain.CalendarEntry{
		{ID: "aaaa1111-0000"},
		{ID: "aaab2222-0000"},
		{ID: "bbbb3333-0000"},
	}}
	app := &App{Calendar: fake, UserID: "casey"}
	ctx := context.Background()

	id, err := resolveEntryID(ctx, app, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, "bbbb3333-0000", id)

	id, err = resolveEntryID(ctx, app, "aaaa1111-0000")
	require.NoError(t, err)
	assert.Equal(t, "aaaa1111-0000", id)

	_, err = resolveEntryID(ctx, app, "aaa")
	assert.ErrorContains(t, err, "matches 2")

	_, err = resolveEntryID(ctx, app, "zzz")
	assert.ErrorContains(t, err, "no entry")
}

type fakeAssessmentService struct {
	service.AssessmentService
	history []*domain.Assessment
}

func (f *fakeAssessmentService) History(context.Context, string) ([]*domain.Assessment, error) {
	return f.history, nil
}

func TestPreferencePlaceholder(t *testing.T) {
	ctx := context.Background()
	generic := "e.g. I love being outdoors, no group activities"

	app := &App{UserID: "casey", Assessments: &fakeAssessmentService{}}
	assert.Equal(t, generic, preferencePlaceholder(ctx, app))

	// Sleep problems (index 2) scored highest: the hint should follow.
	app.Assessments = &fakeAssessmentService{history: []*domain.Assessment{
		{Answers: []int{1, 0, 3, 2, 0, 0, 0, 0, 0}},
	}}
	assert.Contains(t, preferencePlaceholder(ctx, app), "evenings")

	// Top area has no dedicated hint.
	app.Assessments = &fakeAssessmentService{history: []*domain.Assessment{
		{Answers: []int{0, 0, 0, 0, 3, 0, 0, 0, 0}},
	}}
	assert.Equal(t, generic, preferencePlaceholder(ctx, app))

	// All answers mild: no problem areas at all.
	app.Assessments = &fakeAssessmentService{history: []*domain.Assessment{
		{Answers: []int{1, 1, 1, 0, 0, 0, 0, 0, 0}},
	}}
	assert.Equal(t, generic, preferencePlaceholder(ctx, app))
}

// fakePlanService records draft-loop calls without touching a generator.
type fakePlanService struct {
	swapped   []int
	committed bool
	swapErr   error
	commitErr error
}

func (f *fakePlanService) Generate(context.Context, *service.DraftSession, service.PlanRequest) ([]string, error) {
	return nil, nil
}

func (f *fakePlanService) Swap(_ context.Context, s *service.DraftSession, index int) error {
	if f.swapErr != nil {
		return f.swapErr
	}
	f.swapped = append(f.swapped, index)
	return nil
}

func (f *fakePlanService) Commit(_ context.Context, s *service.DraftSession, _ *time.Time) (int, error) {
	if f.commitErr != nil {
		return 0, f.commitErr
	}
	f.committed = true
	n := len(s.Events)
	s.Clear()
	return n, nil
}

func (f *fakePlanService) Discard(s *service.DraftSession) {
	s.Clear()
}

func previewSession() *service.DraftSession {
	return &service.DraftSession{
		UserID: "casey",
		Events: []domain.DraftEvent{
			testutil.NewTestDraftEvent(domain.Monday, "Morning walk"),
			testutil.NewTestDraftEvent(domain.Tuesday, "Journaling"),
		},
		Status: service.StatusPreviewing,
	}
}

func TestDraftLoop_SwapThenCommit(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, UserID: "casey", Session: previewSession()}

	in := bufio.NewReader(strings.NewReader("s 2\nc\n"))
	require.NoError(t, runDraftLoop(context.Background(), app, in))

	assert.Equal(t, []int{1}, plans.swapped)
	assert.True(t, plans.committed)
	assert.Equal(t, service.StatusEmpty, app.Session.Status)
}

func TestDraftLoop_Discard(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, UserID: "casey", Session: previewSession()}

	in := bufio.NewReader(strings.NewReader("d\n"))
	require.NoError(t, runDraftLoop(context.Background(), app, in))

	assert.False(t, plans.committed)
	assert.Equal(t, service.StatusEmpty, app.Session.Status)
}

func TestDraftLoop_QuitKeepsDraft(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, UserID: "casey", Session: previewSession()}

	in := bufio.NewReader(strings.NewReader("q\n"))
	require.NoError(t, runDraftLoop(context.Background(), app, in))

	assert.Equal(t, service.StatusPreviewing, app.Session.Status)
	assert.Len(t, app.Session.Events, 2)
}

func TestDraftLoop_CommitFailureKeepsLooping(t *testing.T) {
	plans := &fakePlanService{commitErr: assert.AnError}
	app := &App{Plans: plans, UserID: "casey", Session: previewSession()}

	// Failed commit, then quit; the draft must survive.
	in := bufio.NewReader(strings.NewReader("c\nq\n"))
	require.NoError(t, runDraftLoop(context.Background(), app, in))

	assert.Equal(t, service.StatusPreviewing, app.Session.Status)
}

func TestDraftLoop_BadInputIsIgnored(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, UserID: "casey", Session: previewSession()}

	in := bufio.NewReader(strings.NewReader("\nwat\ns\ns five\nq\n"))
	require.NoError(t, runDraftLoop(context.Background(), app, in))

	assert.Empty(t, plans.swapped)
	assert.Equal(t, service.StatusPreviewing, app.Session.Status)
}
