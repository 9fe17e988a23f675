package service

import (
	"context"
	"time"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/importer"
)

// PlanRequest carries the user-supplied inputs for one generation pass.
// Now overrides the wall clock for context assembly; nil means time.Now.
type PlanRequest struct {
	UserID       string
	Preferences  string
	FocusAreas   []domain.FocusArea
	Intensity    domain.Intensity
	Availability *domain.Availability
	Now          *time.Time
}

type PlanService interface {
	// Generate builds an assessment context, asks the generator for a
	// week of activities, and loads the validated result into the
	// session. Warnings describe records that were dropped.
	Generate(ctx context.Context, session *DraftSession, req PlanRequest) (warnings []string, err error)
	// Swap replaces the draft activity at index with a generated
	// alternative for the same day and slot. The draft is untouched on
	// error.
	Swap(ctx context.Context, session *DraftSession, index int) error
	// Commit projects the draft onto concrete dates and replaces the
	// user's generated calendar entries in one transaction. The session
	// keeps its draft if the commit fails. Now overrides the anchor
	// clock; nil means time.Now.
	Commit(ctx context.Context, session *DraftSession, now *time.Time) (inserted int, err error)
	// Discard drops the draft without touching the calendar.
	Discard(session *DraftSession)
}

// WeeklyReview summarizes the last seven days of calendar activity.
type WeeklyReview struct {
	Entries    []*domain.CalendarEntry
	Total      int
	Completed  int
	MoodCounts map[int]int
}

type CalendarService interface {
	List(ctx context.Context, userID string) ([]*domain.CalendarEntry, error)
	AddManual(ctx context.Context, e *domain.CalendarEntry) error
	SetCompletion(ctx context.Context, id string, completed bool, mood *int) error
	Reschedule(ctx context.Context, id string, start, end time.Time) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context, userID string) error
	Review(ctx context.Context, userID string, now *time.Time) (*WeeklyReview, error)
}

// ImportResult holds the outcome of a calendar import.
type ImportResult struct {
	Inserted int
}

type ImportService interface {
	// ImportFile validates a JSON calendar file and inserts its entries
	// as manual commitments in a single transaction.
	ImportFile(ctx context.Context, userID, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error)
}

type AssessmentService interface {
	// Record validates and stores a completed screening, returning the
	// stored assessment with its score filled in.
	Record(ctx context.Context, userID string, answers []int) (*domain.Assessment, error)
	History(ctx context.Context, userID string) ([]*domain.Assessment, error)
}
