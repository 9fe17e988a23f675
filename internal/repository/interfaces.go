package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ellisbraun/haven/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type CalendarRepo interface {
	Insert(ctx context.Context, e *domain.CalendarEntry) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CalendarEntry, error)
	// ListSince returns entries whose start is at or after the given instant.
	ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.CalendarEntry, error)
	// DeleteGenerated removes every generated entry for the user, leaving
	// manual entries untouched.
	DeleteGenerated(ctx context.Context, userID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
	UpdateCompletion(ctx context.Context, id string, completed bool, mood *int) error
	UpdateSchedule(ctx context.Context, id string, start, end time.Time) error
}

type AssessmentRepo interface {
	Insert(ctx context.Context, a *domain.Assessment) error
	// LatestScores returns up to n of the user's most recent scores,
	// newest first.
	LatestScores(ctx context.Context, userID string, n int) ([]int, error)
	// LatestAnswers returns the most recent answer set, or ErrNotFound.
	LatestAnswers(ctx context.Context, userID string) ([]int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Assessment, error)
}
