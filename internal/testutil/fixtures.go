package testutil

import (
	"time"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/google/uuid"
)

// Entry options
type EntryOption func(*domain.CalendarEntry)

func WithGenerated(g bool) EntryOption {
	return func(e *domain.CalendarEntry) {
		e.IsGenerated = g
	}
}

func WithStart(start time.Time) EntryOption {
	return func(e *domain.CalendarEntry) {
		e.Start = start
		e.End = start.Add(30 * time.Minute)
	}
}

func WithColor(c string) EntryOption {
	return func(e *domain.CalendarEntry) {
		e.Color = c
	}
}

func WithMood(m int) EntryOption {
	return func(e *domain.CalendarEntry) {
		e.Completed = true
		e.UserMood = &m
	}
}

// NewTestEntry builds a manual calendar entry starting an hour from now.
func NewTestEntry(userID, title string, opts ...EntryOption) *domain.CalendarEntry {
	start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	e := &domain.CalendarEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  title,
		Start:  start,
		End:    start.Add(30 * time.Minute),
		Color:  "#6f42c1",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assessment options
type AssessmentOption func(*domain.Assessment)

func WithAnswers(answers []int) AssessmentOption {
	return func(a *domain.Assessment) {
		a.Answers = answers
		a.Score = 0
		for _, v := range answers {
			a.Score += v
		}
	}
}

func WithTakenAt(ts time.Time) AssessmentOption {
	return func(a *domain.Assessment) {
		a.TakenAt = ts
	}
}

// NewTestAssessment builds an assessment with the given total score and no answers.
func NewTestAssessment(userID string, score int, opts ...AssessmentOption) *domain.Assessment {
	a := &domain.Assessment{
		ID:      uuid.New().String(),
		UserID:  userID,
		Score:   score,
		TakenAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestDraftEvent builds a complete draft event on the given day.
func NewTestDraftEvent(day domain.Weekday, activity string) domain.DraftEvent {
	return domain.DraftEvent{
		Day:       day,
		Activity:  activity,
		StartTime: "09:00:00",
		EndTime:   "09:30:00",
		Color:     "#fd7e14",
	}
}
