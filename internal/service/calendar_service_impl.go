package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/repository"
)

type calendarService struct {
	calendar repository.CalendarRepo
}

func NewCalendarService(calendar repository.CalendarRepo) CalendarService {
	return &calendarService{calendar: calendar}
}

func (s *calendarService) List(ctx context.Context, userID string) ([]*domain.CalendarEntry, error) {
	return s.calendar.ListByUser(ctx, userID)
}

func (s *calendarService) AddManual(ctx context.Context, e *domain.CalendarEntry) error {
	if e.Title == "" {
		return fmt.Errorf("adding entry: title is required")
	}
	if !e.End.After(e.Start) {
		return ErrInvalidSchedule
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Color == "" {
		e.Color = DefaultEntryColor
	}
	e.IsGenerated = false
	return s.calendar.Insert(ctx, e)
}

func (s *calendarService) SetCompletion(ctx context.Context, id string, completed bool, mood *int) error {
	if mood != nil {
		switch *mood {
		case domain.MoodLow, domain.MoodNeutral, domain.MoodGood:
		default:
			return ErrInvalidMood
		}
	}
	// Mood only makes sense on a completed entry.
	if !completed {
		mood = nil
	}
	return s.calendar.UpdateCompletion(ctx, id, completed, mood)
}

func (s *calendarService) Reschedule(ctx context.Context, id string, start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidSchedule
	}
	return s.calendar.UpdateSchedule(ctx, id, start, end)
}

func (s *calendarService) Delete(ctx context.Context, id string) error {
	return s.calendar.Delete(ctx, id)
}

func (s *calendarService) ClearAll(ctx context.Context, userID string) error {
	return s.calendar.DeleteAllByUser(ctx, userID)
}

func (s *calendarService) Review(ctx context.Context, userID string, now *time.Time) (*WeeklyReview, error) {
	at := time.Now()
	if now != nil {
		at = *now
	}
	entries, err := s.calendar.ListSince(ctx, userID, at.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("loading week: %w", err)
	}

	review := &WeeklyReview{
		Entries:    entries,
		MoodCounts: make(map[int]int),
	}
	for _, e := range entries {
		// Only the week behind us counts toward the review.
		if e.Start.After(at) {
			continue
		}
		review.Total++
		if e.Completed {
			review.Completed++
		}
		if e.UserMood != nil {
			review.MoodCounts[*e.UserMood]++
		}
	}
	return review, nil
}
