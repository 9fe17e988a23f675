package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ellisbraun/haven/internal/db"
	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/llm"
	"github.com/ellisbraun/haven/internal/plan"
	"github.com/ellisbraun/haven/internal/repository"
)

// DefaultEntryColor is applied to generated activities that arrive without
// a color of their own.
const DefaultEntryColor = "#6f42c1"

type planService struct {
	calendar    repository.CalendarRepo
	assessments repository.AssessmentRepo
	generator   llm.Client
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewPlanService(
	calendar repository.CalendarRepo,
	assessments repository.AssessmentRepo,
	generator llm.Client,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		calendar:    calendar,
		assessments: assessments,
		generator:   generator,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, session *DraftSession, req PlanRequest) ([]string, error) {
	started := time.Now()

	actx, err := s.assembleContext(ctx, req)
	if err != nil {
		s.observe(ctx, "plan_generate", started, err, nil)
		return nil, err
	}

	resp, err := s.generator.Generate(ctx, llm.Request{
		Task:         llm.TaskWeeklyPlan,
		SystemPrompt: plan.SystemPrompt(),
		UserPrompt:   plan.BuildWeeklyPrompt(*actx),
	})
	if err != nil {
		s.observe(ctx, "plan_generate", started, err, nil)
		return nil, fmt.Errorf("generating weekly plan: %w", err)
	}

	records, err := plan.ExtractRecords(resp.Text)
	if err != nil {
		s.observe(ctx, "plan_generate", started, err, nil)
		return nil, fmt.Errorf("generating weekly plan: %w", err)
	}

	events, warnings := validateRecords(records)
	if len(events) == 0 {
		s.observe(ctx, "plan_generate", started, ErrNoUsableActivities, nil)
		return warnings, ErrNoUsableActivities
	}

	session.UserID = req.UserID
	session.Events = events
	session.Context = *actx
	session.Status = StatusPreviewing

	s.observe(ctx, "plan_generate", started, nil, map[string]any{
		"activities": len(events),
		"dropped":    len(warnings),
	})
	return warnings, nil
}

func (s *planService) Swap(ctx context.Context, session *DraftSession, index int) error {
	started := time.Now()

	if session.Status != StatusPreviewing || len(session.Events) == 0 {
		return ErrEmptyDraft
	}
	if index < 0 || index >= len(session.Events) {
		return ErrInvalidSwapIndex
	}
	target := session.Events[index]

	resp, err := s.generator.Generate(ctx, llm.Request{
		Task:         llm.TaskSwap,
		SystemPrompt: plan.SystemPrompt(),
		UserPrompt:   plan.BuildSwapPrompt(session.Context, target),
	})
	if err != nil {
		s.observe(ctx, "plan_swap", started, err, nil)
		return fmt.Errorf("generating swap: %w", err)
	}

	records, err := plan.ExtractRecords(resp.Text)
	if err != nil {
		s.observe(ctx, "plan_swap", started, err, nil)
		return fmt.Errorf("generating swap: %w", err)
	}

	// Only the first record matters; anything extra is generator noise.
	session.Events[index] = mergeSwap(records[0], target)

	s.observe(ctx, "plan_swap", started, nil, map[string]any{"index": index})
	return nil
}

func (s *planService) Commit(ctx context.Context, session *DraftSession, now *time.Time) (int, error) {
	started := time.Now()

	if session.Status != StatusPreviewing || len(session.Events) == 0 {
		return 0, ErrEmptyDraft
	}

	// One anchor for the whole pass, so every symbolic day in the draft
	// projects against the same date even if commit spans midnight.
	anchor := time.Now()
	if now != nil {
		anchor = *now
	}

	entries := make([]*domain.CalendarEntry, 0, len(session.Events))
	for _, e := range session.Events {
		date := plan.NextOccurrence(e.Day, anchor)
		start, err := plan.CombineDateTime(date, e.StartTime)
		if err != nil {
			return 0, fmt.Errorf("materializing %q: %w", e.Activity, err)
		}
		end, err := plan.CombineDateTime(date, e.EndTime)
		if err != nil {
			return 0, fmt.Errorf("materializing %q: %w", e.Activity, err)
		}
		entries = append(entries, &domain.CalendarEntry{
			ID:          uuid.New().String(),
			UserID:      session.UserID,
			Title:       e.Activity,
			Start:       start,
			End:         end,
			Color:       e.Color,
			IsGenerated: true,
		})
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCalendar := repository.NewSQLiteCalendarRepo(tx)
		if err := txCalendar.DeleteGenerated(ctx, session.UserID); err != nil {
			return fmt.Errorf("clearing previous plan: %w", err)
		}
		for _, entry := range entries {
			if err := txCalendar.Insert(ctx, entry); err != nil {
				return fmt.Errorf("inserting %q: %w", entry.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		// The draft survives so the user can retry or discard.
		s.observe(ctx, "plan_commit", started, err, nil)
		return 0, err
	}

	session.Clear()
	s.observe(ctx, "plan_commit", started, nil, map[string]any{"inserted": len(entries)})
	return len(entries), nil
}

func (s *planService) Discard(session *DraftSession) {
	session.Clear()
}

// assembleContext gathers everything a generation prompt needs: score and
// trend from the assessment history, problem areas from the latest answers,
// and the user's manual calendar commitments.
func (s *planService) assembleContext(ctx context.Context, req PlanRequest) (*domain.AssessmentContext, error) {
	scores, err := s.assessments.LatestScores(ctx, req.UserID, 2)
	if err != nil {
		return nil, fmt.Errorf("loading assessment history: %w", err)
	}
	if len(scores) == 0 {
		return nil, ErrNoAssessment
	}
	score := scores[0]
	var previous *int
	if len(scores) > 1 {
		previous = &scores[1]
	}
	trend := domain.TrendFromScores(score, previous)

	var problemAreas []string
	answers, err := s.assessments.LatestAnswers(ctx, req.UserID)
	switch {
	case err == nil:
		problemAreas = domain.ProblemAreas(answers)
	case errors.Is(err, repository.ErrNotFound):
		// Score-only records carry no per-question detail.
	default:
		return nil, fmt.Errorf("loading assessment answers: %w", err)
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	upcoming, err := s.calendar.ListSince(ctx, req.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}
	var fixed []domain.CalendarEntry
	for _, e := range upcoming {
		if !e.IsGenerated {
			fixed = append(fixed, *e)
		}
	}

	return &domain.AssessmentContext{
		Score:        score,
		Severity:     domain.SeverityForScore(score),
		Trend:        trend,
		TrendDetail:  trendDetail(trend, score, previous),
		ProblemAreas: problemAreas,
		Preferences:  req.Preferences,
		FocusAreas:   req.FocusAreas,
		FixedEvents:  fixed,
		Availability: req.Availability,
		Intensity:    req.Intensity,
	}, nil
}

func trendDetail(trend domain.Trend, score int, previous *int) string {
	switch trend {
	case domain.TrendFirstAssessment:
		return "This is the user's first assessment."
	case domain.TrendImproving:
		return fmt.Sprintf("IMPROVING. The score fell from %d to %d.", *previous, score)
	case domain.TrendWorsening:
		return fmt.Sprintf("WORSENING. The score rose from %d to %d.", *previous, score)
	default:
		return fmt.Sprintf("STABLE. The score held at %d.", score)
	}
}

// validateRecords turns loosely-typed generator records into draft events,
// dropping anything with an unknown day, an unparseable time, or no activity.
// Each drop produces a warning rather than failing the whole draft.
func validateRecords(records []plan.PlanRecord) ([]domain.DraftEvent, []string) {
	var events []domain.DraftEvent
	var warnings []string

	for _, rec := range records {
		if rec.Activity == "" {
			warnings = append(warnings, "dropped a record with no activity")
			continue
		}
		day, ok := domain.ParseWeekday(rec.Day)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dropped %q: unknown day %q", rec.Activity, rec.Day))
			continue
		}
		start, ok := plan.NormalizeTime(rec.StartTime)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dropped %q: unparseable start time %q", rec.Activity, rec.StartTime))
			continue
		}
		end, ok := plan.NormalizeTime(rec.EndTime)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dropped %q: unparseable end time %q", rec.Activity, rec.EndTime))
			continue
		}
		// Canonical HH:MM:SS strings order lexicographically.
		if end <= start {
			warnings = append(warnings, fmt.Sprintf("dropped %q: end time %q is not after start time %q", rec.Activity, end, start))
			continue
		}
		events = append(events, domain.DraftEvent{
			Day:       day,
			Activity:  rec.Activity,
			StartTime: start,
			EndTime:   end,
			Color:     domain.CoalesceStr(rec.Color, DefaultEntryColor),
		})
	}
	return events, warnings
}

// mergeSwap folds a swap record over the activity it replaces. Fields the
// generator omitted or mangled keep the original's values, so a partial
// response can never punch holes in the draft.
func mergeSwap(rec plan.PlanRecord, target domain.DraftEvent) domain.DraftEvent {
	merged := domain.DraftEvent{
		Day:       target.Day,
		Activity:  domain.CoalesceStr(rec.Activity, target.Activity),
		StartTime: target.StartTime,
		EndTime:   target.EndTime,
		Color:     domain.CoalesceStr(rec.Color, target.Color),
	}
	if day, ok := domain.ParseWeekday(rec.Day); ok {
		merged.Day = day
	}
	if start, ok := plan.NormalizeTime(rec.StartTime); ok {
		merged.StartTime = start
	}
	if end, ok := plan.NormalizeTime(rec.EndTime); ok {
		merged.EndTime = end
	}
	// An inverted window reverts to the target's slot, which is known good.
	if merged.EndTime <= merged.StartTime {
		merged.StartTime = target.StartTime
		merged.EndTime = target.EndTime
	}
	return merged
}

func (s *planService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
