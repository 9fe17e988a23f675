package plan

import (
	"fmt"
	"strings"

	"github.com/ellisbraun/haven/internal/domain"
)

// SystemPrompt returns the shared system framing for plan generation calls.
func SystemPrompt() string {
	return plannerSystemPrompt
}

// BuildWeeklyPrompt renders a bounded natural-language request for a full
// one-week schedule from every field of the assessment context.
func BuildWeeklyPrompt(ctx domain.AssessmentContext) string {
	var b strings.Builder
	writeUserData(&b, ctx)
	b.WriteString("**Instructions:**\n")
	b.WriteString("Generate a full 7-day schedule starting from today. ")
	b.WriteString("Respond ONLY with a valid JSON array of objects, one per activity, covering the coming week.\n")
	return b.String()
}

// BuildSwapPrompt narrows the request to exactly one alternative for the
// target's day and time slot, different from its current activity. The
// expected response is a single JSON object rather than an array.
func BuildSwapPrompt(ctx domain.AssessmentContext, target domain.DraftEvent) string {
	var b strings.Builder
	writeUserData(&b, ctx)
	b.WriteString("**Instructions:**\n")
	fmt.Fprintf(&b, "The user wants to swap this activity: %q.\n", target.Activity)
	fmt.Fprintf(&b, "Generate ONE new, DIFFERENT activity for %s around %s.\n", target.Day, target.StartTime)
	fmt.Fprintf(&b, "The \"day\" value MUST be %q.\n", string(target.Day))
	b.WriteString("Respond with ONLY a single JSON object, not an array.\n")
	return b.String()
}

func writeUserData(b *strings.Builder, ctx domain.AssessmentContext) {
	b.WriteString("**User's Data:**\n")
	fmt.Fprintf(b, "1. Screening score: %d/27 (%q)\n", ctx.Score, string(ctx.Severity))
	fmt.Fprintf(b, "2. Score trend: %s\n", trendText(ctx))
	fmt.Fprintf(b, "3. Problem areas: %s\n", problemAreasText(ctx.ProblemAreas))
	fmt.Fprintf(b, "4. Intensity: %q\n", string(ctx.Intensity))
	fmt.Fprintf(b, "5. Preferences: %q\n", ctx.Preferences)
	fmt.Fprintf(b, "6. Focus: %s\n", focusText(ctx.FocusAreas))
	fmt.Fprintf(b, "7. Fixed commitments: %s\n", fixedEventsText(ctx.FixedEvents))
	fmt.Fprintf(b, "8. Unavailable hours: %s\n", availabilityText(ctx.Availability))
}

func trendText(ctx domain.AssessmentContext) string {
	if ctx.TrendDetail != "" {
		return ctx.TrendDetail
	}
	switch ctx.Trend {
	case domain.TrendFirstAssessment:
		return "This is the user's first assessment."
	case domain.TrendImproving:
		return "IMPROVING."
	case domain.TrendWorsening:
		return "WORSENING."
	default:
		return "STABLE."
	}
}

func problemAreasText(areas []string) string {
	if len(areas) == 0 {
		return "No specific problem areas identified."
	}
	return strings.Join(areas, "; ")
}

func focusText(areas []domain.FocusArea) string {
	if len(areas) == 0 {
		return "No particular focus."
	}
	parts := make([]string, len(areas))
	for i, a := range areas {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

func fixedEventsText(events []domain.CalendarEntry) string {
	if len(events) == 0 {
		return "The user has no fixed commitments."
	}
	var lines []string
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("- On %s, %q is from %s to %s.",
			e.Start.Format("Monday"), e.Title,
			e.Start.Format("03:04 PM"), e.End.Format("03:04 PM")))
	}
	return "\n" + strings.Join(lines, "\n")
}

func availabilityText(a *domain.Availability) string {
	if a == nil {
		return "User is available all day."
	}
	var lines []string
	if a.Busy != nil && len(a.Busy.Days) > 0 && a.Busy.Start != "" && a.Busy.End != "" {
		days := make([]string, len(a.Busy.Days))
		for i, d := range a.Busy.Days {
			days[i] = string(d)
		}
		lines = append(lines, fmt.Sprintf("- Unavailable on %s from %s to %s.",
			strings.Join(days, ", "), a.Busy.Start, a.Busy.End))
	}
	if a.Sleep != nil && a.Sleep.Start != "" && a.Sleep.End != "" {
		lines = append(lines, fmt.Sprintf("- Typically asleep from %s to %s.",
			a.Sleep.Start, a.Sleep.End))
	}
	if len(lines) == 0 {
		return "User is available all day."
	}
	return "\n" + strings.Join(lines, "\n")
}
