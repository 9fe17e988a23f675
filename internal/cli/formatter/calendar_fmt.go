package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/service"
)

// FormatCalendar renders calendar entries as a table, soonest first.
func FormatCalendar(entries []*domain.CalendarEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("The calendar is empty.") + "\n"
	}

	headers := []string{"ID", "WHEN", "TIME", "ACTIVITY", "SOURCE", "DONE", "MOOD"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		source := Dim("manual")
		if e.IsGenerated {
			source = StylePurple.Render("plan")
		}
		done := Dim("—")
		if e.Completed {
			done = StyleGreen.Render("✓")
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			RelativeDate(e.Start, now),
			clockRange(HumanClock(e.Start), HumanClock(e.End)),
			e.Title,
			source,
			done,
			MoodIndicator(e.UserMood),
		})
	}
	return RenderBox("Calendar", RenderTable(headers, rows))
}

// FormatReview renders the weekly review: completion rate plus a mood tally.
func FormatReview(review *service.WeeklyReview) string {
	var b strings.Builder
	b.WriteString(Header("Your week"))
	b.WriteString("\n")

	if review.Total == 0 {
		b.WriteString(Dim("Nothing was scheduled this week.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  Completed %s of %d scheduled activities (%s).\n",
		Bold(fmt.Sprintf("%d", review.Completed)), review.Total,
		Percent(review.Completed, review.Total))

	good := review.MoodCounts[domain.MoodGood]
	okay := review.MoodCounts[domain.MoodNeutral]
	low := review.MoodCounts[domain.MoodLow]
	if good+okay+low > 0 {
		fmt.Fprintf(&b, "  Moods: %s  %s  %s\n",
			StyleGreen.Render(fmt.Sprintf("%d good", good)),
			StyleYellow.Render(fmt.Sprintf("%d okay", okay)),
			StyleRed.Render(fmt.Sprintf("%d low", low)))
	} else {
		b.WriteString(Dim("  No moods recorded yet.") + "\n")
	}
	return b.String()
}

// FormatAssessmentHistory renders past screenings, newest last so the most
// recent score sits closest to the prompt.
func FormatAssessmentHistory(history []*domain.Assessment) string {
	if len(history) == 0 {
		return Dim("No check-ins recorded yet.") + "\n"
	}

	headers := []string{"TAKEN", "SCORE", "BAND"}
	rows := make([][]string, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		band := domain.SeverityForScore(a.Score)
		rows = append(rows, []string{
			HumanTimestamp(a.TakenAt),
			fmt.Sprintf("%d/27", a.Score),
			SeverityStyle(band).Render(string(band)),
		})
	}
	return RenderBox("Check-in history", RenderTable(headers, rows))
}

// FormatAssessmentResult summarizes a just-recorded screening.
func FormatAssessmentResult(a *domain.Assessment) string {
	band := domain.SeverityForScore(a.Score)
	return fmt.Sprintf("Recorded a score of %s (%s).\n",
		Bold(fmt.Sprintf("%d/27", a.Score)),
		SeverityStyle(band).Render(string(band)))
}
