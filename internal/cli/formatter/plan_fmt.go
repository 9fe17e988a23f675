package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ellisbraun/haven/internal/domain"
)

// FormatDraft renders a numbered preview of an uncommitted plan, grouped in
// Monday-first day order so the week reads top to bottom.
func FormatDraft(events []domain.DraftEvent) string {
	if len(events) == 0 {
		return Dim("The draft is empty.") + "\n"
	}

	byDay := make(map[domain.Weekday][]int)
	for i, e := range events {
		byDay[e.Day] = append(byDay[e.Day], i)
	}

	var b strings.Builder
	for _, day := range []domain.Weekday{
		domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
		domain.Friday, domain.Saturday, domain.Sunday,
	} {
		indices, ok := byDay[day]
		if !ok {
			continue
		}
		b.WriteString(Header(string(day)))
		b.WriteString("\n")
		for _, i := range indices {
			e := events[i]
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
			fmt.Fprintf(&b, "  %s %s  %s  %s\n",
				StylePurple.Render(fmt.Sprintf("[%d]", i+1)),
				swatch,
				Dim(clockRange(e.StartTime, e.EndTime)),
				e.Activity)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDraftActions lists the keys available while previewing a draft.
func FormatDraftActions() string {
	return fmt.Sprintf("  %s swap an activity   %s commit   %s discard\n",
		Bold("s <n>"), Bold("c"), Bold("d"))
}

// clockRange trims canonical HH:MM:SS times down to HH:MM for display.
func clockRange(start, end string) string {
	return shortClock(start) + "-" + shortClock(end)
}

func shortClock(clock string) string {
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}
