package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ellisbraun/haven/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityStyle returns the style used when rendering a screening band.
func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityMinimal:
		return StyleGreen
	case domain.SeverityMild:
		return StyleBlue
	case domain.SeverityModerate:
		return StyleYellow
	case domain.SeverityModeratelySevere, domain.SeveritySevere:
		return StyleRed
	default:
		return StyleDim
	}
}

// MoodIndicator renders a recorded mood as a small colored marker.
func MoodIndicator(mood *int) string {
	if mood == nil {
		return StyleDim.Render("·")
	}
	switch *mood {
	case domain.MoodGood:
		return StyleGreen.Render("● good")
	case domain.MoodLow:
		return StyleRed.Render("● low")
	default:
		return StyleYellow.Render("● okay")
	}
}

// TrendIndicator renders a score trend with its direction colored.
func TrendIndicator(t domain.Trend) string {
	switch t {
	case domain.TrendImproving:
		return StyleGreen.Render("↓ improving")
	case domain.TrendWorsening:
		return StyleRed.Render("↑ worsening")
	case domain.TrendStable:
		return StyleBlue.Render("→ stable")
	default:
		return StyleDim.Render("first check-in")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
