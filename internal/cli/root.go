package cli

import (
	"github.com/spf13/cobra"

	"github.com/ellisbraun/haven/internal/service"
)

// App holds references to all service interfaces used by CLI commands, plus
// the per-process draft session that plan subcommands share.
type App struct {
	Plans       service.PlanService
	Calendar    service.CalendarService
	Assessments service.AssessmentService
	Import      service.ImportService

	UserID  string
	Session *service.DraftSession

	// IsInteractive reports whether stdin is a terminal; forms and the
	// draft preview loop are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "haven" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "haven",
		Short:         "Personal self-care planner",
		Long:          "Haven turns regular mood check-ins into a gentle weekly self-care schedule.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newCalendarCmd(app),
		newAssessCmd(app),
	)

	return root
}
