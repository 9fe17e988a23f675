package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ellisbraun/haven/internal/cli/formatter"
	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/service"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		preferences string
		intensity   string
		focus       []string
		busyDays    []string
		busyFrom    string
		busyTo      string
		sleepFrom   string
		sleepTo     string
		autoCommit  bool
		plain       bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a weekly self-care plan",
		Long: `Generate a one-week self-care schedule from your latest check-in.

Run without flags in a terminal for a guided form. The generated plan is
held as a draft: review it, swap activities you dislike, then commit it
to your calendar or discard it. Nothing touches the calendar until you
commit.

Examples:
  haven plan
  haven plan --intensity Gentle --focus Mindfulness --commit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := service.PlanRequest{
				UserID:      app.UserID,
				Preferences: preferences,
			}

			flagged := cmd.Flags().Changed("preferences") ||
				cmd.Flags().Changed("intensity") ||
				cmd.Flags().Changed("focus")
			if app.interactive() && !flagged {
				var err error
				req, err = gatherPlanRequest(ctx, app)
				if err != nil {
					return err
				}
			} else {
				if intensity != "" && !domain.ValidIntensities[intensity] {
					return fmt.Errorf("unknown intensity %q", intensity)
				}
				req.Intensity = domain.Intensity(intensity)
				if len(focus) > domain.MaxFocusAreas {
					return fmt.Errorf("at most %d focus areas", domain.MaxFocusAreas)
				}
				for _, f := range focus {
					req.FocusAreas = append(req.FocusAreas, domain.FocusArea(f))
				}
				availability, err := availabilityFromFlags(busyDays, busyFrom, busyTo, sleepFrom, sleepTo)
				if err != nil {
					return err
				}
				req.Availability = availability
			}

			spinner := formatter.NewSpinner("Drafting your week...")
			spinner.Start()
			warnings, err := app.Plans.Generate(ctx, app.Session, req)
			spinner.Stop()
			if err != nil {
				return err
			}
			printWarnings(warnings)

			if autoCommit {
				fmt.Print(formatter.FormatDraft(app.Session.Events))
				return commitDraft(ctx, app)
			}
			if !app.interactive() {
				fmt.Print(formatter.FormatDraft(app.Session.Events))
				fmt.Println(formatter.Dim("Run again with --commit to save this plan."))
				return nil
			}
			if plain {
				fmt.Print(formatter.FormatDraft(app.Session.Events))
				return runDraftLoop(ctx, app, bufio.NewReader(os.Stdin))
			}
			return runPreview(app)
		},
	}

	cmd.Flags().StringVar(&preferences, "preferences", "", "Free-form likes and dislikes")
	cmd.Flags().StringVar(&intensity, "intensity", "", "Plan pace (Very Gentle ... Motivated)")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Focus areas, up to three")
	cmd.Flags().StringSliceVar(&busyDays, "busy-days", nil, "Weekdays you are unavailable")
	cmd.Flags().StringVar(&busyFrom, "busy-from", "", "Unavailable from (e.g. 09:00)")
	cmd.Flags().StringVar(&busyTo, "busy-to", "", "Unavailable until (e.g. 17:00)")
	cmd.Flags().StringVar(&sleepFrom, "sleep-from", "", "Usual bedtime (e.g. 23:00)")
	cmd.Flags().StringVar(&sleepTo, "sleep-to", "", "Usual wake time (e.g. 07:00)")
	cmd.Flags().BoolVar(&autoCommit, "commit", false, "Commit the draft without previewing")
	cmd.Flags().BoolVar(&plain, "plain", false, "Review the draft with a line prompt instead of the full-screen view")

	return cmd
}

// preferenceHints suggests an example preference for the symptom the user
// scored highest on, falling back to a generic example.
var preferenceHints = map[string]string{
	"Little interest or pleasure": "e.g. I used to enjoy painting and want to again",
	"Sleep problems":              "e.g. nothing too stimulating in the evenings",
	"Feeling tired":               "e.g. short activities only, I run out of energy fast",
	"Concentration problems":      "e.g. hands-on things work better for me than reading",
}

func preferencePlaceholder(ctx context.Context, app *App) string {
	fallback := "e.g. I love being outdoors, no group activities"
	history, err := app.Assessments.History(ctx, app.UserID)
	if err != nil || len(history) == 0 {
		return fallback
	}
	areas := domain.ProblemAreas(history[0].Answers)
	if len(areas) == 0 {
		return fallback
	}
	if hint, ok := preferenceHints[areas[0]]; ok {
		return hint
	}
	return fallback
}

// gatherPlanRequest walks the user through the generation questions.
func gatherPlanRequest(ctx context.Context, app *App) (service.PlanRequest, error) {
	req := service.PlanRequest{UserID: app.UserID}

	intensityOptions := make([]huh.Option[string], 0, len(domain.Intensities))
	for _, level := range domain.Intensities {
		intensityOptions = append(intensityOptions, huh.NewOption(string(level), string(level)))
	}
	focusOptions := make([]huh.Option[string], 0, len(domain.FocusAreas))
	for _, area := range domain.FocusAreas {
		focusOptions = append(focusOptions, huh.NewOption(string(area), string(area)))
	}
	dayOptions := make([]huh.Option[string], 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		dayOptions = append(dayOptions, huh.NewOption(string(day), string(day)))
	}

	var (
		intensity = string(domain.IntensityStandard)
		focus     []string
		busyDays  []string
		busyFrom  string
		busyTo    string
		sleepFrom string
		sleepTo   string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How much do you want to take on this week?").
				Options(intensityOptions...).
				Value(&intensity),
			huh.NewMultiSelect[string]().
				Title("Anything you'd like the week to lean into?").
				Options(focusOptions...).
				Limit(domain.MaxFocusAreas).
				Value(&focus),
			huh.NewInput().
				Title("Any likes, dislikes, or notes for the planner?").
				Placeholder(preferencePlaceholder(ctx, app)).
				Value(&req.Preferences),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Days you're generally unavailable (work, school)").
				Options(dayOptions...).
				Value(&busyDays),
			huh.NewInput().
				Title("Unavailable from").
				Placeholder("09:00").
				Value(&busyFrom).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Unavailable until").
				Placeholder("17:00").
				Value(&busyTo).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Usual bedtime").
				Placeholder("23:00").
				Value(&sleepFrom).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Usual wake time").
				Placeholder("07:00").
				Value(&sleepTo).
				Validate(validateOptionalClock),
		),
	).WithTheme(havenHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return req, err
	}

	req.Intensity = domain.Intensity(intensity)
	for _, f := range focus {
		req.FocusAreas = append(req.FocusAreas, domain.FocusArea(f))
	}
	availability, err := availabilityFromFlags(busyDays, busyFrom, busyTo, sleepFrom, sleepTo)
	if err != nil {
		return req, err
	}
	req.Availability = availability
	return req, nil
}

// availabilityFromFlags assembles an Availability from the raw busy and sleep
// inputs. An empty result stays nil so prompts can say "available all day".
func availabilityFromFlags(busyDays []string, busyFrom, busyTo, sleepFrom, sleepTo string) (*domain.Availability, error) {
	var a domain.Availability

	if len(busyDays) > 0 && busyFrom != "" && busyTo != "" {
		block := &domain.RecurringBlock{
			TimeBlock: domain.TimeBlock{Start: busyFrom, End: busyTo},
		}
		for _, raw := range busyDays {
			day, ok := domain.ParseWeekday(raw)
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q", raw)
			}
			block.Days = append(block.Days, day)
		}
		a.Busy = block
	}
	if sleepFrom != "" && sleepTo != "" {
		a.Sleep = &domain.TimeBlock{Start: sleepFrom, End: sleepTo}
	}

	if a.Busy == nil && a.Sleep == nil {
		return nil, nil
	}
	return &a, nil
}

// runDraftLoop reads preview commands until the draft is committed,
// discarded, or the user quits.
func runDraftLoop(ctx context.Context, app *App, in *bufio.Reader) error {
	for app.Session.Status == service.StatusPreviewing {
		fmt.Print(formatter.FormatDraftActions())
		fmt.Print("  > ")

		line, err := in.ReadString('\n')
		if err != nil {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "c", "commit":
			if err := commitDraft(ctx, app); err != nil {
				fmt.Println(formatter.StyleRed.Render("Commit failed: " + err.Error()))
				fmt.Println(formatter.Dim("Your draft is still here."))
			}
		case "d", "discard":
			app.Plans.Discard(app.Session)
			fmt.Println(formatter.Dim("Draft discarded. Your calendar was not changed."))
		case "q", "quit":
			return nil
		case "s", "swap":
			if len(fields) < 2 {
				fmt.Println(formatter.Dim("Usage: s <number>"))
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println(formatter.Dim("Usage: s <number>"))
				continue
			}
			spinner := formatter.NewSpinner("Finding an alternative...")
			spinner.Start()
			swapErr := app.Plans.Swap(ctx, app.Session, n-1)
			spinner.Stop()
			if swapErr != nil {
				fmt.Println(formatter.StyleRed.Render("Swap failed: " + swapErr.Error()))
				continue
			}
			fmt.Print(formatter.FormatDraft(app.Session.Events))
		default:
			fmt.Println(formatter.Dim("Commands: s <n>, c, d, q"))
		}
	}
	return nil
}

func commitDraft(ctx context.Context, app *App) error {
	inserted, err := app.Plans.Commit(ctx, app.Session, nil)
	if err != nil {
		return err
	}
	fmt.Printf("Committed %d activities to your calendar.\n", inserted)
	return nil
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Println(formatter.StyleYellow.Render("warning: " + w))
	}
}
