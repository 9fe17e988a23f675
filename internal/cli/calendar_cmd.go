package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ellisbraun/haven/internal/cli/formatter"
	"github.com/ellisbraun/haven/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "View and manage your calendar",
	}

	cmd.AddCommand(
		newCalendarListCmd(app),
		newCalendarAddCmd(app),
		newCalendarDoneCmd(app),
		newCalendarMoveCmd(app),
		newCalendarRemoveCmd(app),
		newCalendarClearCmd(app),
		newCalendarReviewCmd(app),
		newCalendarImportCmd(app),
	)

	return cmd
}

func newCalendarListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calendar entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Calendar.List(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCalendar(entries, time.Now()))
			return nil
		},
	}
}

func newCalendarAddCmd(app *App) *cobra.Command {
	var date, from, to, color string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a manual entry",
		Long: `Add a fixed commitment to the calendar by hand.

Manual entries are never touched by plan generation; the planner
schedules around them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateTime(date, from)
			if err != nil {
				return err
			}
			end, err := parseDateTime(date, to)
			if err != nil {
				return err
			}

			entry := &domain.CalendarEntry{
				UserID: app.UserID,
				Title:  args[0],
				Start:  start,
				End:    end,
				Color:  color,
			}
			if err := app.Calendar.AddManual(context.Background(), entry); err != nil {
				return err
			}
			fmt.Printf("Added %q on %s (%s)\n", entry.Title,
				start.Format("Monday Jan 2"), formatter.TruncID(entry.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "Start time (e.g. 15:00)")
	cmd.Flags().StringVar(&to, "to", "", "End time (e.g. 16:00)")
	cmd.Flags().StringVar(&color, "color", "", "Hex display color")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCalendarDoneCmd(app *App) *cobra.Command {
	var moodFlag string
	var undo bool

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark an entry completed, optionally with a mood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var mood *int
			if moodFlag != "" {
				m, err := parseMood(moodFlag)
				if err != nil {
					return err
				}
				mood = &m
			}

			if err := app.Calendar.SetCompletion(ctx, id, !undo, mood); err != nil {
				return err
			}
			if undo {
				fmt.Printf("Reopened %s\n", formatter.TruncID(id))
			} else {
				fmt.Printf("Completed %s\n", formatter.TruncID(id))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&moodFlag, "mood", "", "How it felt: good, okay, or low")
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the entry not completed")

	return cmd
}

func newCalendarMoveCmd(app *App) *cobra.Command {
	var date, from, to string

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Reschedule an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			start, err := parseDateTime(date, from)
			if err != nil {
				return err
			}
			end, err := parseDateTime(date, to)
			if err != nil {
				return err
			}

			if err := app.Calendar.Reschedule(ctx, id, start, end); err != nil {
				return err
			}
			fmt.Printf("Moved %s to %s\n", formatter.TruncID(id), start.Format("Monday Jan 2 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "New start time")
	cmd.Flags().StringVar(&to, "to", "", "New end time")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCalendarRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Calendar.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newCalendarClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every calendar entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("this removes generated and manual entries alike; pass --yes to confirm")
			}
			if err := app.Calendar.ClearAll(context.Background(), app.UserID); err != nil {
				return err
			}
			fmt.Println("Calendar cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation")

	return cmd
}

func newCalendarReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Look back at the last seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			review, err := app.Calendar.Review(context.Background(), app.UserID, nil)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatReview(review))
			return nil
		},
	}
}

func newCalendarImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import manual entries from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), app.UserID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d entries.\n", result.Inserted)
			return nil
		},
	}
}

// resolveEntryID accepts a full entry ID or a unique prefix of one.
func resolveEntryID(ctx context.Context, app *App, ref string) (string, error) {
	entries, err := app.Calendar.List(ctx, app.UserID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if e.ID == ref {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no entry matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d entries; use more characters", ref, len(matches))
	}
}

func parseMood(s string) (int, error) {
	switch strings.ToLower(s) {
	case "good":
		return domain.MoodGood, nil
	case "okay", "ok", "neutral":
		return domain.MoodNeutral, nil
	case "low", "bad":
		return domain.MoodLow, nil
	default:
		return 0, fmt.Errorf("mood must be good, okay, or low")
	}
}
