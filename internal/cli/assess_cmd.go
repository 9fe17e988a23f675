package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ellisbraun/haven/internal/cli/formatter"
	"github.com/ellisbraun/haven/internal/domain"
)

func newAssessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Record and review mood check-ins",
	}

	cmd.AddCommand(
		newAssessTakeCmd(app),
		newAssessHistoryCmd(app),
	)

	return cmd
}

func newAssessTakeCmd(app *App) *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Take the nine-question check-in",
		Long: `Answer the nine screening questions, each on a 0-3 scale:

  0  Not at all
  1  Several days
  2  More than half the days
  3  Nearly every day

In a terminal the questions are asked one by one. Otherwise pass all
nine answers at once, e.g. --answers 1,2,0,1,0,0,2,0,0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var answers []int
			var err error

			if answersFlag != "" {
				answers, err = parseAnswers(answersFlag)
			} else if app.interactive() {
				answers, err = gatherAnswers()
			} else {
				return fmt.Errorf("not a terminal; pass --answers with nine comma-separated values")
			}
			if err != nil {
				return err
			}

			a, err := app.Assessments.Record(context.Background(), app.UserID, answers)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAssessmentResult(a))
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "Nine comma-separated answers, each 0-3")

	return cmd
}

func newAssessHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.Assessments.History(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAssessmentHistory(history))
			return nil
		},
	}
}

var answerScale = []struct {
	label string
	value int
}{
	{"Not at all", 0},
	{"Several days", 1},
	{"More than half the days", 2},
	{"Nearly every day", 3},
}

// gatherAnswers asks all nine questions in a single themed form.
func gatherAnswers() ([]int, error) {
	answers := make([]int, len(domain.PHQ9Questions))

	fields := make([]huh.Field, 0, len(domain.PHQ9Questions))
	for i, question := range domain.PHQ9Questions {
		options := make([]huh.Option[int], 0, len(answerScale))
		for _, step := range answerScale {
			options = append(options, huh.NewOption(step.label, step.value))
		}
		fields = append(fields, huh.NewSelect[int]().
			Title(fmt.Sprintf("%d. %s", i+1, question)).
			Description("Over the last two weeks, how often has this bothered you?").
			Options(options...).
			Value(&answers[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(havenHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return answers, nil
}

func parseAnswers(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != len(domain.PHQ9Questions) {
		return nil, fmt.Errorf("expected %d answers, got %d", len(domain.PHQ9Questions), len(parts))
	}
	answers := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 3 {
			return nil, fmt.Errorf("answer %d must be a number between 0 and 3", i+1)
		}
		answers[i] = v
	}
	return answers, nil
}
