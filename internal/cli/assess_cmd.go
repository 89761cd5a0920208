package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aheedhul/StudyPath/internal/cli/formatter"
	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	var responsesFlag, filePath string

	cmd := &cobra.Command{
		Use:   "assess <project>",
		Short: "Take the baseline quiz and generate the schedule",
		Long: `Submit answers to the project's assessment quiz. The graded result sets
the knowledge tier and regenerates the full study schedule.

Answers can come from an interactive form (default on a terminal), a
comma-separated --responses list, or a --file holding a JSON string array.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			quiz, err := app.Assessments.Quiz(ctx, id)
			if err != nil {
				return err
			}
			if len(quiz.Questions) == 0 {
				return fmt.Errorf("project has no quiz; import one with `quiz import`")
			}

			responses, err := collectResponses(app, quiz, responsesFlag, filePath)
			if err != nil {
				return err
			}

			summary, err := app.Assessments.SubmitResponses(ctx, id, responses)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScheduleSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&responsesFlag, "responses", "", "Comma-separated answers, one per question")
	cmd.Flags().StringVar(&filePath, "file", "", "Path to a JSON array of answers")

	return cmd
}

func collectResponses(app *App, quiz *contract.Quiz, responsesFlag, filePath string) ([]string, error) {
	switch {
	case responsesFlag != "":
		return strings.Split(responsesFlag, ","), nil
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading responses file: %w", err)
		}
		var responses []string
		if err := json.Unmarshal(data, &responses); err != nil {
			return nil, fmt.Errorf("parsing responses file: %w", err)
		}
		return responses, nil
	case app.IsInteractive != nil && app.IsInteractive():
		return promptResponses(quiz)
	default:
		return nil, fmt.Errorf("no terminal available; pass answers with --responses or --file")
	}
}

// promptResponses walks the quiz as a huh form: a select per multiple-choice
// question, a free-text input otherwise.
func promptResponses(quiz *contract.Quiz) ([]string, error) {
	responses := make([]string, len(quiz.Questions))
	fields := make([]huh.Field, 0, len(quiz.Questions))

	for i, q := range quiz.Questions {
		title := fmt.Sprintf("%d/%d  %s", i+1, len(quiz.Questions), q.Question)
		if q.ChapterRef != "" {
			title += "\n" + "(" + q.ChapterRef + ")"
		}
		if len(q.Choices) > 0 {
			options := make([]huh.Option[string], len(q.Choices))
			for j, choice := range q.Choices {
				options[j] = huh.NewOption(choice, choice)
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&responses[i]))
		} else {
			fields = append(fields, huh.NewInput().
				Title(title).
				Placeholder("your answer").
				Value(&responses[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("assessment cancelled: %w", err)
	}
	return responses, nil
}
