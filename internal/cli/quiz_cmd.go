package cli

import (
	"context"
	"fmt"

	"github.com/aheedhul/StudyPath/internal/cli/formatter"
	"github.com/aheedhul/StudyPath/internal/quiz"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Inspect or replace a project's assessment quiz",
	}

	cmd.AddCommand(
		newQuizShowCmd(app),
		newQuizImportCmd(app),
	)

	return cmd
}

func newQuizShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show the stored assessment quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			q, err := app.Assessments.Quiz(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuiz(q))
			return nil
		},
	}
}

func newQuizImportCmd(app *App) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "import <project>",
		Short: "Replace the quiz with externally generated questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			questions, err := quiz.LoadQuiz(filePath)
			if err != nil {
				return err
			}
			if err := app.Assessments.ImportQuiz(ctx, id, questions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d questions for project %s\n", len(questions), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the quiz JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
