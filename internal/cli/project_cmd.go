package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aheedhul/StudyPath/internal/cli/formatter"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/outline"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage study projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, shortID, start, deadline, granularity, outlinePath string
	var durationDays int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project from a document outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			deadlineDate, err := time.Parse("2006-01-02", deadline)
			if err != nil {
				return fmt.Errorf("invalid deadline %q: %w", deadline, err)
			}

			doc, err := outline.LoadDocument(outlinePath)
			if err != nil {
				return err
			}

			p := &domain.Project{
				ShortID:      strings.ToUpper(shortID),
				Name:         name,
				StartDate:    startDate,
				DeadlineDate: deadlineDate,
				Granularity:  domain.TaskGranularity(granularity),
			}
			if durationDays > 0 {
				p.DurationDays = &durationDays
			}

			resp, err := app.Projects.CreateFromOutline(context.Background(), p, doc)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUpload(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. HIST01)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outlinePath, "outline", "", "Path to the extracted outline JSON")
	cmd.Flags().StringVar(&granularity, "granularity", "weekly", "Task cadence: daily, weekly, or monthly")
	cmd.Flags().IntVar(&durationDays, "duration-days", 0, "Override the study window length in days")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("deadline")
	_ = cmd.MarkFlagRequired("outline")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show a project's metadata and chapter catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			summary, err := app.Schedules.Get(ctx, id)
			if err != nil {
				return err
			}
			chapters, err := app.Projects.Chapters(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectInspect(p, chapters))
			if len(summary.Tasks) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScheduleSummary(summary))
			}
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project>",
		Short: "Delete a project and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", args[0])
			return nil
		},
	}
}
