package cli

import (
	"github.com/aheedhul/StudyPath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Assessments service.AssessmentService
	Schedules   service.ScheduleService

	// IsInteractive reports whether stdin is attached to a terminal. The
	// assess command only launches its form when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studypath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studypath",
		Short: "Feasibility-aware study schedule planner",
		Long: `StudyPath turns a document outline into a week-by-week study plan.
Upload an outline, take the baseline quiz, and get a schedule split into
learning and testing phases, paced by your assessed knowledge tier.`,
	}

	root.AddCommand(
		newProjectCmd(app),
		newQuizCmd(app),
		newAssessCmd(app),
		newScheduleCmd(app),
	)

	return root
}
