package formatter

import (
	"fmt"
	"strings"

	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/aheedhul/StudyPath/internal/domain"
)

// FormatAlerts renders feasibility alerts as a yellow warning block, or an
// all-clear line when there are none.
func FormatAlerts(alerts []string) string {
	if len(alerts) == 0 {
		return StyleGreen.Render("✔ No feasibility concerns")
	}
	var b strings.Builder
	for i, alert := range alerts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleYellow.Render("! ") + StyleFg.Render(alert))
	}
	return b.String()
}

// FormatScheduleSummary renders the full plan: phase breakdown, alerts, and
// the week-by-week task table.
func FormatScheduleSummary(s *contract.ScheduleSummary) string {
	var b strings.Builder

	b.WriteString(Bold(s.Project.Name))
	if s.Project.ShortID != "" {
		b.WriteString(" " + Dim("["+s.Project.ShortID+"]"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s learning + %s testing = %s weeks\n",
		StyleDim.Render("PHASES"),
		StyleBlue.Render(fmt.Sprintf("%d", s.LearningWeeks)),
		StylePurple.Render(fmt.Sprintf("%d", s.TestingWeeks)),
		Bold(fmt.Sprintf("%d", s.TotalWeeks))))
	if s.Project.Tier != nil {
		tier := domain.KnowledgeTier(*s.Project.Tier)
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TIER  "), TierBadge(&tier)))
	}
	b.WriteString("\n")
	b.WriteString(FormatAlerts(s.FeasibilityAlerts))
	b.WriteString("\n\n")
	b.WriteString(formatTaskTable(s.Tasks))

	return RenderBox("Study Schedule", b.String())
}

func formatTaskTable(tasks []contract.ScheduleTask) string {
	if len(tasks) == 0 {
		return Dim("No tasks generated yet. Run `schedule generate` or submit an assessment.")
	}

	headers := []string{"WEEK", "PHASE", "ASSIGNED", "DUE", "STATUS"}
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", task.Week),
			TaskTypePill(domain.TaskType(task.Type)),
			strings.Join(task.AssignedChapters, ", "),
			task.DueDate,
			Dim(task.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatUpload renders the result of an outline ingestion: the created
// project, its chapter catalog, and the provisional feasibility pass.
func FormatUpload(resp *contract.UploadResponse) string {
	var b strings.Builder

	b.WriteString(Bold(resp.Project.Name) + " " + Dim("["+resp.Project.ShortID+"]") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s → %s\n",
		StyleDim.Render("WINDOW"), resp.Project.StartDate, resp.Project.DeadlineDate))
	b.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("PAGES "), resp.Project.TotalPages))
	b.WriteString("\n")

	headers := []string{"#", "CHAPTER", "PAGES", "EST MIN"}
	rows := make([][]string, 0, len(resp.ChapterChunks))
	for i, c := range resp.ChapterChunks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Title,
			fmt.Sprintf("%d–%d", c.PageStart, c.PageEnd),
			fmt.Sprintf("%d", c.EstimatedMin),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(FormatAlerts(resp.FeasibilityNotes))
	b.WriteString("\n\n")
	b.WriteString(Dim(fmt.Sprintf("Baseline quiz with %d questions is ready; run `assess` to take it.", len(resp.Quiz.Questions))))

	return RenderBox("Project Created", b.String())
}
