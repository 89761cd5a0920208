package formatter

import (
	"fmt"
	"strings"

	"github.com/aheedhul/StudyPath/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects yet. Create one with `project add`."))
	}

	headers := []string{"ID", "NAME", "TIER", "STATUS", "DEADLINE"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		id := p.ShortID
		if strings.TrimSpace(id) == "" {
			id = p.DisplayID()
		}
		rows = append(rows, []string{
			id,
			Bold(p.Name),
			TierBadge(p.Tier),
			StatusPill(p.Status),
			p.DeadlineDate.Format("2006-01-02"),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a single project's metadata card.
func FormatProjectInspect(p *domain.Project, chapters []domain.ChapterChunk) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS  "), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), Dim(p.ShortID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UUID    "), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TIER    "), TierBadge(p.Tier)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START   "), StyleFg.Render(p.StartDate.Format("2006-01-02"))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DEADLINE"), StyleFg.Render(p.DeadlineDate.Format("2006-01-02"))))
	if p.DurationDays != nil {
		b.WriteString(fmt.Sprintf("%s  %d days\n", StyleDim.Render("OVERRIDE"), *p.DurationDays))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CADENCE "), StyleFg.Render(string(p.Granularity))))

	if len(chapters) > 0 {
		b.WriteString("\n")
		headers := []string{"#", "CHAPTER", "PAGES", "EST MIN"}
		rows := make([][]string, 0, len(chapters))
		for i, c := range chapters {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				c.Title,
				fmt.Sprintf("%d–%d", c.PageStart, c.PageEnd),
				fmt.Sprintf("%d", c.EstimatedMin),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString(Dim(fmt.Sprintf("Total: %d minutes of estimated study", domain.TotalEstimatedMin(chapters))))
	}

	return RenderBox("", b.String())
}
