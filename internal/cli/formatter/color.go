package formatter

import (
	"fmt"
	"strings"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierBadge returns a colored knowledge-tier label.
func TierBadge(tier *domain.KnowledgeTier) string {
	if tier == nil {
		return StyleDim.Render("— unassessed")
	}
	switch *tier {
	case domain.TierBeginner:
		return StyleYellow.Render("● Beginner")
	case domain.TierIntermediate:
		return StyleBlue.Render("● Intermediate")
	case domain.TierAdvanced:
		return StyleGreen.Render("● Advanced")
	default:
		return StyleDim.Render(string(*tier))
	}
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectNotStarted:
		return StyleBlue.Render("○ Not started")
	case domain.ProjectInProgress:
		return StyleGreen.Render("● In progress")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectOnHold:
		return StyleYellow.Render("◌ On hold")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskTypePill returns a colored phase indicator for a schedule task.
func TaskTypePill(t domain.TaskType) string {
	if t == domain.TaskTesting {
		return StylePurple.Render("Testing")
	}
	return StyleBlue.Render("Learning")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
