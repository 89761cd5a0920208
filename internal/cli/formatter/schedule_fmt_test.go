package formatter

import (
	"testing"
	"time"

	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSummary() *contract.ScheduleSummary {
	tier := "Intermediate"
	return &contract.ScheduleSummary{
		Project: contract.Project{
			ID:           "12345678-aaaa-bbbb-cccc-1234567890ab",
			ShortID:      "HIST01",
			Name:         "Roman History",
			StartDate:    "2025-09-01",
			DeadlineDate: "2025-09-28",
			Tier:         &tier,
			Granularity:  "weekly",
			Status:       "InProgress",
		},
		LearningWeeks:     3,
		TestingWeeks:      1,
		TotalWeeks:        4,
		FeasibilityAlerts: nil,
		Tasks: []contract.ScheduleTask{
			{Week: 1, Type: "Learning", AssignedChapters: []string{"Origins"}, DueDate: "2025-09-07", Status: "Pending"},
			{Week: 4, Type: "Testing", AssignedChapters: []string{"Review: Origins"}, DueDate: "2025-09-28", Status: "Pending"},
		},
	}
}

func TestFormatScheduleSummary(t *testing.T) {
	out := FormatScheduleSummary(sampleSummary())

	assert.Contains(t, out, "Roman History")
	assert.Contains(t, out, "HIST01")
	assert.Contains(t, out, "Origins")
	assert.Contains(t, out, "2025-09-07")
	assert.Contains(t, out, "Intermediate")
	assert.Contains(t, out, "No feasibility concerns")
}

func TestFormatScheduleSummary_ShowsAlerts(t *testing.T) {
	s := sampleSummary()
	s.FeasibilityAlerts = []string{"Deadline is very tight; consider extending it for a dedicated testing phase."}

	out := FormatScheduleSummary(s)
	assert.Contains(t, out, "Deadline is very tight")
	assert.NotContains(t, out, "No feasibility concerns")
}

func TestFormatScheduleSummary_EmptyTasks(t *testing.T) {
	s := sampleSummary()
	s.Tasks = nil

	out := FormatScheduleSummary(s)
	assert.Contains(t, out, "No tasks generated yet")
}

func TestFormatProjectList_ShortIDAndFallback(t *testing.T) {
	now := time.Now().UTC()
	projects := []*domain.Project{
		{
			ID:           "12345678-aaaa-bbbb-cccc-1234567890ab",
			ShortID:      "HIST01",
			Name:         "Roman History",
			StartDate:    now,
			DeadlineDate: now.AddDate(0, 0, 28),
			Status:       domain.ProjectNotStarted,
		},
		{
			ID:           "abcdef12-3456-7890-abcd-ef1234567890",
			Name:         "Untitled Upload",
			StartDate:    now,
			DeadlineDate: now.AddDate(0, 0, 28),
			Status:       domain.ProjectInProgress,
		},
	}

	out := FormatProjectList(projects)
	assert.Contains(t, out, "HIST01")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "12345678")
}

func TestFormatQuiz_LettersChoices(t *testing.T) {
	quiz := &contract.Quiz{
		ProjectID: "p1",
		Questions: []contract.QuizQuestion{
			{Question: "Capital of the empire?", Choices: []string{"Rome", "Byzantium"}, Answer: "Rome"},
			{Question: "Summarize the primary theme presented in Origins.", ChapterRef: "Origins"},
		},
	}

	out := FormatQuiz(quiz)
	assert.Contains(t, out, "a)")
	assert.Contains(t, out, "b)")
	assert.Contains(t, out, "Byzantium")
	assert.Contains(t, out, "from: Origins")
	assert.Contains(t, out, "not graded")
}

func TestRenderTable_PadsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONG HEADER"}, [][]string{{"x", "y"}, {"longer cell", "z"}})

	assert.Contains(t, out, "LONG HEADER")
	assert.Contains(t, out, "longer cell")
	assert.Contains(t, out, "─")
}
