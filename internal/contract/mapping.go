package contract

import (
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/scheduler"
)

const dateLayout = "2006-01-02"

// FromProject maps a domain project to its wire form.
func FromProject(p *domain.Project) Project {
	out := Project{
		ID:           p.ID,
		ShortID:      p.ShortID,
		Name:         p.Name,
		StartDate:    p.StartDate.Format(dateLayout),
		DeadlineDate: p.DeadlineDate.Format(dateLayout),
		DurationDays: p.DurationDays,
		TotalPages:   p.TotalPages,
		Granularity:  string(p.Granularity),
		Status:       string(p.Status),
	}
	if p.Tier != nil {
		tier := string(*p.Tier)
		out.Tier = &tier
	}
	return out
}

// FromChapters maps the domain catalog to wire chunks, preserving order.
func FromChapters(chapters []domain.ChapterChunk) []ChapterChunk {
	out := make([]ChapterChunk, len(chapters))
	for i, c := range chapters {
		out[i] = ChapterChunk{
			Title:        c.Title,
			Level:        c.Level,
			PageStart:    c.PageStart,
			PageEnd:      c.PageEnd,
			EstimatedMin: c.EstimatedMin,
		}
	}
	return out
}

// FromQuiz maps a project's baseline questions to the wire quiz.
func FromQuiz(projectID string, questions []domain.QuizQuestion) Quiz {
	out := Quiz{ProjectID: projectID, Questions: make([]QuizQuestion, len(questions))}
	for i, q := range questions {
		out.Questions[i] = QuizQuestion{
			Question:   q.Question,
			Choices:    q.Choices,
			Answer:     q.Answer,
			ChapterRef: q.ChapterRef,
		}
	}
	return out
}

// FromTasks maps generated tasks to their wire form, preserving order.
func FromTasks(tasks []domain.ScheduleTask) []ScheduleTask {
	out := make([]ScheduleTask, len(tasks))
	for i, task := range tasks {
		out[i] = ScheduleTask{
			Week:             task.Week,
			Type:             string(task.Type),
			AssignedChapters: task.AssignedChapters,
			DueDate:          task.DueDate.Format(dateLayout),
			Status:           task.Status,
		}
	}
	return out
}

// FromSchedule assembles the full wire summary for a project's plan.
func FromSchedule(p *domain.Project, s *scheduler.Schedule) ScheduleSummary {
	return ScheduleSummary{
		Project:           FromProject(p),
		LearningWeeks:     s.LearningWeeks,
		TestingWeeks:      s.TestingWeeks,
		TotalWeeks:        s.TotalWeeks,
		FeasibilityAlerts: s.Alerts,
		Tasks:             FromTasks(s.Tasks),
	}
}
