package scheduler

import (
	"time"

	"github.com/aheedhul/StudyPath/internal/domain"
)

// ReviewPrefix marks filler learning weeks that re-read an already assigned
// chapter. They appear when the timeline grants more learning weeks than the
// catalog has chapters; the chapter itself still belongs to exactly one
// regular learning task.
const ReviewPrefix = "Review: "

// GenerateTasks assigns chapters to learning weeks and builds the cumulative
// testing tasks. Chapter order is preserved and no chapter is split across
// weeks.
func GenerateTasks(chapters []domain.ChapterChunk, timeline domain.Timeline, split PhaseSplit, tier domain.KnowledgeTier, cfg Config) []domain.ScheduleTask {
	tasks := generateLearning(chapters, timeline, split, tier, cfg)
	tasks = append(tasks, generateTesting(chapters, timeline, split)...)
	return tasks
}

// generateLearning distributes chapters across learning weeks with a greedy
// balanced partition: a week accumulates chapters until adding the next one
// would overshoot the per-week effort target by more than half of that
// chapter's effort. The final week absorbs any remainder.
func generateLearning(chapters []domain.ChapterChunk, timeline domain.Timeline, split PhaseSplit, tier domain.KnowledgeTier, cfg Config) []domain.ScheduleTask {
	weeks := split.LearningWeeks
	if weeks < 1 || len(chapters) == 0 {
		return nil
	}

	mult := cfg.PaceFor(tier).Multiplier
	var totalEffort float64
	for _, c := range chapters {
		totalEffort += float64(c.EstimatedMin) * mult
	}
	target := totalEffort / float64(weeks)

	groups := make([][]string, 0, weeks)
	current := []string{}
	var currentEffort float64

	for idx, c := range chapters {
		effort := float64(c.EstimatedMin) * mult
		remaining := len(chapters) - idx // chapters left, including this one
		weeksLeft := weeks - len(groups) // weeks left, including the open one

		if len(current) > 0 {
			mustClose := remaining <= weeksLeft-1
			overshoot := weeksLeft > 1 && currentEffort+effort-target > effort/2
			if mustClose || overshoot {
				groups = append(groups, current)
				current = []string{}
				currentEffort = 0
			}
		}

		current = append(current, c.Title)
		currentEffort += effort
	}
	groups = append(groups, current)

	tasks := make([]domain.ScheduleTask, 0, weeks)
	for i, titles := range groups {
		tasks = append(tasks, domain.ScheduleTask{
			Week:             i + 1,
			Type:             domain.TaskLearning,
			AssignedChapters: titles,
			DueDate:          dueDate(i+1, timeline),
			Status:           domain.TaskStatusPending,
		})
	}

	// Fewer chapters than weeks: trailing weeks review the last chapter
	// rather than being dropped.
	lastTitle := chapters[len(chapters)-1].Title
	for w := len(groups) + 1; w <= weeks; w++ {
		tasks = append(tasks, domain.ScheduleTask{
			Week:             w,
			Type:             domain.TaskLearning,
			AssignedChapters: []string{ReviewPrefix + lastTitle},
			DueDate:          dueDate(w, timeline),
			Status:           domain.TaskStatusPending,
		})
	}

	return tasks
}

// generateTesting builds one cumulative-coverage task per testing week.
// Week i covers the first ceil(n*i/testingWeeks) chapters, so coverage is
// non-decreasing and the final week spans the whole catalog.
func generateTesting(chapters []domain.ChapterChunk, timeline domain.Timeline, split PhaseSplit) []domain.ScheduleTask {
	if split.TestingWeeks < 1 {
		return nil
	}

	n := len(chapters)
	tasks := make([]domain.ScheduleTask, 0, split.TestingWeeks)
	for i := 1; i <= split.TestingWeeks; i++ {
		covered := 0
		if n > 0 {
			covered = (n*i + split.TestingWeeks - 1) / split.TestingWeeks
		}
		titles := make([]string, covered)
		for j := 0; j < covered; j++ {
			titles[j] = chapters[j].Title
		}

		week := split.LearningWeeks + i
		tasks = append(tasks, domain.ScheduleTask{
			Week:             week,
			Type:             domain.TaskTesting,
			AssignedChapters: titles,
			DueDate:          dueDate(week, timeline),
			Status:           domain.TaskStatusPending,
		})
	}
	return tasks
}

// dueDate computes a task's due date from its week number and the timeline's
// granularity. Weekly anchors to the end of the week's 7-day window; daily
// starts from the window's final day and shifts back by a per-week offset so
// due dates walk through the weekdays without leaving the window; monthly
// coalesces to the last day of the anchor's calendar month. All results are
// clamped to the deadline.
func dueDate(week int, timeline domain.Timeline) time.Time {
	anchor := timeline.StartDate.AddDate(0, 0, week*7)

	switch timeline.Granularity {
	case domain.GranularityDaily:
		anchor = anchor.AddDate(0, 0, -1-((week*3)%7))
	case domain.GranularityMonthly:
		anchor = endOfMonth(anchor)
	}

	if anchor.After(timeline.DeadlineDate) {
		return timeline.DeadlineDate
	}
	return anchor
}

func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
