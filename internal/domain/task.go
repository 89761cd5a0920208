package domain

import "time"

// ScheduleTask is one week's assignment in the generated plan. Week numbers
// are 1-based and span both phases.
type ScheduleTask struct {
	Week             int
	Type             TaskType
	AssignedChapters []string
	DueDate          time.Time
	Status           string
}

// Assessment records the outcome of grading a baseline quiz submission.
// It is written once per submission; re-submission replaces the tier
// atomically alongside the regenerated schedule.
type Assessment struct {
	ID        string
	ProjectID string
	Tier      KnowledgeTier
	Score     float64
	CreatedAt time.Time
}
