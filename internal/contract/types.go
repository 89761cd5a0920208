// Package contract defines the JSON wire types exchanged with external
// consumers (exports, other frontends). Field names are fixed; renaming one
// breaks existing producers and consumers.
package contract

// ChapterChunk is one catalog entry on the wire.
type ChapterChunk struct {
	Title        string `json:"title"`
	Level        int    `json:"level"`
	PageStart    int    `json:"page_start"`
	PageEnd      int    `json:"page_end"`
	EstimatedMin int    `json:"estimated_minutes"`
}

// Project is the project read model.
type Project struct {
	ID           string  `json:"id"`
	ShortID      string  `json:"short_id,omitempty"`
	Name         string  `json:"name"`
	StartDate    string  `json:"start_date"`
	DeadlineDate string  `json:"deadline_date"`
	DurationDays *int    `json:"duration_days"`
	Tier         *string `json:"tier"`
	TotalPages   int     `json:"total_pages"`
	Granularity  string  `json:"task_granularity"`
	Status       string  `json:"status"`
}

// QuizQuestion is one assessment question on the wire. Choices are present
// only for multiple-choice questions; a missing answer marks the question as
// ungraded.
type QuizQuestion struct {
	Question   string   `json:"question"`
	Choices    []string `json:"choices,omitempty"`
	Answer     string   `json:"answer,omitempty"`
	ChapterRef string   `json:"chapter_reference,omitempty"`
}

// Quiz bundles the baseline questions for one project.
type Quiz struct {
	ProjectID string         `json:"project_id"`
	Questions []QuizQuestion `json:"questions"`
}

// UploadResponse is returned after outline ingestion: the created project,
// its chapter catalog, the baseline quiz, and a provisional feasibility pass.
type UploadResponse struct {
	Project          Project        `json:"project"`
	ChapterChunks    []ChapterChunk `json:"chapter_chunks"`
	Quiz             Quiz           `json:"quiz"`
	FeasibilityNotes []string       `json:"feasibility_notes"`
}

// ScheduleTask is one generated task on the wire.
type ScheduleTask struct {
	Week             int      `json:"week"`
	Type             string   `json:"task_type"`
	AssignedChapters []string `json:"assigned_chapters"`
	DueDate          string   `json:"due_date"`
	Status           string   `json:"status"`
}

// ScheduleSummary is the full generated plan for one project.
type ScheduleSummary struct {
	Project           Project        `json:"project"`
	LearningWeeks     int            `json:"learning_phase_weeks"`
	TestingWeeks      int            `json:"testing_phase_weeks"`
	TotalWeeks        int            `json:"total_weeks"`
	FeasibilityAlerts []string       `json:"feasibility_alerts"`
	Tasks             []ScheduleTask `json:"tasks"`
}
