package repository

import (
	"context"

	"github.com/aheedhul/StudyPath/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// ChapterRepo stores the ordered chapter catalog. The catalog is written once
// per upload and read-only afterwards; ReplaceForProject is the only write.
type ChapterRepo interface {
	ReplaceForProject(ctx context.Context, projectID string, chapters []domain.ChapterChunk) error
	ListByProject(ctx context.Context, projectID string) ([]domain.ChapterChunk, error)
}

// QuizRepo stores the baseline assessment quiz for a project.
type QuizRepo interface {
	ReplaceForProject(ctx context.Context, projectID string, questions []domain.QuizQuestion) error
	ListByProject(ctx context.Context, projectID string) ([]domain.QuizQuestion, error)
}

// TaskRepo stores generated schedule tasks. Regeneration atomically replaces
// the project's whole task set; there is no per-task update path in the core.
type TaskRepo interface {
	ReplaceForProject(ctx context.Context, projectID string, tasks []domain.ScheduleTask) error
	ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleTask, error)
}

type AssessmentRepo interface {
	Create(ctx context.Context, a *domain.Assessment) error
	GetLatestByProject(ctx context.Context, projectID string) (*domain.Assessment, error)
}
