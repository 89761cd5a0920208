package service

import (
	"context"

	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/outline"
)

type ProjectService interface {
	// CreateFromOutline ingests an extractor document: it persists the
	// project, its chapter catalog and a baseline quiz, and returns them
	// together with a provisional feasibility pass.
	CreateFromOutline(ctx context.Context, p *domain.Project, doc *outline.Document) (*contract.UploadResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Chapters(ctx context.Context, projectID string) ([]domain.ChapterChunk, error)
	Delete(ctx context.Context, id string) error
}

type AssessmentService interface {
	// SubmitResponses grades the project's quiz against the given answers,
	// records the assessment and knowledge tier, and regenerates the full
	// schedule atomically with the task replacement.
	SubmitResponses(ctx context.Context, projectID string, responses []string) (*contract.ScheduleSummary, error)
	Quiz(ctx context.Context, projectID string) (*contract.Quiz, error)
	ImportQuiz(ctx context.Context, projectID string, questions []domain.QuizQuestion) error
	Latest(ctx context.Context, projectID string) (*domain.Assessment, error)
}

type ScheduleService interface {
	// Generate recomputes the project's schedule from the stored catalog and
	// tier, replacing any previously stored tasks.
	Generate(ctx context.Context, projectID string) (*contract.ScheduleSummary, error)
	// Get returns the stored schedule without regenerating tasks. Alerts are
	// recomputed from the catalog since they are not persisted.
	Get(ctx context.Context, projectID string) (*contract.ScheduleSummary, error)
}
