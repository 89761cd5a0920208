package service

import (
	"context"
	"time"

	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/outline"
	"github.com/aheedhul/StudyPath/internal/quiz"
	"github.com/aheedhul/StudyPath/internal/repository"
	"github.com/aheedhul/StudyPath/internal/scheduler"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	chapters repository.ChapterRepo
	uow      db.UnitOfWork
	cfg      scheduler.Config
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, chapters repository.ChapterRepo, uow db.UnitOfWork, cfg scheduler.Config, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		chapters: chapters,
		uow:      uow,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) CreateFromOutline(ctx context.Context, p *domain.Project, doc *outline.Document) (resp *contract.UploadResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": p.Name}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-from-outline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = p.ValidateShortID(); err != nil {
		return nil, err
	}
	if p.Granularity == "" {
		p.Granularity = domain.GranularityWeekly
	}
	if err = p.Timeline().Validate(s.cfg.MinDurationDays); err != nil {
		return nil, err
	}

	var chapters []domain.ChapterChunk
	chapters, err = outline.Convert(doc, s.cfg)
	if err != nil {
		return nil, err
	}
	fields["chapter_count"] = len(chapters)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Status = domain.ProjectNotStarted
	p.TotalPages = doc.TotalPages
	if p.TotalPages == 0 {
		for _, c := range chapters {
			if c.PageEnd > p.TotalPages {
				p.TotalPages = c.PageEnd
			}
		}
	}

	questions := quiz.GenerateBaseline(chapters, s.cfg)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txChapters := repository.NewSQLiteChapterRepo(tx)
		txQuiz := repository.NewSQLiteQuizRepo(tx)

		if err := txProjects.Create(ctx, p); err != nil {
			return err
		}
		if err := txChapters.ReplaceForProject(ctx, p.ID, chapters); err != nil {
			return err
		}
		return txQuiz.ReplaceForProject(ctx, p.ID, questions)
	})
	if err != nil {
		return nil, err
	}

	// No assessment has run yet, so the feasibility pass assumes the
	// middle tier. SubmitResponses replaces it with the graded one.
	notes := scheduler.AnalyzeFeasibility(chapters, p.Timeline().EffectiveDurationDays(), domain.TierIntermediate, s.cfg)

	return &contract.UploadResponse{
		Project:          contract.FromProject(p),
		ChapterChunks:    contract.FromChapters(chapters),
		Quiz:             contract.FromQuiz(p.ID, questions),
		FeasibilityNotes: notes,
	}, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	return s.projects.GetByShortID(ctx, shortID)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Chapters(ctx context.Context, projectID string) ([]domain.ChapterChunk, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.chapters.ListByProject(ctx, projectID)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
