package service

import (
	"context"
	"time"

	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/repository"
	"github.com/aheedhul/StudyPath/internal/scheduler"
	"github.com/google/uuid"
)

type assessmentService struct {
	projects    repository.ProjectRepo
	quizzes     repository.QuizRepo
	assessments repository.AssessmentRepo
	uow         db.UnitOfWork
	cfg         scheduler.Config
	observer    UseCaseObserver
}

func NewAssessmentService(
	projects repository.ProjectRepo,
	quizzes repository.QuizRepo,
	assessments repository.AssessmentRepo,
	uow db.UnitOfWork,
	cfg scheduler.Config,
	observers ...UseCaseObserver,
) AssessmentService {
	return &assessmentService{
		projects:    projects,
		quizzes:     quizzes,
		assessments: assessments,
		uow:         uow,
		cfg:         cfg,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// SubmitResponses grades the stored quiz, then persists the assessment, the
// project's tier, and the regenerated schedule in one transaction. A failed
// schedule build leaves the previous tier and tasks untouched.
func (s *assessmentService) SubmitResponses(ctx context.Context, projectID string, responses []string) (summary *contract.ScheduleSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID, "response_count": len(responses)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-assessment",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var p *domain.Project
	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var questions []domain.QuizQuestion
	questions, err = s.quizzes.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var graded scheduler.Graded
	graded, err = scheduler.GradeAssessment(questions, responses, s.cfg)
	if err != nil {
		return nil, err
	}
	fields["tier"] = string(graded.Tier)
	fields["score"] = graded.Ratio

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txChapters := repository.NewSQLiteChapterRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txAssessments := repository.NewSQLiteAssessmentRepo(tx)

		chapters, err := txChapters.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}

		schedule, err := scheduler.BuildSchedule(chapters, p.Timeline(), graded.Tier, s.cfg)
		if err != nil {
			return err
		}

		tier := graded.Tier
		p.Tier = &tier
		p.Status = domain.ProjectInProgress
		p.UpdatedAt = time.Now().UTC()
		if err := txProjects.Update(ctx, p); err != nil {
			return err
		}

		if err := txAssessments.Create(ctx, &domain.Assessment{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Tier:      graded.Tier,
			Score:     graded.Ratio,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		if err := txTasks.ReplaceForProject(ctx, projectID, schedule.Tasks); err != nil {
			return err
		}

		out := contract.FromSchedule(p, schedule)
		summary = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *assessmentService) Quiz(ctx context.Context, projectID string) (*contract.Quiz, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	questions, err := s.quizzes.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	quiz := contract.FromQuiz(projectID, questions)
	return &quiz, nil
}

func (s *assessmentService) ImportQuiz(ctx context.Context, projectID string, questions []domain.QuizQuestion) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.quizzes.ReplaceForProject(ctx, projectID, questions)
}

func (s *assessmentService) Latest(ctx context.Context, projectID string) (*domain.Assessment, error) {
	return s.assessments.GetLatestByProject(ctx, projectID)
}
