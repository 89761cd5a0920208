package service

import (
	"context"
	"time"

	"github.com/aheedhul/StudyPath/internal/contract"
	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/repository"
	"github.com/aheedhul/StudyPath/internal/scheduler"
)

type scheduleService struct {
	projects repository.ProjectRepo
	chapters repository.ChapterRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	cfg      scheduler.Config
	observer UseCaseObserver
}

func NewScheduleService(
	projects repository.ProjectRepo,
	chapters repository.ChapterRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	cfg scheduler.Config,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		projects: projects,
		chapters: chapters,
		tasks:    tasks,
		uow:      uow,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Generate(ctx context.Context, projectID string) (summary *contract.ScheduleSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-schedule",
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

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChapters := repository.NewSQLiteChapterRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		chapters, err := txChapters.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}

		schedule, err := scheduler.BuildSchedule(chapters, p.Timeline(), s.tier(p), s.cfg)
		if err != nil {
			return err
		}
		fields["task_count"] = len(schedule.Tasks)

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

func (s *scheduleService) Get(ctx context.Context, projectID string) (*contract.ScheduleSummary, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	chapters, err := s.chapters.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	timeline := p.Timeline()
	split := scheduler.AllocatePhases(timeline.EffectiveDurationDays(), s.cfg)
	alerts := scheduler.AnalyzeFeasibility(chapters, timeline.EffectiveDurationDays(), s.tier(p), s.cfg)
	alerts = append(alerts, split.Alerts...)

	summary := contract.ScheduleSummary{
		Project:           contract.FromProject(p),
		LearningWeeks:     split.LearningWeeks,
		TestingWeeks:      split.TestingWeeks,
		TotalWeeks:        split.TotalWeeks,
		FeasibilityAlerts: alerts,
		Tasks:             contract.FromTasks(tasks),
	}
	return &summary, nil
}

// tier resolves the pacing tier: the assessed one when present, otherwise
// the middle tier as a provisional assumption.
func (s *scheduleService) tier(p *domain.Project) domain.KnowledgeTier {
	if p.Tier != nil {
		return *p.Tier
	}
	return domain.TierIntermediate
}
