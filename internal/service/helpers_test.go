package service

import (
	"database/sql"
	"testing"

	"github.com/aheedhul/StudyPath/internal/outline"
	"github.com/aheedhul/StudyPath/internal/repository"
	"github.com/aheedhul/StudyPath/internal/scheduler"
	"github.com/aheedhul/StudyPath/internal/testutil"
)

type testServices struct {
	db          *sql.DB
	cfg         scheduler.Config
	projects    ProjectService
	assessments AssessmentService
	schedules   ScheduleService

	projectRepo    repository.ProjectRepo
	chapterRepo    repository.ChapterRepo
	quizRepo       repository.QuizRepo
	taskRepo       repository.TaskRepo
	assessmentRepo repository.AssessmentRepo
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	cfg := scheduler.DefaultConfig()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	chapterRepo := repository.NewSQLiteChapterRepo(database)
	quizRepo := repository.NewSQLiteQuizRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)

	return &testServices{
		db:             database,
		cfg:            cfg,
		projects:       NewProjectService(projectRepo, chapterRepo, uow, cfg),
		assessments:    NewAssessmentService(projectRepo, quizRepo, assessmentRepo, uow, cfg),
		schedules:      NewScheduleService(projectRepo, chapterRepo, taskRepo, uow, cfg),
		projectRepo:    projectRepo,
		chapterRepo:    chapterRepo,
		quizRepo:       quizRepo,
		taskRepo:       taskRepo,
		assessmentRepo: assessmentRepo,
	}
}

// threeChapterOutline matches a four-week project: three chapters that fit
// three learning weeks one-to-one under the default pace.
func threeChapterOutline() *outline.Document {
	return &outline.Document{
		TotalPages: 90,
		Chapters: []outline.ChapterRecord{
			{Title: "Origins", Level: 1, PageStart: 1, PageEnd: 30, EstimatedMin: 120},
			{Title: "Expansion", Level: 1, PageStart: 31, PageEnd: 60, EstimatedMin: 180},
			{Title: "Decline", Level: 1, PageStart: 61, PageEnd: 90, EstimatedMin: 90},
		},
	}
}
