package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aheedhul/StudyPath/internal/cli"
	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/repository"
	"github.com/aheedhul/StudyPath/internal/scheduler"
	"github.com/aheedhul/StudyPath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.studypath/studypath.db
	dbPath := os.Getenv("STUDYPATH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studypath", "studypath.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	chapterRepo := repository.NewSQLiteChapterRepo(database)
	quizRepo := repository.NewSQLiteQuizRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	cfg := scheduler.DefaultConfig()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("STUDYPATH_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo, chapterRepo, uow, cfg, observer),
		Assessments: service.NewAssessmentService(projectRepo, quizRepo, assessmentRepo, uow, cfg, observer),
		Schedules:   service.NewScheduleService(projectRepo, chapterRepo, taskRepo, uow, cfg, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
