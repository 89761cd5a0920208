package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, repo *SQLiteProjectRepo) *domain.Project {
	t.Helper()
	proj := testutil.NewTestProject("Seeded")
	require.NoError(t, repo.Create(context.Background(), proj))
	return proj
}

func sampleTasks(start time.Time) []domain.ScheduleTask {
	return []domain.ScheduleTask{
		{Week: 1, Type: domain.TaskLearning, AssignedChapters: []string{"Intro, with comma", "Basics"}, DueDate: start.AddDate(0, 0, 7), Status: domain.TaskStatusPending},
		{Week: 2, Type: domain.TaskLearning, AssignedChapters: []string{"Advanced"}, DueDate: start.AddDate(0, 0, 14), Status: domain.TaskStatusPending},
		{Week: 3, Type: domain.TaskTesting, AssignedChapters: []string{"Intro, with comma", "Basics", "Advanced"}, DueDate: start.AddDate(0, 0, 21), Status: domain.TaskStatusPending},
	}
}

func TestTaskRepo_ReplaceAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceForProject(ctx, proj.ID, sampleTasks(start)))

	tasks, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"Intro, with comma", "Basics"}, tasks[0].AssignedChapters,
		"titles with commas survive the round trip")
	assert.Equal(t, domain.TaskTesting, tasks[2].Type)
	assert.Equal(t, start.AddDate(0, 0, 21), tasks[2].DueDate)
}

func TestTaskRepo_ReplaceIsFullReplacement(t *testing.T) {
	db := testutil.NewTestDB(t)
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceForProject(ctx, proj.ID, sampleTasks(start)))

	replacement := []domain.ScheduleTask{
		{Week: 1, Type: domain.TaskLearning, AssignedChapters: []string{"Only"}, DueDate: start.AddDate(0, 0, 7), Status: domain.TaskStatusPending},
	}
	require.NoError(t, repo.ReplaceForProject(ctx, proj.ID, replacement))

	tasks, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1, "old tasks fully replaced")
	assert.Equal(t, []string{"Only"}, tasks[0].AssignedChapters)
}

func TestTaskRepo_ListOrdersLearningBeforeTesting(t *testing.T) {
	db := testutil.NewTestDB(t)
	proj := seedProject(t, NewSQLiteProjectRepo(db))
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	// Inserted testing-first on purpose.
	tasks := []domain.ScheduleTask{
		{Week: 2, Type: domain.TaskTesting, AssignedChapters: []string{"A"}, DueDate: start.AddDate(0, 0, 14), Status: domain.TaskStatusPending},
		{Week: 2, Type: domain.TaskLearning, AssignedChapters: []string{"A"}, DueDate: start.AddDate(0, 0, 14), Status: domain.TaskStatusPending},
		{Week: 1, Type: domain.TaskLearning, AssignedChapters: []string{"A"}, DueDate: start.AddDate(0, 0, 7), Status: domain.TaskStatusPending},
	}
	require.NoError(t, repo.ReplaceForProject(ctx, proj.ID, tasks))

	got, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Week)
	assert.Equal(t, domain.TaskLearning, got[1].Type, "learning sorts before testing in week 2")
	assert.Equal(t, domain.TaskTesting, got[2].Type)
}

func TestTaskRepo_ReplaceInsideUnitOfWorkRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	proj := seedProject(t, NewSQLiteProjectRepo(database))
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	repo := NewSQLiteTaskRepo(database)
	require.NoError(t, repo.ReplaceForProject(ctx, proj.ID, sampleTasks(start)))

	sentinel := assert.AnError
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := NewSQLiteTaskRepo(tx)
		if err := txRepo.ReplaceForProject(ctx, proj.ID, nil); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	tasks, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 3, "rollback restores the previous task set")
}
