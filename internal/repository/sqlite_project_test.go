package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("World History", testutil.WithGranularity(domain.GranularityDaily))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "World History", fetched.Name)
	assert.Equal(t, domain.GranularityDaily, fetched.Granularity)
	assert.Equal(t, domain.ProjectNotStarted, fetched.Status)
	assert.Nil(t, fetched.Tier, "tier unset until assessment")
	assert.Equal(t, proj.StartDate.Format("2006-01-02"), fetched.StartDate.Format("2006-01-02"))
}

func TestProjectRepo_GetByShortID_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Biology", testutil.WithShortID("BIO01"))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByShortID(ctx, "bio01")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectRepo_UpdatePersistsTierAndStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Chemistry", testutil.WithDurationDays(35))
	require.NoError(t, repo.Create(ctx, proj))

	tier := domain.TierAdvanced
	proj.Tier = &tier
	proj.Status = domain.ProjectInProgress
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Tier)
	assert.Equal(t, domain.TierAdvanced, *fetched.Tier)
	assert.Equal(t, domain.ProjectInProgress, fetched.Status)
	require.NotNil(t, fetched.DurationDays)
	assert.Equal(t, 35, *fetched.DurationDays)
}

func TestProjectRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	older := testutil.NewTestProject("First")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := testutil.NewTestProject("Second")
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Name, "ordered by creation time")
}

func TestProjectRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	chapters := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Physics")
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, chapters.ReplaceForProject(ctx, proj.ID, testutil.NewTestCatalog(60, 90)))

	require.NoError(t, projects.Delete(ctx, proj.ID))

	remaining, err := chapters.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "chapters cascade with the project")
}

func TestProjectRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	err := repo.Delete(context.Background(), "missing")
	assert.Error(t, err)
}
