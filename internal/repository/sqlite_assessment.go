package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo on a SQLite connection or
// transaction.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssessmentRepo(dbtx db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: dbtx}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, a *domain.Assessment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assessments (id, project_id, tier, score, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.ProjectID, string(a.Tier), a.Score, a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetLatestByProject(ctx context.Context, projectID string) (*domain.Assessment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, tier, score, created_at FROM assessments
		 WHERE project_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`, projectID)

	var a domain.Assessment
	var tier, createdAt string
	err := row.Scan(&a.ID, &a.ProjectID, &tier, &a.Score, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no assessment recorded for project %s", projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}
	a.Tier = domain.KnowledgeTier(tier)
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
