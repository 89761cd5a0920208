package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo on a SQLite connection or
// transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

const projectColumns = `id, short_id, name, start_date, deadline_date, duration_days, granularity, tier, total_pages, status, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Name,
		p.StartDate.Format(dateLayout),
		p.DeadlineDate.Format(dateLayout),
		nullableIntToValue(p.DurationDays),
		string(p.Granularity),
		tierToValue(p.Tier),
		p.TotalPages,
		string(p.Status),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE UPPER(short_id) = UPPER(?)`, shortID)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET short_id = ?, name = ?, start_date = ?, deadline_date = ?,
		duration_days = ?, granularity = ?, tier = ?, total_pages = ?, status = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Name,
		p.StartDate.Format(dateLayout),
		p.DeadlineDate.Format(dateLayout),
		nullableIntToValue(p.DurationDays),
		string(p.Granularity),
		tierToValue(p.Tier),
		p.TotalPages,
		string(p.Status),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project not found: %s", id)
	}
	return nil
}

func tierToValue(t *domain.KnowledgeTier) interface{} {
	if t == nil {
		return nil
	}
	return string(*t)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	p, err := scanProjectFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found")
	}
	return p, err
}

func scanProjectRow(rows *sql.Rows) (*domain.Project, error) {
	return scanProjectFrom(rows)
}

func scanProjectFrom(s rowScanner) (*domain.Project, error) {
	var p domain.Project
	var startDate, deadlineDate, createdAt, updatedAt, granularity, status string
	var durationDays sql.NullInt64
	var tier sql.NullString

	err := s.Scan(&p.ID, &p.ShortID, &p.Name, &startDate, &deadlineDate,
		&durationDays, &granularity, &tier, &p.TotalPages, &status, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if p.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if p.DeadlineDate, err = time.Parse(dateLayout, deadlineDate); err != nil {
		return nil, fmt.Errorf("parsing deadline_date: %w", err)
	}
	if durationDays.Valid {
		v := int(durationDays.Int64)
		p.DurationDays = &v
	}
	p.Granularity = domain.TaskGranularity(granularity)
	if tier.Valid && tier.String != "" {
		v := domain.KnowledgeTier(tier.String)
		p.Tier = &v
	}
	p.Status = domain.ProjectStatus(status)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
