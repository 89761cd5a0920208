package repository

import (
	"context"
	"fmt"

	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/google/uuid"
)

// SQLiteChapterRepo implements ChapterRepo on a SQLite connection or
// transaction.
type SQLiteChapterRepo struct {
	db db.DBTX
}

func NewSQLiteChapterRepo(dbtx db.DBTX) *SQLiteChapterRepo {
	return &SQLiteChapterRepo{db: dbtx}
}

// ReplaceForProject deletes the project's catalog and inserts the given one,
// preserving order via order_index. Callers needing atomicity run it inside a
// unit of work.
func (r *SQLiteChapterRepo) ReplaceForProject(ctx context.Context, projectID string, chapters []domain.ChapterChunk) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing chapters: %w", err)
	}

	query := `INSERT INTO chapters (id, project_id, order_index, title, level, page_start, page_end, estimated_min)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, c := range chapters {
		_, err := r.db.ExecContext(ctx, query,
			uuid.New().String(), projectID, i, c.Title, c.Level, c.PageStart, c.PageEnd, c.EstimatedMin)
		if err != nil {
			return fmt.Errorf("inserting chapter %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteChapterRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ChapterChunk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT title, level, page_start, page_end, estimated_min
		 FROM chapters WHERE project_id = ? ORDER BY order_index`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing chapters: %w", err)
	}
	defer rows.Close()

	var chapters []domain.ChapterChunk
	for rows.Next() {
		var c domain.ChapterChunk
		if err := rows.Scan(&c.Title, &c.Level, &c.PageStart, &c.PageEnd, &c.EstimatedMin); err != nil {
			return nil, fmt.Errorf("scanning chapter: %w", err)
		}
		chapters = append(chapters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chapters: %w", err)
	}
	return chapters, nil
}
