package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/google/uuid"
)

// SQLiteTaskRepo implements TaskRepo on a SQLite connection or transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

// ReplaceForProject is the idempotent upsert-replace at the storage boundary:
// the project's previous task set is removed and the regenerated one inserted
// in schedule order.
func (r *SQLiteTaskRepo) ReplaceForProject(ctx context.Context, projectID string, tasks []domain.ScheduleTask) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	query := `INSERT INTO tasks (id, project_id, week, task_type, chapters, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, task := range tasks {
		_, err := r.db.ExecContext(ctx, query,
			uuid.New().String(), projectID, task.Week, string(task.Type),
			encodeStrings(task.AssignedChapters), task.DueDate.Format(dateLayout), task.Status)
		if err != nil {
			return fmt.Errorf("inserting task %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleTask, error) {
	// Learning sorts before Testing within a week.
	rows, err := r.db.QueryContext(ctx,
		`SELECT week, task_type, chapters, due_date, status
		 FROM tasks WHERE project_id = ?
		 ORDER BY week, CASE task_type WHEN 'Learning' THEN 0 ELSE 1 END`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.ScheduleTask
	for rows.Next() {
		var task domain.ScheduleTask
		var taskType, chapters, dueDate string
		if err := rows.Scan(&task.Week, &taskType, &chapters, &dueDate, &task.Status); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		task.Type = domain.TaskType(taskType)
		task.AssignedChapters = decodeStrings(chapters)
		if task.DueDate, err = time.Parse(dateLayout, dueDate); err != nil {
			return nil, fmt.Errorf("parsing due_date: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
