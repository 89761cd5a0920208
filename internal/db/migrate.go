package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id               TEXT PRIMARY KEY,
		short_id         TEXT NOT NULL UNIQUE,
		name             TEXT NOT NULL,
		start_date       TEXT NOT NULL,
		deadline_date    TEXT NOT NULL,
		duration_days    INTEGER,
		granularity      TEXT NOT NULL DEFAULT 'weekly'
		                 CHECK(granularity IN ('daily','weekly','monthly')),
		tier             TEXT
		                 CHECK(tier IS NULL OR tier IN ('Beginner','Intermediate','Advanced')),
		total_pages      INTEGER NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT 'NotStarted'
		                 CHECK(status IN ('NotStarted','InProgress','Completed','OnHold')),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS chapters (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		order_index   INTEGER NOT NULL,
		title         TEXT NOT NULL,
		level         INTEGER NOT NULL DEFAULT 1,
		page_start    INTEGER NOT NULL,
		page_end      INTEGER NOT NULL,
		estimated_min INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chapters_project ON chapters(project_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS quiz_questions (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		order_index INTEGER NOT NULL,
		kind        TEXT NOT NULL CHECK(kind IN ('multiple_choice','free_text')),
		question    TEXT NOT NULL,
		choices     TEXT NOT NULL DEFAULT '',
		answer      TEXT NOT NULL DEFAULT '',
		chapter_ref TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_project ON quiz_questions(project_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		week        INTEGER NOT NULL,
		task_type   TEXT NOT NULL CHECK(task_type IN ('Learning','Testing')),
		chapters    TEXT NOT NULL DEFAULT '',
		due_date    TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'Pending'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id, week)`,

	`CREATE TABLE IF NOT EXISTS assessments (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		tier       TEXT NOT NULL CHECK(tier IN ('Beginner','Intermediate','Advanced')),
		score      REAL NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_project ON assessments(project_id, created_at)`,
}
