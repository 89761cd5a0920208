package repository

import (
	"context"
	"fmt"

	"github.com/aheedhul/StudyPath/internal/db"
	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/google/uuid"
)

// SQLiteQuizRepo implements QuizRepo on a SQLite connection or transaction.
type SQLiteQuizRepo struct {
	db db.DBTX
}

func NewSQLiteQuizRepo(dbtx db.DBTX) *SQLiteQuizRepo {
	return &SQLiteQuizRepo{db: dbtx}
}

func (r *SQLiteQuizRepo) ReplaceForProject(ctx context.Context, projectID string, questions []domain.QuizQuestion) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quiz_questions WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing quiz questions: %w", err)
	}

	query := `INSERT INTO quiz_questions (id, project_id, order_index, kind, question, choices, answer, chapter_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, q := range questions {
		_, err := r.db.ExecContext(ctx, query,
			uuid.New().String(), projectID, i, string(q.Kind), q.Question,
			encodeStrings(q.Choices), q.Answer, q.ChapterRef)
		if err != nil {
			return fmt.Errorf("inserting quiz question %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteQuizRepo) ListByProject(ctx context.Context, projectID string) ([]domain.QuizQuestion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, question, choices, answer, chapter_ref
		 FROM quiz_questions WHERE project_id = ? ORDER BY order_index`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing quiz questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.QuizQuestion
	for rows.Next() {
		var q domain.QuizQuestion
		var kind, choices string
		if err := rows.Scan(&kind, &q.Question, &choices, &q.Answer, &q.ChapterRef); err != nil {
			return nil, fmt.Errorf("scanning quiz question: %w", err)
		}
		q.Kind = domain.QuestionKind(kind)
		q.Choices = decodeStrings(choices)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quiz questions: %w", err)
	}
	return questions, nil
}
