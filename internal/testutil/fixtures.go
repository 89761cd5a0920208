package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithDeadline(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DeadlineDate = d
	}
}

func WithDurationDays(days int) ProjectOption {
	return func(p *domain.Project) {
		p.DurationDays = &days
	}
}

func WithGranularity(g domain.TaskGranularity) ProjectOption {
	return func(p *domain.Project) {
		p.Granularity = g
	}
}

func WithTier(t domain.KnowledgeTier) ProjectOption {
	return func(p *domain.Project) {
		p.Tier = &t
	}
}

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestProject builds a project with a 28-day weekly timeline starting at a
// fixed date, so schedule math in tests is reproducible.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{
		ID:           uuid.New().String(),
		ShortID:      defaultShortID(name),
		Name:         name,
		StartDate:    start,
		DeadlineDate: start.AddDate(0, 0, 27),
		Granularity:  domain.GranularityWeekly,
		Status:       domain.ProjectNotStarted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestCatalog builds an ordered chapter catalog with the given per-chapter
// estimated minutes.
func NewTestCatalog(minutes ...int) []domain.ChapterChunk {
	chapters := make([]domain.ChapterChunk, len(minutes))
	page := 1
	for i, m := range minutes {
		chapters[i] = domain.ChapterChunk{
			Title:        fmt.Sprintf("Chapter %d", i+1),
			Level:        1,
			PageStart:    page,
			PageEnd:      page + 11,
			EstimatedMin: m,
		}
		page += 12
	}
	return chapters
}

// NewTestQuiz builds a gradable quiz: half multiple-choice with answer "a",
// half free-text with the answer "keyword".
func NewTestQuiz(n int) []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, n)
	for i := range questions {
		if i%2 == 0 {
			questions[i] = domain.QuizQuestion{
				Kind:     domain.QuestionMultipleChoice,
				Question: fmt.Sprintf("Question %d", i+1),
				Choices:  []string{"a", "b", "c"},
				Answer:   "a",
			}
		} else {
			questions[i] = domain.QuizQuestion{
				Kind:     domain.QuestionFreeText,
				Question: fmt.Sprintf("Question %d", i+1),
				Answer:   "keyword",
			}
		}
	}
	return questions
}
