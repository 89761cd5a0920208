// Package quiz produces and loads baseline assessment quizzes. A quiz probes
// the learner's familiarity with the opening chapters of a document; the
// graded responses decide the knowledge tier used for pacing.
package quiz

import (
	"fmt"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/scheduler"
)

// baselineTemplates are cycled across the opening chapters to build a
// fallback quiz when no externally generated one is supplied. All of them
// are free-text prompts without a reference answer, so they surface the
// learner's self-report without affecting the graded correctness ratio.
var baselineTemplates = []string{
	"Summarize the primary theme presented in %s.",
	"Which key event is highlighted in %s?",
	"Identify one critical figure discussed in %s and their role.",
	"Explain why the concepts in %s are foundational for the rest of the book.",
	"List one cause and effect pair described in %s.",
}

// GenerateBaseline builds a quiz from the opening chapters of the catalog.
// Only the first QuizChapterWindow chapters contribute titles; templates and
// titles are cycled until QuizQuestionCount questions exist. An empty catalog
// yields an empty quiz.
func GenerateBaseline(chapters []domain.ChapterChunk, cfg scheduler.Config) []domain.QuizQuestion {
	var titles []string
	for _, c := range chapters {
		if c.Title == "" {
			continue
		}
		titles = append(titles, c.Title)
		if len(titles) == cfg.QuizChapterWindow {
			break
		}
	}
	if len(titles) == 0 {
		return nil
	}

	questions := make([]domain.QuizQuestion, 0, cfg.QuizQuestionCount)
	for i := 0; i < cfg.QuizQuestionCount; i++ {
		title := titles[i%len(titles)]
		template := baselineTemplates[i%len(baselineTemplates)]
		questions = append(questions, domain.QuizQuestion{
			Kind:       domain.QuestionFreeText,
			Question:   fmt.Sprintf(template, title),
			ChapterRef: title,
		})
	}
	return questions
}
