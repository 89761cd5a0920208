package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aheedhul/StudyPath/internal/domain"
)

// questionRecord mirrors the wire format of externally generated quizzes.
// Field names are fixed for compatibility with existing producers. An answer
// of "freeform" (or none) marks the question as ungraded.
type questionRecord struct {
	Question   string   `json:"question"`
	Choices    []string `json:"choices,omitempty"`
	Answer     string   `json:"answer,omitempty"`
	ChapterRef string   `json:"chapter_reference,omitempty"`
}

// answerFreeform is the sentinel some producers emit instead of omitting the
// answer field entirely.
const answerFreeform = "freeform"

// LoadQuiz reads an externally generated quiz from a JSON file. Questions
// with choices become multiple-choice; the rest are free-text. Records
// without question text are rejected, as are multiple-choice records whose
// answer is not one of the choices.
func LoadQuiz(path string) ([]domain.QuizQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quiz file: %w", err)
	}
	var records []questionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing quiz file: %w", err)
	}

	questions := make([]domain.QuizQuestion, 0, len(records))
	for i, rec := range records {
		q, err := convertRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", domain.ErrValidation, i+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func convertRecord(rec questionRecord) (domain.QuizQuestion, error) {
	if strings.TrimSpace(rec.Question) == "" {
		return domain.QuizQuestion{}, fmt.Errorf("question text is required")
	}

	answer := rec.Answer
	if strings.EqualFold(strings.TrimSpace(answer), answerFreeform) {
		answer = ""
	}

	if len(rec.Choices) > 0 {
		if answer == "" {
			return domain.QuizQuestion{}, fmt.Errorf("multiple-choice question has no answer")
		}
		if !containsFold(rec.Choices, answer) {
			return domain.QuizQuestion{}, fmt.Errorf("answer %q is not among the choices", answer)
		}
		return domain.QuizQuestion{
			Kind:       domain.QuestionMultipleChoice,
			Question:   rec.Question,
			Choices:    rec.Choices,
			Answer:     answer,
			ChapterRef: rec.ChapterRef,
		}, nil
	}

	return domain.QuizQuestion{
		Kind:       domain.QuestionFreeText,
		Question:   rec.Question,
		Answer:     answer,
		ChapterRef: rec.ChapterRef,
	}, nil
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
