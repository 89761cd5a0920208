package scheduler

import (
	"fmt"
	"strings"

	"github.com/aheedhul/StudyPath/internal/domain"
)

// Graded is the outcome of grading a quiz submission. Ratio is retained for
// diagnostics; later stages only consume the tier.
type Graded struct {
	Ratio    float64
	CorrectN int
	GradedN  int
	Tier     domain.KnowledgeTier
}

// GradeAssessment scores an ordered response list against the quiz questions
// and classifies the learner into a knowledge tier.
//
// Multiple-choice questions are graded by case-insensitive equality against
// the known answer. Free-text questions with a known answer are graded by
// case-insensitive substring containment; without one they are excluded from
// the denominator entirely. When nothing is gradable the tier defaults to
// Intermediate.
func GradeAssessment(questions []domain.QuizQuestion, responses []string, cfg Config) (Graded, error) {
	if len(responses) != len(questions) {
		return Graded{}, fmt.Errorf("%w: got %d responses for %d questions",
			domain.ErrValidation, len(responses), len(questions))
	}

	var correct, graded int
	for i, q := range questions {
		if !q.Graded() {
			continue
		}
		graded++
		if answerMatches(q, responses[i]) {
			correct++
		}
	}

	if graded == 0 {
		return Graded{Tier: domain.TierIntermediate}, nil
	}

	ratio := float64(correct) / float64(graded)
	return Graded{
		Ratio:    ratio,
		CorrectN: correct,
		GradedN:  graded,
		Tier:     ClassifyTier(ratio, cfg),
	}, nil
}

func answerMatches(q domain.QuizQuestion, response string) bool {
	want := strings.ToLower(strings.TrimSpace(q.Answer))
	got := strings.ToLower(strings.TrimSpace(response))
	switch q.Kind {
	case domain.QuestionMultipleChoice:
		return got == want
	case domain.QuestionFreeText:
		return want != "" && strings.Contains(got, want)
	default:
		return false
	}
}

// ClassifyTier maps a score ratio to a knowledge tier. The mapping is
// monotonic: a higher ratio never yields a lower tier.
func ClassifyTier(ratio float64, cfg Config) domain.KnowledgeTier {
	switch {
	case ratio < cfg.BeginnerThreshold:
		return domain.TierBeginner
	case ratio < cfg.AdvancedThreshold:
		return domain.TierIntermediate
	default:
		return domain.TierAdvanced
	}
}
