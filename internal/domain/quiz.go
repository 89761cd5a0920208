package domain

// QuizQuestion is one entry of the baseline assessment quiz. The Kind tag
// makes grading exhaustive: multiple-choice questions carry fixed choices and
// a known answer; free-text questions may omit the known answer, in which
// case they are excluded from the graded denominator.
type QuizQuestion struct {
	Kind       QuestionKind
	Question   string
	Choices    []string
	Answer     string
	ChapterRef string
}

// Graded reports whether the question participates in the score denominator.
// Multiple-choice questions are always graded; free-text questions only when
// a known answer was recorded.
func (q QuizQuestion) Graded() bool {
	if q.Kind == QuestionMultipleChoice {
		return true
	}
	return q.Answer != ""
}
