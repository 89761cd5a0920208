package formatter

import (
	"fmt"
	"strings"

	"github.com/aheedhul/StudyPath/internal/contract"
)

// FormatQuiz renders an assessment quiz question by question, with lettered
// choices for multiple-choice entries.
func FormatQuiz(quiz *contract.Quiz) string {
	if len(quiz.Questions) == 0 {
		return RenderBox("Assessment Quiz", Dim("No quiz stored. Import one with `quiz import`."))
	}

	var b strings.Builder
	for i, q := range quiz.Questions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(Bold(fmt.Sprintf("%d. ", i+1)) + StyleFg.Render(q.Question))
		if q.ChapterRef != "" {
			b.WriteString("\n   " + Dim("from: "+q.ChapterRef))
		}
		for j, choice := range q.Choices {
			b.WriteString(fmt.Sprintf("\n   %s %s", StyleBlue.Render(fmt.Sprintf("%c)", 'a'+j)), choice))
		}
		if len(q.Choices) == 0 && q.Answer == "" {
			b.WriteString("\n   " + Dim("(free response, not graded)"))
		}
	}
	return RenderBox("Assessment Quiz", b.String())
}
