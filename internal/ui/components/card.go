package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/ui/theme"
)

// QuestionCard renders a question with its choices inside a bordered card.
// With showKey set, correct choices are marked.
func QuestionCard(q *quiz.Question, showKey bool) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(q.Title()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %s · select up to %d",
		q.ID(), plural(q.Points(), "point"), q.MaxSelections())))
	b.WriteString("\n\n")

	choices := q.Choices()
	if len(choices) == 0 {
		b.WriteString(theme.Hint.Render("no choices yet"))
	}
	for i, c := range choices {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("[%d] %s", c.ID(), c.Text())
		switch {
		case showKey && c.IsCorrect():
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		default:
			b.WriteString(theme.Body.Render(line))
		}
	}

	return theme.Card.Render(b.String())
}

// ResultLine summarizes a graded answer.
func ResultLine(res quiz.Result, points int) string {
	if res.Correct {
		return theme.Correct.Render(fmt.Sprintf("Correct! +%s", plural(res.Awarded, "point")))
	}
	return theme.Incorrect.Render(fmt.Sprintf("Incorrect (0/%d)", points))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
