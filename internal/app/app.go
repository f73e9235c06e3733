package app

import (
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/ui/components"
	"github.com/abhisek/quizcraft/internal/ui/layout"
)

// ErrCancelled is returned by Take when the user quits without submitting.
var ErrCancelled = errors.New("answer cancelled")

// takeModel is the root Bubble Tea model for answering one question.
type takeModel struct {
	picker    components.Picker
	status    string
	cancelled bool

	width, height int
}

var takeHints = []layout.KeyHint{
	{Key: "↑/↓", Description: "move"},
	{Key: "space", Description: "toggle"},
	{Key: "enter", Description: "submit"},
	{Key: "esc", Description: "quit"},
}

func newTakeModel(q *quiz.Question) takeModel {
	return takeModel{
		picker: components.NewPicker(q),
		status: fmt.Sprintf("%d pt · up to %d", q.Points(), q.MaxSelections()),
	}
}

func (m takeModel) Init() tea.Cmd {
	return nil
}

func (m takeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if m.picker.Submitted {
		return m, tea.Quit
	}
	return m, cmd
}

func (m takeModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m takeModel) render() string {
	if m.width > 0 && layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}
	return layout.RenderFrame(
		layout.RenderHeader(m.status, m.width),
		m.picker.View(),
		layout.RenderFooter(takeHints),
		m.width,
	)
}

// Take runs an interactive picker for q on the given terminal streams and
// grades the submitted selection.
func Take(q *quiz.Question, in io.Reader, out io.Writer) (quiz.Result, error) {
	p := tea.NewProgram(newTakeModel(q), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return quiz.Result{}, fmt.Errorf("run picker: %w", err)
	}
	return result(q, final)
}

// result grades the state a finished program left behind.
func result(q *quiz.Question, final tea.Model) (quiz.Result, error) {
	m, ok := final.(takeModel)
	if !ok || m.cancelled || !m.picker.Submitted {
		return quiz.Result{}, ErrCancelled
	}
	return q.Grade(m.picker.Selection())
}
