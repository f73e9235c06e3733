package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/ui/theme"
)

// PickerOption is one selectable row of a Picker.
type PickerOption struct {
	ID   quiz.ChoiceID
	Text string
}

// Picker lets the user toggle up to Max options and submit them.
type Picker struct {
	Title     string
	Options   []PickerOption
	Max       int
	Cursor    int
	Toggled   []bool
	Submitted bool

	// Notice is a one-line message shown under the options, e.g. when a
	// toggle would exceed Max.
	Notice string
}

// NewPicker creates a Picker over the choices of q.
func NewPicker(q *quiz.Question) Picker {
	choices := q.Choices()
	opts := make([]PickerOption, 0, len(choices))
	for _, c := range choices {
		opts = append(opts, PickerOption{ID: c.ID(), Text: c.Text()})
	}
	return Picker{
		Title:   q.Title(),
		Options: opts,
		Max:     q.MaxSelections(),
		Toggled: make([]bool, len(opts)),
	}
}

// Init returns nil.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update handles navigation, toggling and submission.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if p.Submitted {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}

	p.Notice = ""
	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "space", " ", "x":
		if len(p.Options) == 0 {
			break
		}
		if !p.Toggled[p.Cursor] && p.count() >= p.Max {
			p.Notice = fmt.Sprintf("Cannot select more than %d choices", p.Max)
			break
		}
		p.Toggled[p.Cursor] = !p.Toggled[p.Cursor]
	case "enter":
		if p.Max == 1 && p.count() == 0 && len(p.Options) > 0 {
			// Single-answer questions submit the highlighted row.
			p.Toggled[p.Cursor] = true
		}
		p.Submitted = true
	}

	return p, nil
}

// Selection returns the toggled choice ids in display order.
func (p Picker) Selection() []quiz.ChoiceID {
	var ids []quiz.ChoiceID
	for i, on := range p.Toggled {
		if on {
			ids = append(ids, p.Options[i].ID)
		}
	}
	return ids
}

func (p Picker) count() int {
	n := 0
	for _, on := range p.Toggled {
		if on {
			n++
		}
	}
	return n
}

// View renders the picker.
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("select up to %d · space to toggle · enter to submit", p.Max)))
	b.WriteString("\n\n")

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Cursor && !p.Submitted {
			prefix = "▸ "
		}
		box := "[ ]"
		if p.Toggled[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", prefix, box, opt.Text)

		if i == p.Cursor && !p.Submitted {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if p.Notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(p.Notice))
		b.WriteString("\n")
	}
	return b.String()
}
