package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizcraft/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion(t *testing.T, maxSel int, texts ...string) *quiz.Question {
	t.Helper()
	q, err := quiz.NewFactory(&quiz.CounterIDs{}).NewQuestion("Pick", quiz.WithMaxSelections(maxSel))
	require.NoError(t, err)
	for _, text := range texts {
		_, err := q.AddChoice(text, false)
		require.NoError(t, err)
	}
	return q
}

func press(p Picker, msgs ...tea.Msg) Picker {
	for _, msg := range msgs {
		p, _ = p.Update(msg)
	}
	return p
}

func TestPicker_ToggleAndSubmit(t *testing.T) {
	q := testQuestion(t, 2, "a", "b", "c")
	require.NoError(t, q.RemoveChoiceByID(0))
	_, err := q.AddChoice("d", false)
	require.NoError(t, err)

	p := press(NewPicker(q),
		specialKey(tea.KeySpace),
		keyPress('j'),
		keyPress('j'),
		specialKey(tea.KeySpace),
		specialKey(tea.KeyEnter),
	)

	assert.True(t, p.Submitted)
	assert.Equal(t, []quiz.ChoiceID{1, 3}, p.Selection())
}

func TestPicker_RefusesPastMax(t *testing.T) {
	q := testQuestion(t, 1, "a", "b")
	p := press(NewPicker(q),
		specialKey(tea.KeySpace),
		specialKey(tea.KeyDown),
		specialKey(tea.KeySpace),
	)

	assert.Equal(t, []quiz.ChoiceID{0}, p.Selection())
	assert.Equal(t, "Cannot select more than 1 choices", p.Notice)
	assert.Contains(t, p.View(), "Cannot select more than 1 choices")

	// Untoggling is always allowed and clears the notice.
	p = press(p, specialKey(tea.KeyUp), specialKey(tea.KeySpace))
	assert.Empty(t, p.Selection())
	assert.Empty(t, p.Notice)
}

func TestPicker_EnterPicksHighlightedForSingleAnswer(t *testing.T) {
	q := testQuestion(t, 1, "a", "b")
	p := press(NewPicker(q), keyPress('j'), specialKey(tea.KeyEnter))
	assert.Equal(t, []quiz.ChoiceID{1}, p.Selection())
}

func TestPicker_CursorBounds(t *testing.T) {
	q := testQuestion(t, 1, "a", "b")
	p := press(NewPicker(q), keyPress('k'), keyPress('k'))
	assert.Equal(t, 0, p.Cursor)
	p = press(p, keyPress('j'), keyPress('j'), keyPress('j'))
	assert.Equal(t, 1, p.Cursor)
}

func TestPicker_IgnoresInputAfterSubmit(t *testing.T) {
	q := testQuestion(t, 2, "a", "b")
	p := press(NewPicker(q), specialKey(tea.KeyEnter), specialKey(tea.KeySpace))
	assert.True(t, p.Submitted)
	assert.Empty(t, p.Selection())
}

func TestPicker_NoOptions(t *testing.T) {
	q := testQuestion(t, 1)
	p := press(NewPicker(q), specialKey(tea.KeySpace), specialKey(tea.KeyEnter))
	assert.True(t, p.Submitted)
	assert.Empty(t, p.Selection())
}

func TestPicker_View(t *testing.T) {
	q := testQuestion(t, 2, "alpha", "beta")
	p := press(NewPicker(q), specialKey(tea.KeySpace))
	view := p.View()
	assert.Contains(t, view, "Pick")
	assert.Contains(t, view, "[x] alpha")
	assert.Contains(t, view, "[ ] beta")
	assert.True(t, strings.Contains(view, "select up to 2"))
}
