package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRestoreRoundTrip(t *testing.T) {
	q := newTestQuestion(t, WithPoints(7), WithMaxSelections(2))
	_, _ = q.AddChoice("a", true)
	_, _ = q.AddChoice("b", false)
	_, _ = q.AddChoice("c", true)
	require.NoError(t, q.RemoveChoiceByID(1))

	restored, err := Restore(q.State())
	require.NoError(t, err)
	assert.Equal(t, q.State(), restored.State())

	// The next choice id survives the round trip.
	c, err := restored.AddChoice("d", false)
	require.NoError(t, err)
	assert.Equal(t, ChoiceID(3), c.ID())
}

func TestState_IsDetached(t *testing.T) {
	q := newTestQuestion(t)
	_, _ = q.AddChoice("a", false)

	st := q.State()
	st.Choices[0].Correct = true
	assert.False(t, q.Choices()[0].IsCorrect())
}

func TestRestore_Rejects(t *testing.T) {
	valid := func() State {
		return State{
			ID:            "q-1",
			Title:         "t",
			Points:        1,
			MaxSelections: 1,
			NextChoiceID:  2,
			Choices:       []ChoiceState{{ID: 0, Text: "a"}, {ID: 1, Text: "b"}},
		}
	}
	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"empty id", func(s *State) { s.ID = "" }},
		{"empty title", func(s *State) { s.Title = "" }},
		{"points", func(s *State) { s.Points = 0 }},
		{"max selections", func(s *State) { s.MaxSelections = 0 }},
		{"duplicate choice id", func(s *State) { s.Choices[1].ID = 0 }},
		{"id at next", func(s *State) { s.Choices[1].ID = 2 }},
		{"negative id", func(s *State) { s.Choices[0].ID = -1 }},
		{"empty text", func(s *State) { s.Choices[0].Text = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := valid()
			tt.mutate(&st)
			_, err := Restore(st)
			assert.Error(t, err)
		})
	}

	_, err := Restore(valid())
	assert.NoError(t, err)
}
