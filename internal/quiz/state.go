package quiz

import "fmt"

// State is a plain-value copy of a Question, used to persist and export it.
type State struct {
	ID            QuestionID
	Title         string
	Points        int
	MaxSelections int
	NextChoiceID  ChoiceID
	Choices       []ChoiceState
}

// ChoiceState is the plain-value form of a Choice.
type ChoiceState struct {
	ID      ChoiceID
	Text    string
	Correct bool
}

// State returns a snapshot of q that shares no memory with it.
func (q *Question) State() State {
	st := State{
		ID:            q.id,
		Title:         q.title,
		Points:        q.points,
		MaxSelections: q.maxSelections,
		NextChoiceID:  q.nextChoiceID,
		Choices:       make([]ChoiceState, 0, len(q.choices)),
	}
	for _, c := range q.choices {
		st.Choices = append(st.Choices, ChoiceState{ID: c.id, Text: c.text, Correct: c.correct})
	}
	return st
}

// Restore rebuilds a Question from a snapshot, checking the same bounds as
// construction plus the choice id invariants: ids are unique, non-negative
// and below NextChoiceID.
func Restore(st State) (*Question, error) {
	if st.ID == "" {
		return nil, &ValidationError{Field: "id", Message: "Question id cannot be empty"}
	}
	if err := checkTitle(st.Title); err != nil {
		return nil, err
	}
	if err := checkPoints(st.Points); err != nil {
		return nil, err
	}
	if err := checkMaxSelections(st.MaxSelections); err != nil {
		return nil, err
	}

	q := &Question{
		id:            st.ID,
		title:         st.Title,
		points:        st.Points,
		maxSelections: st.MaxSelections,
		nextChoiceID:  st.NextChoiceID,
	}
	seen := make(map[ChoiceID]bool, len(st.Choices))
	for i, cs := range st.Choices {
		if cs.ID < 0 || cs.ID >= st.NextChoiceID || seen[cs.ID] {
			return nil, &InvalidIDError{Ref: fmt.Sprintf("%d (choice %d of question %s)", int(cs.ID), i, st.ID)}
		}
		seen[cs.ID] = true

		c, err := NewChoice(cs.ID, cs.Text, cs.Correct)
		if err != nil {
			return nil, fmt.Errorf("choice %d: %w", cs.ID, err)
		}
		q.choices = append(q.choices, c)
	}
	return q, nil
}
