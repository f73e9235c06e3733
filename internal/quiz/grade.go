package quiz

// Result is the outcome of grading one selection.
type Result struct {
	Selected []ChoiceID
	Correct  bool
	Awarded  int
}

// Grade checks a selection against the answer key. The selection must
// respect the selection limit and name existing choices. Points are awarded
// only when the answer key is non-empty and the selected set equals it;
// duplicates in selected count once.
func (q *Question) Grade(selected []ChoiceID) (Result, error) {
	ids, err := q.SelectChoices(selected)
	if err != nil {
		return Result{}, err
	}

	picked := make(map[ChoiceID]bool, len(ids))
	for _, id := range ids {
		if _, err := q.choiceByID(id); err != nil {
			return Result{}, err
		}
		picked[id] = true
	}

	// A question without an answer key can never be answered correctly.
	correct := len(q.CorrectChoiceIDs()) > 0
	for _, c := range q.choices {
		if c.correct != picked[c.id] {
			correct = false
			break
		}
	}

	res := Result{Selected: ids, Correct: correct}
	if correct {
		res.Awarded = q.points
	}
	return res, nil
}
