package quiz

// Choice is one answer option of a Question. Its id and text are fixed at
// creation; correctness is changed only through Question.SetCorrectChoices.
type Choice struct {
	id      ChoiceID
	text    string
	correct bool
}

// NewChoice validates text and returns a detached Choice. Choices that belong
// to a Question are created with Question.AddChoice.
func NewChoice(id ChoiceID, text string, correct bool) (*Choice, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	return &Choice{id: id, text: text, correct: correct}, nil
}

func (c *Choice) ID() ChoiceID    { return c.id }
func (c *Choice) Text() string    { return c.text }
func (c *Choice) IsCorrect() bool { return c.correct }
