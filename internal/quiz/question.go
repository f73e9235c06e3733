package quiz

// Question is the aggregate root of the model: it owns an ordered list of
// Choices and enforces the title, points and selection bounds.
//
// A Question is not safe for concurrent mutation. Callers sharing one across
// goroutines must hold a single lock around every method call.
type Question struct {
	id            QuestionID
	title         string
	points        int
	maxSelections int
	choices       []*Choice

	// nextChoiceID is the id handed to the next AddChoice. It only grows, so
	// ids of removed choices are never reissued.
	nextChoiceID ChoiceID
}

// Option customizes a Question at construction.
type Option func(*settings)

type settings struct {
	points        int
	maxSelections int
}

// WithPoints sets the score awarded for a correct answer. Default 1.
func WithPoints(points int) Option {
	return func(s *settings) { s.points = points }
}

// WithMaxSelections sets how many choices one selection may contain. Default 1.
func WithMaxSelections(n int) Option {
	return func(s *settings) { s.maxSelections = n }
}

// Factory creates Questions with ids drawn from an injected IDGenerator.
type Factory struct {
	ids IDGenerator
}

// NewFactory returns a Factory backed by ids.
func NewFactory(ids IDGenerator) *Factory {
	return &Factory{ids: ids}
}

// defaultFactory backs the package-level NewQuestion for the lifetime of the
// process.
var defaultFactory = NewFactory(&CounterIDs{})

// NewQuestion creates a Question using the process-wide id counter.
func NewQuestion(title string, opts ...Option) (*Question, error) {
	return defaultFactory.NewQuestion(title, opts...)
}

// NewQuestion validates the inputs and returns a Question with a fresh id
// and no choices. No id is consumed when validation fails.
func (f *Factory) NewQuestion(title string, opts ...Option) (*Question, error) {
	s := settings{points: 1, maxSelections: 1}
	for _, opt := range opts {
		opt(&s)
	}

	if err := checkTitle(title); err != nil {
		return nil, err
	}
	if err := checkPoints(s.points); err != nil {
		return nil, err
	}
	if err := checkMaxSelections(s.maxSelections); err != nil {
		return nil, err
	}

	return &Question{
		id:            f.ids.NextQuestionID(),
		title:         title,
		points:        s.points,
		maxSelections: s.maxSelections,
	}, nil
}

func (q *Question) ID() QuestionID     { return q.id }
func (q *Question) Title() string      { return q.title }
func (q *Question) Points() int        { return q.points }
func (q *Question) MaxSelections() int { return q.maxSelections }

// Choices returns the choices in insertion order. The slice is a copy; the
// Choices themselves are shared with the Question.
func (q *Question) Choices() []*Choice {
	out := make([]*Choice, len(q.choices))
	copy(out, q.choices)
	return out
}

// AddChoice appends a new Choice and returns it.
func (q *Question) AddChoice(text string, correct bool) (*Choice, error) {
	c, err := NewChoice(q.nextChoiceID, text, correct)
	if err != nil {
		return nil, err
	}
	q.nextChoiceID++
	q.choices = append(q.choices, c)
	return c, nil
}

// RemoveChoiceByID removes the Choice with the given id. Remaining choices
// keep their ids and relative order.
func (q *Question) RemoveChoiceByID(id ChoiceID) error {
	i := q.indexOf(id)
	if i < 0 {
		return &InvalidIDError{Ref: id.String()}
	}
	q.choices = append(q.choices[:i], q.choices[i+1:]...)
	return nil
}

// RemoveAllChoices drops every choice. Choice ids keep counting from where
// they were.
func (q *Question) RemoveAllChoices() {
	q.choices = nil
}

// SelectChoices checks a selection against the limit and returns it
// unchanged. Whether the ids exist is not checked here.
func (q *Question) SelectChoices(ids []ChoiceID) ([]ChoiceID, error) {
	if len(ids) > q.maxSelections {
		return nil, &SelectionLimitError{Max: q.maxSelections, Requested: len(ids)}
	}
	return ids, nil
}

// SetCorrectChoices replaces the answer key: choices listed in ids become
// correct, all others incorrect. Ids matching no choice are ignored.
func (q *Question) SetCorrectChoices(ids []ChoiceID) {
	want := make(map[ChoiceID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, c := range q.choices {
		c.correct = want[c.id]
	}
}

// CorrectChoiceIDs returns the ids of the correct choices in choice order.
func (q *Question) CorrectChoiceIDs() []ChoiceID {
	var ids []ChoiceID
	for _, c := range q.choices {
		if c.correct {
			ids = append(ids, c.id)
		}
	}
	return ids
}

func (q *Question) choiceByID(id ChoiceID) (*Choice, error) {
	i := q.indexOf(id)
	if i < 0 {
		return nil, &InvalidIDError{Ref: id.String()}
	}
	return q.choices[i], nil
}

func (q *Question) indexOf(id ChoiceID) int {
	for i, c := range q.choices {
		if c.id == id {
			return i
		}
	}
	return -1
}
