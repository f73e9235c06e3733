package quizfile

import (
	"fmt"

	"github.com/abhisek/quizcraft/internal/quiz"
)

// BuildError reports which question of a document could not be built.
type BuildError struct {
	Index int
	Title string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("questions[%d] %q: %v", e.Index, e.Title, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Build turns a document into Questions with ids from f. Either every
// question is built or none is returned.
func Build(doc Document, f *quiz.Factory) ([]*quiz.Question, error) {
	out := make([]*quiz.Question, 0, len(doc.Questions))
	for i, spec := range doc.Questions {
		q, err := buildQuestion(spec, f)
		if err != nil {
			return nil, &BuildError{Index: i, Title: spec.Title, Err: err}
		}
		out = append(out, q)
	}
	return out, nil
}

func buildQuestion(spec QuestionSpec, f *quiz.Factory) (*quiz.Question, error) {
	var opts []quiz.Option
	if spec.Points != 0 {
		opts = append(opts, quiz.WithPoints(spec.Points))
	}
	if spec.MaxSelections != 0 {
		opts = append(opts, quiz.WithMaxSelections(spec.MaxSelections))
	}

	q, err := f.NewQuestion(spec.Title, opts...)
	if err != nil {
		return nil, err
	}

	var key []quiz.ChoiceID
	for _, cs := range spec.Choices {
		c, err := q.AddChoice(cs.Text, false)
		if err != nil {
			return nil, err
		}
		if cs.Correct {
			key = append(key, c.ID())
		}
	}
	q.SetCorrectChoices(key)
	return q, nil
}

// FromQuestions converts Questions back into a document. Choice ids are not
// part of the file format; they are reassigned from 0 on import.
func FromQuestions(qs []*quiz.Question) Document {
	doc := Document{Version: CurrentVersion, Questions: make([]QuestionSpec, 0, len(qs))}
	for _, q := range qs {
		spec := QuestionSpec{
			Title:         q.Title(),
			Points:        q.Points(),
			MaxSelections: q.MaxSelections(),
		}
		for _, c := range q.Choices() {
			spec.Choices = append(spec.Choices, ChoiceSpec{Text: c.Text(), Correct: c.IsCorrect()})
		}
		doc.Questions = append(doc.Questions, spec)
	}
	return doc
}
