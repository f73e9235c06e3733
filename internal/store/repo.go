package store

import (
	"context"
	"errors"

	"github.com/abhisek/quizcraft/internal/quiz"
)

// ErrNotFound is returned when a requested question does not exist.
var ErrNotFound = errors.New("question not found")

// QuestionRepo persists questions together with their choices.
type QuestionRepo interface {
	// Save inserts or replaces the question and all of its choices.
	Save(ctx context.Context, q *quiz.Question) error

	// SaveAll saves every question in one transaction: either all of them
	// are stored or none is.
	SaveAll(ctx context.Context, qs []*quiz.Question) error

	// Get loads one question. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id quiz.QuestionID) (*quiz.Question, error)

	// List returns every question in the order they were first saved.
	List(ctx context.Context) ([]*quiz.Question, error)

	// Delete removes a question and its choices. Returns ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id quiz.QuestionID) error
}
