package quiz

import "fmt"

// ValidationError reports a value outside the bounds accepted by a Question
// or Choice. Error returns Message unchanged so callers can show it as-is.
type ValidationError struct {
	Field   string // "title", "points", "max_selections", "text", ...
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidIDError indicates a choice id that does not resolve to a Choice of
// the Question, or a raw reference that is not a choice id at all.
type InvalidIDError struct {
	Ref string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid choice id: %s", e.Ref)
}

// SelectionLimitError indicates a selection larger than the Question allows.
type SelectionLimitError struct {
	Max       int
	Requested int
}

func (e *SelectionLimitError) Error() string {
	return fmt.Sprintf("Cannot select more than %d choices", e.Max)
}
