package quiz

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// QuestionID identifies a Question. Uniqueness is guaranteed by the
// IDGenerator that produced it.
type QuestionID string

func (id QuestionID) String() string { return string(id) }

// ChoiceID identifies a Choice within its owning Question. Ids are assigned
// sequentially from 0 and never reused.
type ChoiceID int

func (id ChoiceID) String() string { return strconv.Itoa(int(id)) }

// ParseChoiceID converts an external reference (a CLI argument, a file
// field) into a ChoiceID. Only the canonical form ChoiceID.String produces
// is accepted: base-10 digits with no sign and no leading zeros. Anything
// else yields an *InvalidIDError.
func ParseChoiceID(raw string) (ChoiceID, error) {
	invalid := &InvalidIDError{Ref: strconv.Quote(raw)}
	if raw == "" || raw[0] < '0' || raw[0] > '9' || (raw[0] == '0' && len(raw) > 1) {
		return 0, invalid
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid
	}
	return ChoiceID(n), nil
}

// IDGenerator hands out Question ids. Implementations must be safe for
// concurrent use and never return the same id twice.
type IDGenerator interface {
	NextQuestionID() QuestionID
}

// CounterIDs is a monotonic in-process counter. The zero value starts at 1.
type CounterIDs struct {
	n atomic.Uint64
}

// NewCounterIDs returns a counter whose first id is start+1.
func NewCounterIDs(start uint64) *CounterIDs {
	c := &CounterIDs{}
	c.n.Store(start)
	return c
}

func (c *CounterIDs) NextQuestionID() QuestionID {
	return QuestionID(strconv.FormatUint(c.n.Add(1), 10))
}

// UUIDIDs issues random (v4) UUID strings. Use it when ids must stay unique
// across processes, e.g. for persisted questions.
type UUIDIDs struct{}

func (UUIDIDs) NextQuestionID() QuestionID {
	return QuestionID(uuid.NewString())
}
