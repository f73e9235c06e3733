package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizcraft/internal/quiz"
)

// questionRepo implements QuestionRepo with ent's SQL builders. now stamps
// created_at on first save; List orders by it.
type questionRepo struct {
	db      *sql.DB
	builder *entsql.DialectBuilder
	now     func() time.Time
}

var questionColumns = []string{
	questionID, questionTitle, questionPoints, questionMaxSelections, questionNextChoiceID,
}

var choiceColumns = []string{
	choiceQuestionID, choiceID, choiceText, choiceCorrect,
}

func (r *questionRepo) Save(ctx context.Context, q *quiz.Question) error {
	return r.SaveAll(ctx, []*quiz.Question{q})
}

func (r *questionRepo) SaveAll(ctx context.Context, qs []*quiz.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Questions saved together keep their slice order in List.
	base := r.now().UnixNano()
	for i, q := range qs {
		if err := r.saveTx(ctx, tx, q, base+int64(i)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit questions: %w", err)
	}
	return nil
}

// saveTx upserts one question and replaces its choice rows within tx.
// createdAt is only stored on first insert.
func (r *questionRepo) saveTx(ctx context.Context, tx *sql.Tx, q *quiz.Question, createdAt int64) error {
	st := q.State()

	query, args := r.builder.Insert(questionsTable).
		Columns(questionID, questionTitle, questionPoints, questionMaxSelections, questionNextChoiceID, questionCreatedAt).
		Values(string(st.ID), st.Title, st.Points, st.MaxSelections, int(st.NextChoiceID), createdAt).
		OnConflict(
			entsql.ConflictColumns(questionID),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded(questionTitle)
				u.SetExcluded(questionPoints)
				u.SetExcluded(questionMaxSelections)
				u.SetExcluded(questionNextChoiceID)
			}),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save question %s: %w", st.ID, err)
	}

	query, args = r.builder.Delete(choicesTable).
		Where(entsql.EQ(choiceQuestionID, string(st.ID))).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear choices of %s: %w", st.ID, err)
	}

	if len(st.Choices) > 0 {
		ins := r.builder.Insert(choicesTable).
			Columns(choiceQuestionID, choiceID, choicePosition, choiceText, choiceCorrect)
		for pos, c := range st.Choices {
			ins.Values(string(st.ID), int(c.ID), pos, c.Text, c.Correct)
		}
		query, args = ins.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save choices of %s: %w", st.ID, err)
		}
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id quiz.QuestionID) (*quiz.Question, error) {
	query, args := r.builder.Select(questionColumns...).
		From(entsql.Table(questionsTable)).
		Where(entsql.EQ(questionID, string(id))).
		Query()
	states, err := r.queryStates(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, ErrNotFound
	}

	query, args = r.builder.Select(choiceColumns...).
		From(entsql.Table(choicesTable)).
		Where(entsql.EQ(choiceQuestionID, string(id))).
		OrderBy(choicePosition).
		Query()
	if err := r.attachChoices(ctx, query, args, states); err != nil {
		return nil, err
	}

	qs, err := restoreAll(states)
	if err != nil {
		return nil, err
	}
	return qs[0], nil
}

func (r *questionRepo) List(ctx context.Context) ([]*quiz.Question, error) {
	query, args := r.builder.Select(questionColumns...).
		From(entsql.Table(questionsTable)).
		OrderBy(questionCreatedAt, questionID).
		Query()
	states, err := r.queryStates(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, nil
	}

	query, args = r.builder.Select(choiceColumns...).
		From(entsql.Table(choicesTable)).
		OrderBy(choiceQuestionID, choicePosition).
		Query()
	if err := r.attachChoices(ctx, query, args, states); err != nil {
		return nil, err
	}

	return restoreAll(states)
}

func (r *questionRepo) Delete(ctx context.Context, id quiz.QuestionID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query, args := r.builder.Delete(choicesTable).
		Where(entsql.EQ(choiceQuestionID, string(id))).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete choices of %s: %w", id, err)
	}

	query, args = r.builder.Delete(questionsTable).
		Where(entsql.EQ(questionID, string(id))).
		Query()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete %s: %w", id, err)
	}
	return nil
}

// queryStates runs a question query and returns the rows as states without
// choices, preserving row order.
func (r *questionRepo) queryStates(ctx context.Context, query string, args []any) ([]*quiz.State, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var states []*quiz.State
	for rows.Next() {
		var (
			st   quiz.State
			id   string
			next int
		)
		if err := rows.Scan(&id, &st.Title, &st.Points, &st.MaxSelections, &next); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		st.ID = quiz.QuestionID(id)
		st.NextChoiceID = quiz.ChoiceID(next)
		states = append(states, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return states, nil
}

// attachChoices runs a choice query and appends each row to the state of
// its question. Rows for questions not in states are skipped.
func (r *questionRepo) attachChoices(ctx context.Context, query string, args []any, states []*quiz.State) error {
	byID := make(map[quiz.QuestionID]*quiz.State, len(states))
	for _, st := range states {
		byID[st.ID] = st
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query choices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			qid string
			cs  quiz.ChoiceState
			cid int
		)
		if err := rows.Scan(&qid, &cid, &cs.Text, &cs.Correct); err != nil {
			return fmt.Errorf("scan choice: %w", err)
		}
		st, ok := byID[quiz.QuestionID(qid)]
		if !ok {
			continue
		}
		cs.ID = quiz.ChoiceID(cid)
		st.Choices = append(st.Choices, cs)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate choices: %w", err)
	}
	return nil
}

func restoreAll(states []*quiz.State) ([]*quiz.Question, error) {
	out := make([]*quiz.Question, 0, len(states))
	for _, st := range states {
		q, err := quiz.Restore(*st)
		if err != nil {
			return nil, fmt.Errorf("restore question %s: %w", st.ID, err)
		}
		out = append(out, q)
	}
	return out, nil
}
