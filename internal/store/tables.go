package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Column names shared by the table definitions and the repositories.
const (
	questionsTable        = "questions"
	questionID            = "id"
	questionTitle         = "title"
	questionPoints        = "points"
	questionMaxSelections = "max_selections"
	questionNextChoiceID  = "next_choice_id"
	questionCreatedAt     = "created_at"

	choicesTable     = "choices"
	choiceRowID      = "id"
	choiceQuestionID = "question_id"
	choiceID         = "choice_id"
	choicePosition   = "position"
	choiceText       = "text"
	choiceCorrect    = "correct"
)

var (
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: questionID, Type: field.TypeString, Unique: true},
		{Name: questionTitle, Type: field.TypeString, Size: 800},
		{Name: questionPoints, Type: field.TypeInt, Default: 1},
		{Name: questionMaxSelections, Type: field.TypeInt, Default: 1},
		{Name: questionNextChoiceID, Type: field.TypeInt, Default: 0},
		{Name: questionCreatedAt, Type: field.TypeInt64},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       questionsTable,
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[5]},
			},
		},
	}
	// ChoicesColumns holds the columns for the "choices" table.
	ChoicesColumns = []*schema.Column{
		{Name: choiceRowID, Type: field.TypeInt, Increment: true},
		{Name: choiceQuestionID, Type: field.TypeString},
		{Name: choiceID, Type: field.TypeInt},
		{Name: choicePosition, Type: field.TypeInt},
		{Name: choiceText, Type: field.TypeString, Size: 400},
		{Name: choiceCorrect, Type: field.TypeBool, Default: false},
	}
	// ChoicesTable holds the schema information for the "choices" table.
	ChoicesTable = &schema.Table{
		Name:       choicesTable,
		Columns:    ChoicesColumns,
		PrimaryKey: []*schema.Column{ChoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "choices_questions_choices",
				Columns:    []*schema.Column{ChoicesColumns[1]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "choice_question_id_choice_id",
				Unique:  true,
				Columns: []*schema.Column{ChoicesColumns[1], ChoicesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuestionsTable,
		ChoicesTable,
	}
)

func init() {
	ChoicesTable.ForeignKeys[0].RefTable = QuestionsTable
}
