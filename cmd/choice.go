package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/quiz"
)

var choiceCmd = &cobra.Command{
	Use:   "choice",
	Short: "Add or remove the choices of a question",
}

var choiceAddCmd = &cobra.Command{
	Use:   "add <question-id> <text>",
	Short: "Append a choice",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		return editQuestion(cmd, args[0], func(e *env, q *quiz.Question) error {
			c, err := q.AddChoice(args[1], correct)
			if err != nil {
				return err
			}
			e.log.Debug().Str("question", q.ID().String()).Int("choice", int(c.ID())).Msg("choice added")
			fmt.Fprintln(cmd.OutOrStdout(), c.ID())
			return nil
		})
	},
}

var choiceRemoveCmd = &cobra.Command{
	Use:     "rm <question-id> <choice-id>",
	Aliases: []string{"remove"},
	Short:   "Remove one choice",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := quiz.ParseChoiceID(args[1])
		if err != nil {
			return err
		}
		return editQuestion(cmd, args[0], func(e *env, q *quiz.Question) error {
			return q.RemoveChoiceByID(id)
		})
	},
}

var choiceClearCmd = &cobra.Command{
	Use:   "clear <question-id>",
	Short: "Remove every choice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editQuestion(cmd, args[0], func(e *env, q *quiz.Question) error {
			q.RemoveAllChoices()
			return nil
		})
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <question-id> [choice-id...]",
	Short: "Set the correct choices, replacing the current answer key",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseChoiceIDs(args[1:])
		if err != nil {
			return err
		}
		return editQuestion(cmd, args[0], func(e *env, q *quiz.Question) error {
			q.SetCorrectChoices(ids)
			fmt.Fprintln(cmd.OutOrStdout(), "answer key:", formatIDs(q.CorrectChoiceIDs()))
			return nil
		})
	},
}

// editQuestion loads a question, applies edit and saves it. Nothing is
// saved when edit fails.
func editQuestion(cmd *cobra.Command, rawID string, edit func(*env, *quiz.Question) error) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	q, err := e.loadQuestion(cmd.Context(), rawID)
	if err != nil {
		return err
	}
	if err := edit(e, q); err != nil {
		return err
	}
	if err := e.questions.Save(cmd.Context(), q); err != nil {
		return err
	}
	e.log.Debug().Str("question", q.ID().String()).Int("choices", len(q.Choices())).Msg("question saved")
	return nil
}

func init() {
	choiceAddCmd.Flags().Bool("correct", false, "Mark the new choice as correct")

	choiceCmd.AddCommand(choiceAddCmd)
	choiceCmd.AddCommand(choiceRemoveCmd)
	choiceCmd.AddCommand(choiceClearCmd)
}
