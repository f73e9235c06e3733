package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/app"
	"github.com/abhisek/quizcraft/internal/ui/components"
)

var selectCmd = &cobra.Command{
	Use:   "select <question-id> [choice-id...]",
	Short: "Check a selection against the question's selection limit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseChoiceIDs(args[1:])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q, err := e.loadQuestion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		selected, err := q.SelectChoices(ids)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "selected:", formatIDs(selected))
		return nil
	},
}

var gradeCmd = &cobra.Command{
	Use:   "grade <question-id> [choice-id...]",
	Short: "Grade a selection against the answer key",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseChoiceIDs(args[1:])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q, err := e.loadQuestion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		res, err := q.Grade(ids)
		if err != nil {
			return err
		}
		e.log.Debug().Str("question", q.ID().String()).Bool("correct", res.Correct).Msg("graded")
		fmt.Fprintln(cmd.OutOrStdout(), components.ResultLine(res, q.Points()))
		return nil
	},
}

var takeCmd = &cobra.Command{
	Use:   "take <question-id>",
	Short: "Answer a question interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q, err := e.loadQuestion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(q.Choices()) == 0 {
			return fmt.Errorf("question %s has no choices", q.ID())
		}

		res, err := app.Take(q, cmd.InOrStdin(), cmd.OutOrStdout())
		if errors.Is(err, app.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), components.ResultLine(res, q.Points()))
		return nil
	},
}
