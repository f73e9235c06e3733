package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/ui/components"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create an empty question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, _ := cmd.Flags().GetInt("points")
		maxSel, _ := cmd.Flags().GetInt("max-selections")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q, err := e.factory.NewQuestion(args[0], quiz.WithPoints(points), quiz.WithMaxSelections(maxSel))
		if err != nil {
			return err
		}
		if err := e.questions.Save(cmd.Context(), q); err != nil {
			return err
		}
		e.log.Info().Str("question", q.ID().String()).Msg("question created")
		fmt.Fprintln(cmd.OutOrStdout(), q.ID())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		qs, err := e.questions.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(qs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No questions yet. Add one with `quizcraft new` or `quizcraft import`.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tPOINTS\tMAX\tCHOICES\tTITLE")
		for _, q := range qs {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", q.ID(), q.Points(), q.MaxSelections(), len(q.Choices()), q.Title())
		}
		return tw.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <question-id>",
	Short: "Show a question and its choices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showKey, _ := cmd.Flags().GetBool("key")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q, err := e.loadQuestion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), components.QuestionCard(q, showKey))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <question-id>",
	Short: "Delete a question and its choices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.questions.Delete(cmd.Context(), quiz.QuestionID(args[0])); err != nil {
			return fmt.Errorf("question %s: %w", args[0], err)
		}
		e.log.Info().Str("question", args[0]).Msg("question deleted")
		return nil
	},
}

func init() {
	newCmd.Flags().Int("points", 1, "Points awarded for a correct answer (1-100)")
	newCmd.Flags().Int("max-selections", 1, "How many choices an answer may select")
	showCmd.Flags().Bool("key", false, "Mark the correct choices")
}
