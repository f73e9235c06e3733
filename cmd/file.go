package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/quizfile"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import questions from a YAML or JSON quiz file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := quizfile.Load(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		qs, err := quizfile.Build(doc, e.factory)
		if err != nil {
			return err
		}
		if err := e.questions.SaveAll(cmd.Context(), qs); err != nil {
			return err
		}
		for _, q := range qs {
			fmt.Fprintln(cmd.OutOrStdout(), q.ID())
		}
		e.log.Info().Str("file", args[0]).Int("questions", len(qs)).Msg("imported")
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export every question to a YAML or JSON quiz file (stdout when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format := quizfile.Format(formatFlag)
		if format != quizfile.FormatYAML && format != quizfile.FormatJSON {
			return fmt.Errorf("unknown format %q (want yaml or json)", formatFlag)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		qs, err := e.questions.List(cmd.Context())
		if err != nil {
			return err
		}
		doc := quizfile.FromQuestions(qs)

		if len(args) == 0 {
			return quizfile.Write(cmd.OutOrStdout(), doc, format)
		}

		if !cmd.Flags().Changed("format") {
			format = quizfile.FormatFromPath(args[0])
		}
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		if err := quizfile.Write(f, doc, format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close export file: %w", err)
		}
		e.log.Info().Str("file", args[0]).Int("questions", len(qs)).Msg("exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", string(quizfile.FormatYAML), "Output format: yaml or json")
}
