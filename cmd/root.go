package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/config"
	"github.com/abhisek/quizcraft/internal/logger"
	"github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "quizcraft",
	Short:        "Build, store and answer multiple-choice questions",
	Long:         "quizcraft keeps a bank of validated multiple-choice questions in SQLite, edits their choices and answer keys, and lets you answer them in the terminal.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZCRAFT_DB env var)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(choiceCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles what a command needs: config, logger and an open store.
type env struct {
	log       zerolog.Logger
	store     *store.Store
	questions store.QuestionRepo
	factory   *quiz.Factory
}

// openEnv loads configuration, sets up logging and opens the store. The
// database path comes from --db, then QUIZCRAFT_DB, then the XDG default.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	flagPath, _ := cmd.Flags().GetString("db")
	dbPath, err := cfg.ResolveDBPath(flagPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug().Str("db", dbPath).Msg("store opened")

	return &env{
		log:       log,
		store:     st,
		questions: st.QuestionRepo(),
		// Persisted questions outlive the process, so ids must be globally unique.
		factory: quiz.NewFactory(quiz.UUIDIDs{}),
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// loadQuestion fetches a question by the id given on the command line.
func (e *env) loadQuestion(ctx context.Context, raw string) (*quiz.Question, error) {
	q, err := e.questions.Get(ctx, quiz.QuestionID(raw))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("question %s: %w", raw, err)
	}
	return q, err
}

// parseChoiceIDs converts command-line arguments into choice ids.
func parseChoiceIDs(args []string) ([]quiz.ChoiceID, error) {
	ids := make([]quiz.ChoiceID, 0, len(args))
	for _, a := range args {
		id, err := quiz.ParseChoiceID(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func formatIDs(ids []quiz.ChoiceID) string {
	if len(ids) == 0 {
		return "(none)"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, " ")
}
