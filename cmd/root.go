package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/curriculum"
	"github.com/abhisek/examiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "examiz",
	Short: "Blueprint-driven assessment generation and mastery analytics",
	Long:  "Examiz assembles assessments from difficulty blueprints over a validated item bank,\nrecords submissions, and turns them into mastery diagnostics, pace-aware study\nrecommendations, and cross-subject reports.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMIZ_DB env var)")
	rootCmd.PersistentFlags().String("curriculum", "", "Path to curriculum YAML file or directory (overrides EXAMIZ_CURRICULUM env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Deadline for store operations (0 disables)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// loadCurriculum builds the curriculum tree from --curriculum, then
// EXAMIZ_CURRICULUM. Commands that need topic and competency names fail
// without one.
func loadCurriculum(cmd *cobra.Command) (*curriculum.Tree, error) {
	path, _ := cmd.Flags().GetString("curriculum")
	if path == "" {
		path = os.Getenv("EXAMIZ_CURRICULUM")
	}
	if path == "" {
		return nil, fmt.Errorf("no curriculum configured: pass --curriculum or set EXAMIZ_CURRICULUM")
	}
	return curriculum.Load(path)
}

// opCtx derives the operation context with the --timeout deadline applied.
func opCtx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	d, _ := cmd.Flags().GetDuration("timeout")
	if d <= 0 {
		return cmd.Context(), func() {}
	}
	return context.WithTimeout(cmd.Context(), d)
}

// newLogger returns a stderr text logger. Info and above by default,
// debug with --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
