package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizmastery",
	Short: "Topic mastery tracking and adaptive question selection",
	Long: "quizmastery tracks per-topic quiz mastery, picks the next question set,\n" +
		"and reports progress across topics and chapters.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides QUIZMASTERY_DB env var)")
	pf.String("config", "", "Path to a YAML config file")
	pf.String("timezone", "", "IANA time zone that decides the calendar day (default UTC)")
	pf.String("registry", "", "Path to the chapter registry JSON")
	pf.String("bank", "", "Path to a question bank JSON file or directory")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Also write JSON logs to this rotated file")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(chapterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the configured path (--db flag or QUIZMASTERY_DB),
// falling back to the default XDG path.
func resolveDBPath(configured string) (string, error) {
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
