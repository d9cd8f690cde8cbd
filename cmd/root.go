package cmd

import (
	"github.com/cylin/examdrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "examdrill",
	Short: "Practice past exams in the terminal",
	Long:  "Examdrill — terminal widget for drilling past exam question banks, one question at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing exams.json and question-set files")
	rootCmd.PersistentFlags().String("db", "", "Path to the attempt-history database (overrides EXAMDRILL_DB env var)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
