package cmd

import (
	"fmt"

	"github.com/cylin/examdrill/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past submitted attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		attempts, err := st.EventRepo().RecentAttempts(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %-24s  %7s  %5s  %5s  %5s\n",
			"WHEN", "EXAM", "SCORE", "OK", "WRONG", "SKIP")
		for _, a := range attempts {
			fmt.Printf("%-20s  %-24s  %7.1f  %5d  %5d  %5d\n",
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(a.ExamName, 24),
				a.Score, a.Correct, a.Wrong, a.Unanswered)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
