package cmd

import (
	"fmt"
	"os"

	"github.com/cylin/examdrill/internal/app"
	"github.com/cylin/examdrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the attempt-history store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	examDir, _ := cmd.Flags().GetString("dir")

	opts := app.Options{ExamDir: examDir}

	// Attempt history is best-effort: the widget itself works without it.
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Attempt history unavailable:", err)
	}

	return app.Run(opts)
}
