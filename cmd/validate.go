package cmd

import (
	"fmt"

	"github.com/cylin/examdrill/internal/exam"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check question-set files against the expected schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, path := range args {
			qs, err := exam.LoadQuestions(path)
			if err != nil {
				failed++
				fmt.Printf("FAIL  %s: %v\n", path, err)
				continue
			}
			fmt.Printf("OK    %s (%d questions)\n", path, len(qs))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	validateCmd.SilenceUsage = true
}
