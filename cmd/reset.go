package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the attempt-history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove %s: %w", dbPath, err)
		}
		fmt.Println("Attempt history deleted:", dbPath)
		return nil
	},
}
