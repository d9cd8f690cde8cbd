package main

import (
	"os"

	"github.com/cylin/examdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
