package main

import (
	"os"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
)

func main() {
	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.InfoLevel,
	})

	if err := rootCmd.Execute(); err != nil {
		logger.LogFizzyError("command execution failed", err, nil)
		os.Exit(1)
	}
}
