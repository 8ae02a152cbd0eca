package main

import (
	"os"

	"github.com/autocomment/autocomment/internal/cli"
	"github.com/autocomment/autocomment/internal/logging"
)

// main is the entry point for the autocomment CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
