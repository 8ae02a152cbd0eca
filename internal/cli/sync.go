package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autocomment/autocomment/internal/engine"
	"github.com/autocomment/autocomment/internal/ghoutput"
	"github.com/autocomment/autocomment/internal/githubapi"
	"github.com/autocomment/autocomment/internal/jiraapi"
)

// newSyncCommand creates "sync", which reconciles a repository's pull
// requests against the configured Jira tracker and prints one result line
// per pull request.
func newSyncCommand(opts *Options) *cobra.Command {
	var (
		repo   string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync Jira comments with GitHub pull requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			creds, err := loadCredentials(opts)
			if err != nil {
				return err
			}
			if err := creds.Validate(); err != nil {
				return err
			}

			source, err := githubapi.NewClient(logger, creds)
			if err != nil {
				return err
			}
			issues, err := jiraapi.NewClient(logger, creds)
			if err != nil {
				return err
			}

			lines, err := engine.New(logger, source, issues).SyncComments(cmd.Context(), repo, filter)
			if err != nil {
				return err
			}

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			writeActionOutputs(logger, lines)
			return nil
		},
	}

	cmd.Flags().StringVarP(&repo, "repo", "r", "", "Full name of the repository to scan (owner/repo)")
	_ = cmd.MarkFlagRequired("repo")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filters to pass to GitHub when listing pull requests, e.g. state=open")

	return cmd
}

// writeActionOutputs publishes sync counters as GitHub Actions step
// outputs when running inside a workflow. Best effort: a write failure is
// logged and does not change the command result.
func writeActionOutputs(logger *slog.Logger, lines []string) {
	posted := 0
	for _, line := range lines {
		if strings.HasPrefix(line, engine.PostedPrefix) {
			posted++
		}
	}

	outputs := map[string]string{
		"processed": strconv.Itoa(len(lines)),
		"posted":    strconv.Itoa(posted),
		"skipped":   strconv.Itoa(len(lines) - posted),
	}
	if err := ghoutput.Write(outputs); err != nil {
		logger.Warn("write github outputs", "error", err)
	}
}
