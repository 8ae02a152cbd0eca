// Package cli defines the command-line interface for autocomment.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/autocomment/autocomment/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	EnvFile    string
	LogLevel   logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		LogLevel: logging.LevelInfo,
	}

	var envDefaults rootEnv
	if err := parseEnv(&envDefaults); err != nil {
		return err
	}
	rootOpts.ConfigPath = envDefaults.ConfigPath
	rootOpts.EnvFile = envDefaults.EnvFile

	rootCmd := newRootCommand(rootOpts, envDefaults, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, envDefaults rootEnv, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autocomment",
		Short: "autocomment posts Jira comments linking back to GitHub pull requests",
		Long:  "autocomment scans a repository's pull requests for Jira ticket links and posts a back-reference comment on every ticket that does not have one yet.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	logLevelDefault := "info"
	if envDefaults.LogLevel != "" {
		logLevelDefault = envDefaults.LogLevel
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Path to the credentials file (default ~/.autocomment/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", opts.EnvFile, "Optional .env file with AUTOCOMMENT_* overrides")
	cmd.PersistentFlags().String("log-level", logLevelDefault, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSyncCommand(opts),
		newCredentialsCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
