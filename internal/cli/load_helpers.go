package cli

import (
	"fmt"

	"github.com/autocomment/autocomment/internal/config"
	"github.com/autocomment/autocomment/internal/env"
)

// resolveConfigPath picks the explicit --config path or the default
// location in the user's home directory.
func resolveConfigPath(opts *Options) string {
	if opts.ConfigPath != "" {
		return opts.ConfigPath
	}
	return config.DefaultPath()
}

// loadCredentials reads the credentials file and applies overrides from
// the process environment, with an optional --env-file taking precedence
// over both.
func loadCredentials(opts *Options) (*config.Credentials, error) {
	overrides := env.FromOS()
	if opts.EnvFile != "" {
		fileVars, err := env.LoadEnvFile(opts.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("load env file %q: %w", opts.EnvFile, err)
		}
		overrides = env.Merge(overrides, fileVars)
	}
	return config.Load(resolveConfigPath(opts), overrides)
}
