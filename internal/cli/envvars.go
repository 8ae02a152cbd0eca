package cli

import (
	envparse "github.com/caarlos0/env/v11"
)

// rootEnv defines root CLI defaults sourced from AUTOCOMMENT_* env vars.
type rootEnv struct {
	// ConfigPath is the credentials file path from AUTOCOMMENT_CONFIG.
	ConfigPath string `env:"AUTOCOMMENT_CONFIG"`
	// EnvFile is the dotenv override file from AUTOCOMMENT_ENV_FILE.
	EnvFile string `env:"AUTOCOMMENT_ENV_FILE"`
	// LogLevel is the logging level from AUTOCOMMENT_LOG_LEVEL.
	LogLevel string `env:"AUTOCOMMENT_LOG_LEVEL"`
}

// parseEnv fills target from AUTOCOMMENT_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}
