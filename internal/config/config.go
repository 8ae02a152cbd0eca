// Package config contains the loader and strongly typed model for stored credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	envparse "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/autocomment/autocomment/internal/env"
)

const (
	// configDirName is the directory under the user home that holds the credentials file.
	configDirName = ".autocomment"
	// configFileName is the credentials file name inside configDirName.
	configFileName = "config.yaml"
	// DefaultGitHubDomain is the API host used when no GitHub domain is configured.
	DefaultGitHubDomain = "api.github.com"
)

// ErrMissingCredential indicates that a required credential field is empty.
var ErrMissingCredential = errors.New("missing credential")

// Credentials holds the GitHub and Jira access settings for autocomment.
// Values come from the YAML credentials file, overridden by AUTOCOMMENT_*
// environment variables and an optional dotenv file.
type Credentials struct {
	// JiraUser is the Jira account email or username.
	JiraUser string `yaml:"jiraUser" env:"AUTOCOMMENT_JIRA_USER"`
	// JiraToken is the Jira API token or password.
	JiraToken string `yaml:"jiraToken" env:"AUTOCOMMENT_JIRA_TOKEN"`
	// JiraDomain is the Jira host (e.g. example.atlassian.net).
	JiraDomain string `yaml:"jiraDomain" env:"AUTOCOMMENT_JIRA_DOMAIN"`
	// GitHubUser is the GitHub login whose pull requests are synced.
	GitHubUser string `yaml:"githubUser" env:"AUTOCOMMENT_GITHUB_USER"`
	// GitHubToken is the GitHub API token.
	GitHubToken string `yaml:"githubToken" env:"AUTOCOMMENT_GITHUB_TOKEN"`
	// GitHubDomain is the GitHub API host, api.github.com unless on Enterprise.
	GitHubDomain string `yaml:"githubDomain" env:"AUTOCOMMENT_GITHUB_DOMAIN"`
}

// DefaultPath returns the default credentials file path in the user's home
// directory, or a relative path when no home directory is available.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads credentials from path and applies environment overrides.
// A missing file is not an error: overrides alone may provide a complete
// set. The overrides map usually comes from env.FromOS, optionally merged
// with a dotenv file.
func Load(path string, overrides env.Vars) (*Credentials, error) {
	creds := &Credentials{GitHubDomain: DefaultGitHubDomain}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, creds); err != nil {
			return nil, fmt.Errorf("parse credentials file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// First run or env-only setup.
	default:
		return nil, fmt.Errorf("read credentials file %q: %w", path, err)
	}

	if err := envparse.ParseWithOptions(creds, envparse.Options{Environment: overrides}); err != nil {
		return nil, fmt.Errorf("parse credential env overrides: %w", err)
	}

	if creds.GitHubDomain == "" {
		creds.GitHubDomain = DefaultGitHubDomain
	}
	return creds, nil
}

// Save writes the credentials to path as YAML, creating the parent
// directory when needed. The file is written with owner-only permissions.
func (c *Credentials) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credentials directory %q: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials file %q: %w", path, err)
	}
	return nil
}

// Validate reports the first missing required field. It runs before any
// client is constructed so configuration problems surface without network
// activity.
func (c *Credentials) Validate() error {
	checks := []struct {
		name  string
		value string
	}{
		{"jiraUser", c.JiraUser},
		{"jiraToken", c.JiraToken},
		{"jiraDomain", c.JiraDomain},
		{"githubUser", c.GitHubUser},
		{"githubToken", c.GitHubToken},
	}
	for _, check := range checks {
		if check.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredential, check.name)
		}
	}
	return nil
}
