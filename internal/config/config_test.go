package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocomment/autocomment/internal/env"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	saved := &Credentials{
		JiraUser:     "jira@example.com",
		JiraToken:    "jira-secret",
		JiraDomain:   "example.atlassian.net",
		GitHubUser:   "octocat",
		GitHubToken:  "gh-secret",
		GitHubDomain: "api.github.com",
	}
	require.NoError(t, saved.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path, env.Vars{})
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadMissingFileUsesOverridesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	creds, err := Load(path, env.Vars{
		"AUTOCOMMENT_JIRA_USER":    "jira@example.com",
		"AUTOCOMMENT_JIRA_TOKEN":   "jira-secret",
		"AUTOCOMMENT_JIRA_DOMAIN":  "example.atlassian.net",
		"AUTOCOMMENT_GITHUB_USER":  "octocat",
		"AUTOCOMMENT_GITHUB_TOKEN": "gh-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "octocat", creds.GitHubUser)
	assert.Equal(t, DefaultGitHubDomain, creds.GitHubDomain)
	assert.NoError(t, creds.Validate())
}

func TestLoadEnvOverridesFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	stored := &Credentials{
		JiraUser:   "stored@example.com",
		JiraDomain: "stored.atlassian.net",
	}
	require.NoError(t, stored.Save(path))

	creds, err := Load(path, env.Vars{"AUTOCOMMENT_JIRA_USER": "override@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "override@example.com", creds.JiraUser)
	assert.Equal(t, "stored.atlassian.net", creds.JiraDomain)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jiraUser: [unclosed"), 0o600))

	_, err := Load(path, env.Vars{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	creds := &Credentials{
		JiraUser:    "jira@example.com",
		JiraToken:   "jira-secret",
		GitHubUser:  "octocat",
		GitHubToken: "gh-secret",
	}

	err := creds.Validate()
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "jiraDomain")
}
