package cli

import (
	"github.com/spf13/cobra"

	"github.com/autocomment/autocomment/internal/config"
	"github.com/autocomment/autocomment/internal/env"
)

// newCredentialsCommand creates "credentials", which updates any subset of
// the stored GitHub and Jira settings, creating the credentials file when
// it does not exist yet.
func newCredentialsCommand(opts *Options) *cobra.Command {
	var (
		jiraUser     string
		jiraToken    string
		jiraDomain   string
		githubUser   string
		githubToken  string
		githubDomain string
	)

	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Update stored GitHub or Jira credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			path := resolveConfigPath(opts)

			// Environment overrides are deliberately not applied here:
			// this command edits the stored file, and baking transient
			// env values into it would be surprising.
			creds, err := config.Load(path, env.Vars{})
			if err != nil {
				return err
			}

			flagValues := map[string]*string{
				"jira-user":     &jiraUser,
				"jira-token":    &jiraToken,
				"jira-domain":   &jiraDomain,
				"github-user":   &githubUser,
				"github-token":  &githubToken,
				"github-domain": &githubDomain,
			}
			targets := map[string]*string{
				"jira-user":     &creds.JiraUser,
				"jira-token":    &creds.JiraToken,
				"jira-domain":   &creds.JiraDomain,
				"github-user":   &creds.GitHubUser,
				"github-token":  &creds.GitHubToken,
				"github-domain": &creds.GitHubDomain,
			}
			for name, value := range flagValues {
				if cmd.Flags().Changed(name) {
					*targets[name] = *value
				}
			}

			if err := creds.Save(path); err != nil {
				return err
			}
			logger.Info("credentials saved", "path", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&jiraUser, "jira-user", "", "Jira account email or username")
	cmd.Flags().StringVar(&jiraToken, "jira-token", "", "Jira API token or password")
	cmd.Flags().StringVar(&jiraDomain, "jira-domain", "", "Jira host, e.g. example.atlassian.net")
	cmd.Flags().StringVar(&githubUser, "github-user", "", "GitHub login whose pull requests are synced")
	cmd.Flags().StringVar(&githubToken, "github-token", "", "GitHub API token")
	cmd.Flags().StringVar(&githubDomain, "github-domain", "", "GitHub API host (defaults to api.github.com)")

	return cmd
}
