package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v45/github"
	"golang.org/x/oauth2"

	"github.com/autocomment/autocomment/internal/config"
	"github.com/autocomment/autocomment/internal/logging"
)

// requestTimeout bounds every GitHub API call. Failed calls are not retried.
const requestTimeout = 10 * time.Second

// listFunc fetches all pull requests for a repository. It is a field on
// Client so tests can stub the API without a network.
type listFunc func(ctx context.Context, owner, name string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, error)

// Client lists pull requests for a repository via the GitHub REST API,
// pre-filtered to the configured author.
type Client struct {
	logger  *slog.Logger
	login   string
	listPRs listFunc
}

// NewClient constructs a GitHub client from the stored credentials.
// Domains other than api.github.com go through the enterprise constructor.
func NewClient(logger *slog.Logger, creds *config.Credentials) (*Client, error) {
	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.GitHubToken}),
			Base:   logging.NewTransport(logger, nil),
		},
	}

	var (
		ghc *gh.Client
		err error
	)
	if creds.GitHubDomain == config.DefaultGitHubDomain {
		ghc = gh.NewClient(httpClient)
	} else {
		baseURL := fmt.Sprintf("https://%s/", creds.GitHubDomain)
		ghc, err = gh.NewEnterpriseClient(baseURL, baseURL, httpClient)
		if err != nil {
			return nil, fmt.Errorf("create github client for %q: %w", creds.GitHubDomain, err)
		}
	}

	client := &Client{
		logger: logger,
		login:  creds.GitHubUser,
	}
	client.listPRs = func(ctx context.Context, owner, name string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, error) {
		var all []*gh.PullRequest
		for {
			prs, resp, err := ghc.PullRequests.List(ctx, owner, name, opts)
			if err != nil {
				return nil, err
			}
			all = append(all, prs...)
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return all, nil
	}
	return client, nil
}

// ListPullRequests returns the repository's pull requests matching the
// filter expression, reduced to those authored by the configured user.
func (c *Client) ListPullRequests(ctx context.Context, repo, filter string) ([]PullRequest, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	opts, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	prs, err := c.listPRs(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("list pull requests for %s: %w", repo, err)
	}

	var out []PullRequest
	for _, pr := range prs {
		if pr.GetUser().GetLogin() != c.login {
			continue
		}
		fullName := pr.GetBase().GetRepo().GetFullName()
		if fullName == "" {
			fullName = repo
		}
		out = append(out, PullRequest{
			URL:                pr.GetHTMLURL(),
			RepositoryFullName: fullName,
			Title:              pr.GetTitle(),
			Body:               pr.Body,
			CreatedAt:          pr.GetCreatedAt().UTC().Format(time.RFC3339),
			AuthorLogin:        pr.GetUser().GetLogin(),
		})
	}

	c.logger.Debug("listed pull requests",
		"repo", repo,
		"fetched", len(prs),
		"authored", len(out),
	)
	return out, nil
}

// splitRepo validates an owner/repo slug and returns its parts.
func splitRepo(repo string) (string, string, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return "", "", fmt.Errorf("repository is empty")
	}
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("invalid repository slug %q, expected owner/repo", repo)
	}
	return parts[0], parts[1], nil
}

// parseFilter converts a query-string filter expression (e.g.
// "state=open&sort=created") into list options. Keys the listing endpoint
// does not support are rejected so typos surface instead of silently
// returning the default listing.
func parseFilter(filter string) (*gh.PullRequestListOptions, error) {
	opts := &gh.PullRequestListOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	filter = strings.TrimSpace(strings.TrimPrefix(filter, "?"))
	if filter == "" {
		return opts, nil
	}

	values, err := url.ParseQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", filter, err)
	}
	for key := range values {
		value := values.Get(key)
		switch key {
		case "state":
			opts.State = value
		case "head":
			opts.Head = value
		case "base":
			opts.Base = value
		case "sort":
			opts.Sort = value
		case "direction":
			opts.Direction = value
		default:
			return nil, fmt.Errorf("unsupported filter key %q", key)
		}
	}
	return opts, nil
}
