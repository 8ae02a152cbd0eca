// Package engine contains the high-level reconciliation logic that keeps
// Jira issues commented with links back to their GitHub pull requests.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autocomment/autocomment/internal/adf"
	"github.com/autocomment/autocomment/internal/githubapi"
	"github.com/autocomment/autocomment/internal/jiraapi"
)

// PostedPrefix starts every result line for a freshly posted comment.
// The CLI keys summary counters off it.
const PostedPrefix = "Posted comment to "

// PullRequestSource supplies the pull requests of a repository, already
// reduced to those authored by the configured user.
type PullRequestSource interface {
	ListPullRequests(ctx context.Context, repo, filter string) ([]githubapi.PullRequest, error)
}

// IssueClient reads and writes comments on a single issue tracker.
type IssueClient interface {
	Domain() string
	GetComments(ctx context.Context, issueKey string) (jiraapi.CommentPage, error)
	PostComment(ctx context.Context, issueKey string, payload []byte) error
}

// Engine reconciles the pull requests of one repository against one issue
// tracker. Pull requests are processed strictly in the order the source
// returns them, one at a time.
type Engine struct {
	logger *slog.Logger
	source PullRequestSource
	issues IssueClient
}

// New constructs an Engine over the given collaborators.
func New(logger *slog.Logger, source PullRequestSource, issues IssueClient) *Engine {
	return &Engine{
		logger: logger,
		source: source,
		issues: issues,
	}
}

// SyncComments processes every pull request the source returns and yields
// one human-readable result line per pull request, in input order. A pull
// request without a description or without a tracker reference produces an
// informational line; any transport failure aborts the whole run and no
// partial results are returned.
func (e *Engine) SyncComments(ctx context.Context, repo, filter string) ([]string, error) {
	prs, err := e.source.ListPullRequests(ctx, repo, filter)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", repo, err)
	}

	domain := e.issues.Domain()
	results := make([]string, 0, len(prs))
	for _, pr := range prs {
		line, err := e.syncOne(ctx, domain, pr)
		if err != nil {
			return nil, err
		}
		results = append(results, line)
	}
	return results, nil
}

// syncOne reconciles a single pull request and returns its result line.
func (e *Engine) syncOne(ctx context.Context, domain string, pr githubapi.PullRequest) (string, error) {
	if pr.Body == nil {
		e.logger.Debug("pull request has no description", "pr", pr.URL)
		return fmt.Sprintf("PR %s does not have a description!", pr.URL), nil
	}

	key := ExtractIssueKey(*pr.Body, domain)
	if key == "" {
		e.logger.Debug("pull request has no tracker reference", "pr", pr.URL)
		return fmt.Sprintf("PR %s does not contain a Jira ticket!", pr.URL), nil
	}

	page, err := e.issues.GetComments(ctx, key)
	if err != nil {
		return "", err
	}

	if page.Contains(pr.URL) {
		e.logger.Debug("comment already present", "issue", key, "pr", pr.URL)
		return fmt.Sprintf("Jira ticket %s already has comment for %s", key, pr.URL), nil
	}

	doc, err := adf.BuildComment(pr)
	if err != nil {
		return "", err
	}
	payload, err := adf.Marshal(doc)
	if err != nil {
		return "", err
	}

	if err := e.issues.PostComment(ctx, key, payload); err != nil {
		return "", err
	}

	e.logger.Info("posted comment", "issue", key, "pr", pr.URL)
	return fmt.Sprintf("%shttps://%s/browse/%s for %s", PostedPrefix, domain, key, pr.URL), nil
}
