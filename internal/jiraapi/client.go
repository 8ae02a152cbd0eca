package jiraapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/autocomment/autocomment/internal/config"
	"github.com/autocomment/autocomment/internal/logging"
)

// requestTimeout bounds every tracker API call. Failed calls are not retried.
const requestTimeout = 10 * time.Second

// Client talks to the Jira comment API for a single tracker domain.
type Client struct {
	logger *slog.Logger
	jc     *jira.Client
	domain string
}

// NewClient constructs a Jira client authenticated with the stored
// credentials. The underlying HTTP client carries a fixed timeout and
// debug request logging.
func NewClient(logger *slog.Logger, creds *config.Credentials) (*Client, error) {
	tp := &jira.BasicAuthTransport{
		Username:  creds.JiraUser,
		Password:  creds.JiraToken,
		Transport: logging.NewTransport(logger, nil),
	}

	httpClient := tp.Client()
	httpClient.Timeout = requestTimeout

	jc, err := jira.NewClient(httpClient, fmt.Sprintf("https://%s/", creds.JiraDomain))
	if err != nil {
		return nil, fmt.Errorf("create jira client for %q: %w", creds.JiraDomain, err)
	}

	return &Client{
		logger: logger,
		jc:     jc,
		domain: creds.JiraDomain,
	}, nil
}

// Domain returns the tracker host this client is bound to.
func (c *Client) Domain() string {
	return c.domain
}

// commentEndpoint builds the v3 comment resource path for an issue,
// expanded with rendered bodies so callers can run containment checks.
func commentEndpoint(issueKey string) string {
	return fmt.Sprintf("rest/api/3/issue/%s/comment?expand=renderedBody", issueKey)
}

// GetComments fetches the existing comments on an issue.
func (c *Client) GetComments(ctx context.Context, issueKey string) (CommentPage, error) {
	req, err := c.jc.NewRequestWithContext(ctx, http.MethodGet, commentEndpoint(issueKey), nil)
	if err != nil {
		return CommentPage{}, fmt.Errorf("build comment request for %s: %w", issueKey, err)
	}

	var page CommentPage
	resp, err := c.jc.Do(req, &page)
	if err != nil {
		return CommentPage{}, fmt.Errorf("fetch comments for %s: %w", issueKey, jira.NewJiraError(resp, err))
	}

	c.logger.Debug("fetched issue comments", "issue", issueKey, "total", page.Total)
	return page, nil
}

// PostComment submits a pre-serialized comment document to an issue. The
// payload bytes are sent as-is; the comment endpoint is strict about field
// presence, so no re-encoding happens here.
func (c *Client) PostComment(ctx context.Context, issueKey string, payload []byte) error {
	req, err := c.jc.NewRequestWithContext(ctx, http.MethodPost, commentEndpoint(issueKey), json.RawMessage(payload))
	if err != nil {
		return fmt.Errorf("build comment post for %s: %w", issueKey, err)
	}

	resp, err := c.jc.Do(req, nil)
	if err != nil {
		return fmt.Errorf("post comment to %s: %w", issueKey, jira.NewJiraError(resp, err))
	}

	c.logger.Debug("posted issue comment", "issue", issueKey)
	return nil
}
