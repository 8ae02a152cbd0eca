package githubapi

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	gh "github.com/google/go-github/v45/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocomment/autocomment/internal/logging"
)

func stubClient(login string, list listFunc) *Client {
	return &Client{
		logger:  logging.NewLogger(io.Discard, logging.LevelError),
		login:   login,
		listPRs: list,
	}
}

func apiPullRequest(url, title, login string, body *string) *gh.PullRequest {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &gh.PullRequest{
		HTMLURL:   gh.String(url),
		Title:     gh.String(title),
		Body:      body,
		CreatedAt: &created,
		User:      &gh.User{Login: gh.String(login)},
		Base: &gh.PullRequestBranch{
			Repo: &gh.Repository{FullName: gh.String("org/repo")},
		},
	}
}

func TestListPullRequestsFiltersToConfiguredAuthor(t *testing.T) {
	client := stubClient("me", func(_ context.Context, owner, name string, _ *gh.PullRequestListOptions) ([]*gh.PullRequest, error) {
		assert.Equal(t, "org", owner)
		assert.Equal(t, "repo", name)
		return []*gh.PullRequest{
			apiPullRequest("https://url/org/repo/1", "mine", "me", gh.String("body one")),
			apiPullRequest("https://url/org/repo/2", "not mine", "someone", gh.String("body two")),
			apiPullRequest("https://url/org/repo/3", "no body", "me", nil),
		}, nil
	})

	prs, err := client.ListPullRequests(context.Background(), "org/repo", "")
	require.NoError(t, err)

	require.Len(t, prs, 2)
	assert.Equal(t, "https://url/org/repo/1", prs[0].URL)
	assert.Equal(t, "org/repo", prs[0].RepositoryFullName)
	assert.Equal(t, "mine", prs[0].Title)
	require.NotNil(t, prs[0].Body)
	assert.Equal(t, "body one", *prs[0].Body)
	assert.Equal(t, "2024-05-01T10:00:00Z", prs[0].CreatedAt)
	assert.Equal(t, "me", prs[0].AuthorLogin)

	// The description stays optional end to end: a nil body must survive
	// the mapping, not turn into an empty string.
	assert.Nil(t, prs[1].Body)
}

func TestListPullRequestsPassesFilter(t *testing.T) {
	client := stubClient("me", func(_ context.Context, _, _ string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, error) {
		assert.Equal(t, "open", opts.State)
		assert.Equal(t, "created", opts.Sort)
		assert.Equal(t, 100, opts.PerPage)
		return nil, nil
	})

	_, err := client.ListPullRequests(context.Background(), "org/repo", "state=open&sort=created")
	require.NoError(t, err)
}

func TestListPullRequestsPropagatesAPIError(t *testing.T) {
	client := stubClient("me", func(_ context.Context, _, _ string, _ *gh.PullRequestListOptions) ([]*gh.PullRequest, error) {
		return nil, errors.New("rate limited")
	})

	_, err := client.ListPullRequests(context.Background(), "org/repo", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "org/repo")
}

func TestListPullRequestsRejectsBadSlug(t *testing.T) {
	client := stubClient("me", nil)

	for _, repo := range []string{"", "org", "org/", "/repo", "a/b/c"} {
		_, err := client.ListPullRequests(context.Background(), repo, "")
		assert.Error(t, err, "slug %q", repo)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		want    gh.PullRequestListOptions
		wantErr bool
	}{
		{
			name: "empty",
			want: gh.PullRequestListOptions{ListOptions: gh.ListOptions{PerPage: 100}},
		},
		{
			name:   "state and direction",
			filter: "state=open&direction=desc",
			want: gh.PullRequestListOptions{
				State:       "open",
				Direction:   "desc",
				ListOptions: gh.ListOptions{PerPage: 100},
			},
		},
		{
			name:   "leading question mark tolerated",
			filter: "?state=closed",
			want: gh.PullRequestListOptions{
				State:       "closed",
				ListOptions: gh.ListOptions{PerPage: 100},
			},
		},
		{
			name:    "unsupported key",
			filter:  "stat=open",
			wantErr: true,
		},
		{
			name:    "malformed query",
			filter:  "state=%zz",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFilter(tt.filter)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *opts)
		})
	}
}
