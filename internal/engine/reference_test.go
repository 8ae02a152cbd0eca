package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIssueKey(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		domain string
		want   string
	}{
		{
			name:   "simple match",
			text:   "test body [A-1](https://jira.domain/asdf)",
			domain: "jira.domain",
			want:   "A-1",
		},
		{
			name:   "match inside multiline noise",
			text:   "dsaaerl; are aerg \nasfwqrwrv\nasdfawfr\t[CEC-123](https://example.atlassian.net/asdf) asdfar w\nasdf",
			domain: "example.atlassian.net",
			want:   "CEC-123",
		},
		{
			name:   "no link at all",
			text:   "dsaaerl; are aerg \nasfwqrwrv\nasdfawfr\tasdfar w\nasdf",
			domain: "jira.domain",
			want:   "",
		},
		{
			name:   "empty text",
			text:   "",
			domain: "jira.domain",
			want:   "",
		},
		{
			name:   "key linked to a different tracker",
			text:   "see [A-1](https://other.tracker/asdf)",
			domain: "jira.domain",
			want:   "",
		},
		{
			name:   "host sharing the domain as a prefix",
			text:   "see [A-1](https://jira.domain.evil/asdf)",
			domain: "jira.domain",
			want:   "",
		},
		{
			name:   "dots in domain are literal",
			text:   "see [A-1](https://jiraXdomain/asdf)",
			domain: "jira.domain",
			want:   "",
		},
		{
			name:   "bare domain link",
			text:   "see [B-2](https://jira.domain)",
			domain: "jira.domain",
			want:   "B-2",
		},
		{
			name:   "first of several keys wins",
			text:   "[A-1](https://jira.domain/browse/A-1) and [B-2](https://jira.domain/browse/B-2)",
			domain: "jira.domain",
			want:   "A-1",
		},
		{
			name:   "key shape requires hyphen and digits",
			text:   "[ABC](https://jira.domain/browse/ABC)",
			domain: "jira.domain",
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIssueKey(tt.text, tt.domain))
		})
	}
}
