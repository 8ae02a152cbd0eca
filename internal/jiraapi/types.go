// Package jiraapi provides a Jira-backed issue tracker client and the
// comment models used for duplicate detection.
package jiraapi

import "strings"

// Comment is one existing comment on an issue, reduced to the rendered
// text the tracker's read API returns.
type Comment struct {
	// RenderedBody is the HTML-rendered comment body. It is only ever
	// searched for substrings, never parsed.
	RenderedBody string `json:"renderedBody"`
}

// CommentPage is the collection of comments attached to an issue.
type CommentPage struct {
	// Total is the number of comments reported by the tracker.
	Total int `json:"total"`
	// Comments holds the rendered comments.
	Comments []Comment `json:"comments"`
}

// Contains reports whether any comment's rendered text contains text as an
// exact, case-sensitive substring. An empty page never matches.
func (p CommentPage) Contains(text string) bool {
	for _, comment := range p.Comments {
		if strings.Contains(comment.RenderedBody, text) {
			return true
		}
	}
	return false
}
