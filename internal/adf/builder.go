package adf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/autocomment/autocomment/internal/githubapi"
)

// ErrMissingDescription indicates a pull request without a description,
// which cannot be rendered into a comment.
var ErrMissingDescription = errors.New("pull request has no description")

// BuildComment renders a pull request into a three-paragraph comment
// document: a titled link to the pull request, the first line of its
// description, and its creation timestamp.
func BuildComment(pr githubapi.PullRequest) (Node, error) {
	if pr.Body == nil {
		return Node{}, fmt.Errorf("%w: %s", ErrMissingDescription, pr.URL)
	}

	intro := fmt.Sprintf("Pull Request in %s: ", pr.RepositoryFullName)
	doc := Doc(
		Paragraph(
			Text(intro),
			Text(pr.Title, Link(pr.URL)),
		),
		Paragraph(Text(firstLine(*pr.Body))),
		Paragraph(Text("Created at: "+pr.CreatedAt)),
	)
	return doc, nil
}

// firstLine returns the text before the first newline, trimmed of
// surrounding whitespace. A description without newlines is returned whole.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
