// Package githubapi provides the pull request model and a GitHub-backed
// pull request source.
package githubapi

// PullRequest is the read-only view of a GitHub pull request consumed by
// the sync pipeline.
type PullRequest struct {
	// URL is the canonical HTML URL of the pull request.
	URL string
	// RepositoryFullName is the owner/name slug of the base repository.
	RepositoryFullName string
	// Title is the pull request title.
	Title string
	// Body is the pull request description; nil when the author left it empty.
	Body *string
	// CreatedAt is the creation timestamp as reported by the API. It is
	// echoed into comments verbatim and never parsed.
	CreatedAt string
	// AuthorLogin is the GitHub login of the pull request author.
	AuthorLogin string
}
