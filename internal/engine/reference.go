package engine

import (
	"regexp"
	"sync"
)

// issueKeyPatterns caches the compiled extraction pattern per tracker
// domain. In practice there is exactly one domain per run.
var issueKeyPatterns sync.Map

// ExtractIssueKey scans free text for a Markdown link whose visible text
// is an issue key (project prefix, hyphen, sequence number) and whose
// target points at the given tracker domain. The first match in scan
// order wins; later keys in the same text are ignored. Keys linked to any
// other host yield no match, even when the host shares a prefix with the
// tracker domain.
func ExtractIssueKey(text, domain string) string {
	re := patternFor(domain)
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

// patternFor builds (or reuses) the extraction pattern for a domain. Dots
// in the domain are quoted so they match literally, and the target must
// end right after the domain or continue with a path, which pins the URL
// host to the configured tracker.
func patternFor(domain string) *regexp.Regexp {
	if cached, ok := issueKeyPatterns.Load(domain); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\[(\w+-\d+)\]\(https://` + regexp.QuoteMeta(domain) + `(?:/\S*)?\)`)
	issueKeyPatterns.Store(domain, re)
	return re
}
