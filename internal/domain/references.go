package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// closingKeywords matches the verbs the hosting service recognizes as
// closing an issue: close/closes/closed, fix/fixes/fixed,
// resolve/resolves/resolved.
const closingKeywords = `(?:close[sd]?|fix(?:e[sd])?|resolve[sd]?)`

var numberRefPattern = regexp.MustCompile(`(?i)\b` + closingKeywords + `\s+#(\d+)`)

// FindReferencedIssues extracts the issue numbers the PR body claims
// to close, via both the `fixes #123` shorthand and full issue URLs of
// the given repository. Matches from the two patterns are concatenated
// without deduplication; malformed text simply yields no matches.
func FindReferencedIssues(body, owner, repo string) []int {
	if body == "" {
		return nil
	}

	var refs []int
	for _, m := range numberRefPattern.FindAllStringSubmatch(body, -1) {
		refs = appendIssueNumber(refs, m[1])
	}

	urlPattern := regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\s+https://github\.com/%s/%s/issues/(\d+)`,
		closingKeywords, regexp.QuoteMeta(owner), regexp.QuoteMeta(repo)))
	for _, m := range urlPattern.FindAllStringSubmatch(body, -1) {
		refs = appendIssueNumber(refs, m[1])
	}

	return refs
}

func appendIssueNumber(refs []int, digits string) []int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// The pattern only captures digits, so overflow is the lone failure.
		return refs
	}
	return append(refs, n)
}
