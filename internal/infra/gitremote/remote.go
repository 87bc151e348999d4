// Package gitremote derives the hosted repository from a local checkout.
package gitremote

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"

	"labelport/internal/domain"
)

// OwnerRepo returns the owner and name of the repository the checkout
// at dir pushes to, taken from the origin remote. Used when
// GITHUB_REPOSITORY is not set, e.g. when running locally.
func OwnerRepo(dir string) (owner, repo string, err error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("open git repository: %w", err)
	}
	remote, err := r.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", "", fmt.Errorf("resolve origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", domain.ErrNoRepository
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner and repository name from an HTTPS,
// SSH, or scp-like git remote URL.
func ParseRemoteURL(remoteURL string) (owner, repo string, err error) {
	path := remoteURL
	switch {
	case strings.HasPrefix(path, "https://"), strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "ssh://"):
		// Strip scheme, host, and optional user.
		_, rest, ok := strings.Cut(path, "://")
		if !ok {
			return "", "", fmt.Errorf("remote %q: %w", remoteURL, domain.ErrInvalidRepository)
		}
		_, path, ok = strings.Cut(rest, "/")
		if !ok {
			return "", "", fmt.Errorf("remote %q: %w", remoteURL, domain.ErrInvalidRepository)
		}
	case strings.Contains(path, "@") && strings.Contains(path, ":"):
		// scp-like form: git@github.com:owner/repo.git
		_, path, _ = strings.Cut(path, ":")
	}

	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")
	owner, repo, ok := strings.Cut(path, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("remote %q: %w", remoteURL, domain.ErrInvalidRepository)
	}
	return owner, repo, nil
}
