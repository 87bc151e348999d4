// Package event reads the CI trigger context from the environment.
package event

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"labelport/internal/domain"
)

// Ensure Reader implements domain.EventSource.
var _ domain.EventSource = (*Reader)(nil)

// Reader resolves repository, token, and triggering PR number from the
// environment variables a GitHub Actions runner provides.
type Reader struct {
	getenv   func(string) string
	readFile func(string) ([]byte, error)
}

// NewReader creates a Reader backed by the process environment.
func NewReader() *Reader {
	return &Reader{getenv: os.Getenv, readFile: os.ReadFile}
}

// NewReaderWithEnv creates a Reader with injected environment lookup
// and file reading. This is useful for testing.
func NewReaderWithEnv(getenv func(string) string, readFile func(string) ([]byte, error)) *Reader {
	return &Reader{getenv: getenv, readFile: readFile}
}

// Repository returns the owner and name from GITHUB_REPOSITORY.
// Returns domain.ErrNoRepository when the variable is unset.
func (r *Reader) Repository() (owner, repo string, err error) {
	full := r.getenv("GITHUB_REPOSITORY")
	if full == "" {
		return "", "", domain.ErrNoRepository
	}
	owner, repo, ok := strings.Cut(full, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("GITHUB_REPOSITORY=%q: %w", full, domain.ErrInvalidRepository)
	}
	return owner, repo, nil
}

// Token returns the API token from GITHUB_TOKEN, falling back to
// LABELPORT_TOKEN. An empty result means no token is configured.
func (r *Reader) Token() string {
	if tok := r.getenv("GITHUB_TOKEN"); tok != "" {
		return tok
	}
	return r.getenv("LABELPORT_TOKEN")
}

// eventPayload is the subset of the webhook payload the selector needs.
type eventPayload struct {
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Number int `json:"number"`
}

// PullRequestNumber returns the PR number carried by the triggering
// event payload (GITHUB_EVENT_PATH). It prefers pull_request.number and
// falls back to the top-level number field. Returns
// domain.ErrNoPullRequest when neither is present.
func (r *Reader) PullRequestNumber() (int, error) {
	path := r.getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return 0, domain.ErrNoPullRequest
	}
	data, err := r.readFile(path)
	if err != nil {
		return 0, fmt.Errorf("read event payload: %w", err)
	}
	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("parse event payload: %w", err)
	}
	if payload.PullRequest != nil && payload.PullRequest.Number > 0 {
		return payload.PullRequest.Number, nil
	}
	if payload.Number > 0 {
		return payload.Number, nil
	}
	return 0, domain.ErrNoPullRequest
}
