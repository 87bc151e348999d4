package domain

import "context"

// RepoGateway provides access to issues and pull requests of one
// repository on the hosting service. Implementations normalize label
// shapes at this boundary; the core only ever sees plain names.
type RepoGateway interface {
	// GetPullRequest retrieves a pull request by number.
	// Returns ErrNotFound if it does not exist.
	GetPullRequest(ctx context.Context, number int) (*PullRequest, error)

	// GetIssueLabels retrieves the label names of an issue.
	// Returns ErrNotFound if the issue does not exist.
	GetIssueLabels(ctx context.Context, number int) ([]string, error)

	// AddLabels adds labels to an issue or pull request in one call.
	// Adding an already-present label is a no-op per label.
	AddLabels(ctx context.Context, number int, labels []string) error

	// RemoveLabel removes a single label. Removing an absent label is
	// not an error.
	RemoveLabel(ctx context.Context, number int, label string) error
}

// EventSource reports the pull request number carried by the event
// that triggered the current run.
type EventSource interface {
	// PullRequestNumber returns the triggering PR number, or
	// ErrNoPullRequest when the event did not carry one.
	PullRequestNumber() (int, error)
}
