package domain

import "errors"

// Domain errors.
var (
	ErrNotFound            = errors.New("not found")
	ErrNoToken             = errors.New("no API token (set GITHUB_TOKEN)")
	ErrNoRepository        = errors.New("repository not specified and could not be detected")
	ErrNoPullRequest       = errors.New("no pull request number in trigger context")
	ErrEmptyPriorityList   = errors.New("priority candidate list cannot be empty")
	ErrOverlappingCategory = errors.New("category candidate lists overlap")
	ErrInvalidRepository   = errors.New("repository must be in owner/name form")
)
