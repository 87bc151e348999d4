// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"labelport/internal/domain"
	"labelport/internal/infra/config"
	"labelport/internal/infra/event"
	"labelport/internal/infra/github"
)

// Container provides dependency injection for the application.
// It holds all port implementations and factory hooks for the
// per-repository gateway, which is constructed lazily once the
// owner/repo and token are known.
type Container struct {
	ConfigLoader *config.Loader
	Events       *event.Reader
	Logger       *slog.Logger
	LogLevel     *slog.LevelVar

	// NewGateway builds the repository gateway. Replaced in tests.
	NewGateway func(token, owner, repo string) domain.RepoGateway

	// Cwd is the directory the tool was invoked from.
	Cwd string
}

// New creates a new Container rooted at the given directory.
func New(dir string) *Container {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	return &Container{
		ConfigLoader: config.NewLoader(dir),
		Events:       event.NewReader(),
		Logger:       logger,
		LogLevel:     level,
		NewGateway: func(token, owner, repo string) domain.RepoGateway {
			return github.NewClient(token, owner, repo)
		},
		Cwd: dir,
	}
}
