// Package cli provides the command-line interface for labelport.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"labelport/internal/app"
)

// NewRootCommand creates the root command for labelport.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "labelport",
		Short: "Propagate triage labels from issues to pull requests",
		Long: `labelport copies triage labels (priority, classification, effort)
from the issues a pull request closes onto the pull request itself.
It is meant to run as a CI step on pull request events, but can also
be invoked locally against explicit PR numbers.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose && c != nil {
				c.LogLevel.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newSyncCommand(c))
	root.AddCommand(newConfigCommand(c))

	return root
}
