package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"labelport/internal/app"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage labelport configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, path := range []string{c.ConfigLoader.GlobalPath(), c.ConfigLoader.RepoPath()} {
				if path == "" {
					continue
				}
				if _, err := os.Stat(path); err != nil {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s\n", path)
				}
			}
			_, _ = fmt.Fprintln(w)

			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = w.Write(data)
			return nil
		},
	}
}
