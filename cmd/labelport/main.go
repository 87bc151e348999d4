// Package main is the entry point for the labelport CLI.
package main

import (
	"fmt"
	"os"

	"labelport/internal/app"
	"labelport/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container := app.New(cwd)

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
