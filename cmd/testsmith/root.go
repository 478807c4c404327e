package main

import (
	"github.com/spf13/cobra"

	"testsmith/internal/version"
)

var (
	// configDirFlag points at the directory holding pyproject.toml;
	// empty means the current working directory
	configDirFlag string
	// logLevelFlag overrides the configured log level
	logLevelFlag string
	// logFormatFlag overrides the configured log format
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "testsmith",
	Short: "TestSmith - test scaffolding driven by static analysis of Python projects",
	Long: `TestSmith analyzes a Python codebase to build a structural model of it:
project root, first-party package map, classified imports, public API
surface, a whole-project dependency graph with coupling metrics, and a
prioritized list of test coverage gaps.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("testsmith version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config", "",
		"Directory containing pyproject.toml (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: human or json")
}
