package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"testsmith/internal/config"
	"testsmith/internal/logging"
)

// loadConfig reads configuration from the --config directory or the
// current working directory.
func loadConfig() (*config.Config, error) {
	dir := configDirFlag
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	return config.Load(dir)
}

// mustLoadConfig loads configuration or exits.
func mustLoadConfig() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the invocation logger, tagging every entry with a
// fresh run ID so parallel-build warnings can be correlated.
func newLogger(cfg *config.Config) *logging.Logger {
	format := cfg.Logging.Format
	if logFormatFlag != "" {
		format = logFormatFlag
	}
	level := cfg.Logging.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}

	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}

	logger := logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.ParseLevel(level),
	})
	return logger.WithFields(map[string]interface{}{
		"runId": uuid.New().String(),
	})
}

// newContext creates the context for command execution.
func newContext() context.Context {
	return context.Background()
}

// startPath returns the first positional argument or the working
// directory when none is given.
func startPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return wd
}

// writeOutput writes content to path, or to stdout when path is "-".
func writeOutput(path, content string) error {
	if path == "-" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}
