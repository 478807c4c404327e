// Package project locates the project root and maps its first-party
// packages for import resolution.
package project

import (
	"os"
	"path/filepath"

	"testsmith/internal/errors"
)

// RootMarkers are the files that identify a project root, in priority
// order: manifest, build config, packaging config, version control,
// test-runner config.
var RootMarkers = []string{
	"pyproject.toml",
	"setup.py",
	"setup.cfg",
	".git",
	"conftest.py",
}

// FindRoot walks from startPath's directory upward through ancestors and
// returns the first level where any marker exists. Every marker is checked
// at a level before ascending, so the first matching level wins regardless
// of which marker matched. Fails with a ROOT_NOT_FOUND error when the
// filesystem root is exhausted; callers must treat that as fatal for the
// operation that needed a root, not retryable.
func FindRoot(startPath string) (string, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return "", errors.New(errors.InternalError, "cannot resolve start path", err)
	}

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for dir := abs; ; {
		for _, marker := range RootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.RootNotFoundError(startPath, RootMarkers)
}
