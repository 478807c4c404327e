package project

import (
	"context"
	"path/filepath"

	"testsmith/internal/config"
	"testsmith/internal/errors"
	"testsmith/internal/pyparse"
)

// Context is the detected project structure. It is built once per
// invocation, owned by the orchestrating caller, and passed by reference
// into every analysis call; nothing mutates it after construction.
type Context struct {
	// Root is the absolute project root directory
	Root string `json:"root"`

	// PackageMap maps root package/module names to absolute paths
	PackageMap map[string]string `json:"packageMap"`

	// ConftestPath is the root conftest.py, empty when absent
	ConftestPath string `json:"conftestPath,omitempty"`

	// ExistingPaths are import paths the conftest already registers
	ExistingPaths []string `json:"existingPaths,omitempty"`
}

// BuildContext resolves the project root for sourcePath and assembles the
// full context. Root resolution honors an explicit cfg.Root; otherwise it
// walks ancestors for markers and fails with ROOT_NOT_FOUND.
func BuildContext(ctx context.Context, parser *pyparse.Parser, sourcePath string, cfg *config.Config) (*Context, error) {
	var root string
	if cfg.Root != "" {
		abs, err := filepath.Abs(cfg.Root)
		if err != nil {
			return nil, errors.New(errors.InternalError, "cannot resolve configured root", err)
		}
		root = abs
	} else {
		found, err := FindRoot(sourcePath)
		if err != nil {
			return nil, err
		}
		root = found
	}

	packageMap := ScanPackages(root, cfg.ExcludeDirs)
	conftestPath, existingPaths := DetectConftest(ctx, parser, root, cfg.ConftestName, cfg.PathsVar)

	return &Context{
		Root:          root,
		PackageMap:    packageMap,
		ConftestPath:  conftestPath,
		ExistingPaths: existingPaths,
	}, nil
}
