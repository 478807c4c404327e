// Package discovery finds source files that still lack a test file.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"testsmith/internal/config"
	"testsmith/internal/paths"
)

// IsSourceFile reports whether a file is a candidate for test scaffolding:
// a .py file that is not a test, conftest, or initializer, and does not
// sit inside an excluded directory.
func IsSourceFile(path, projectRoot string, cfg *config.Config) bool {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".py") {
		return false
	}
	if name == "conftest.py" || name == "__init__.py" || paths.IsTestFile(name) {
		return false
	}

	rel, err := filepath.Rel(projectRoot, path)
	if err == nil {
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			if cfg.IsExcluded(part) {
				return false
			}
		}
	}
	return true
}

// UntestedFiles finds all source files in the project whose derived test
// path does not exist, sorted for stable output.
func UntestedFiles(projectRoot string, cfg *config.Config) []string {
	return UntestedIn(projectRoot, projectRoot, cfg)
}

// UntestedIn restricts discovery to a target file or directory.
func UntestedIn(target, projectRoot string, cfg *config.Config) []string {
	testRoot := filepath.Join(projectRoot, cfg.TestRoot)

	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		if IsSourceFile(target, projectRoot, cfg) && !paths.IsWithin(target, testRoot) && !hasTest(target, projectRoot, cfg) {
			return []string{target}
		}
		return nil
	}

	var untested []string
	_ = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != target && cfg.IsExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSourceFile(path, projectRoot, cfg) {
			return nil
		}
		// Files under the test root are test support code, not sources.
		if paths.IsWithin(path, testRoot) {
			return nil
		}
		if !hasTest(path, projectRoot, cfg) {
			untested = append(untested, path)
		}
		return nil
	})

	sort.Strings(untested)
	return untested
}

func hasTest(sourcePath, projectRoot string, cfg *config.Config) bool {
	testPath := paths.DeriveTestPath(sourcePath, projectRoot, cfg.TestRoot)
	_, err := os.Stat(testPath)
	return err == nil
}
