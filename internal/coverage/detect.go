package coverage

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"testsmith/internal/config"
	"testsmith/internal/paths"
)

var (
	todoPattern      = regexp.MustCompile(`(?i)#\s*TODO`)
	assertionPattern = regexp.MustCompile(`\bassert\b`)
)

// DetectCoverage walks the project and classifies every source file's
// coverage status by inspecting its candidate test file. The mirrored
// test location is tried first, then the flat tests/test_<stem>.py
// convention. Unreadable test files count as untested.
func DetectCoverage(root string, cfg *config.Config) map[string]Status {
	testRootName := filepath.Base(filepath.FromSlash(strings.TrimSuffix(cfg.TestRoot, "/")))
	coverage := make(map[string]Status)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if cfg.IsExcluded(name) || name == testRootName {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, ".py") || name == "__init__.py" || paths.IsTestFile(name) {
			return nil
		}

		coverage[path] = classifyFile(path, root, cfg)
		return nil
	})

	return coverage
}

func classifyFile(sourcePath, root string, cfg *config.Config) Status {
	testPath := paths.DeriveTestPath(sourcePath, root, cfg.TestRoot)
	if _, err := os.Stat(testPath); err != nil {
		flat := filepath.Join(root, cfg.TestRoot, "test_"+paths.Stem(sourcePath)+".py")
		if _, err := os.Stat(flat); err != nil {
			return StatusNoTest
		}
		testPath = flat
	}

	content, err := os.ReadFile(testPath)
	if err != nil {
		return StatusNoTest
	}

	return ClassifyTestContent(string(content))
}

// ClassifyTestContent labels test-file text by its stub markers versus
// real assertion statements.
func ClassifyTestContent(content string) Status {
	todos := len(todoPattern.FindAllStringIndex(content, -1))
	assertions := len(assertionPattern.FindAllStringIndex(content, -1))

	switch {
	case todos > 0 && assertions == 0:
		return StatusSkeletonOnly
	case todos > 0:
		return StatusPartial
	case assertions > 0:
		return StatusCovered
	default:
		// Neither stubs nor assertions reads as a skeleton.
		return StatusSkeletonOnly
	}
}
