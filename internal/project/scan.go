package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"testsmith/internal/paths"
)

// ScanPackages builds the first-party package map for a project root.
//
// Search starts are the root plus a src subdirectory if one exists; src is
// scanned first and its contents are unwrapped, so a package at src/foo
// registers as foo. Only the first path segment relative to its search
// start is recorded: nested subpackages ride along with their root entry.
// Standalone .py files directly at a search start register under their
// stem, and initializer-less directories holding Python source register as
// namespace-package roots. First registration for a name wins; hidden
// directories and the configured exclusion set are never descended into.
//
// The walk order is lexical, so re-scanning an unchanged tree yields an
// identical map.
func ScanPackages(root string, excludeDirs []string) map[string]string {
	srcStart := filepath.Join(root, "src")
	starts := make([]string, 0, 2)
	if info, err := os.Stat(srcStart); err == nil && info.IsDir() {
		starts = append(starts, srcStart)
	}
	starts = append(starts, root)

	packageMap := make(map[string]string)
	for _, start := range starts {
		scanStart(start, srcStart, excludeDirs, packageMap)
	}
	return packageMap
}

func scanStart(start, srcStart string, excludeDirs []string, packageMap map[string]string) {
	exclude := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		exclude[d] = true
	}

	_ = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == start {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") || exclude[name] {
				return filepath.SkipDir
			}
			// The src start owns its own subtree.
			if path == srcStart && start != srcStart {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, ".py") {
			return nil
		}

		rel, relErr := filepath.Rel(start, path)
		if relErr != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")

		if len(parts) == 1 {
			// Standalone module sitting directly at the search start.
			if name == "__init__.py" || name == "conftest.py" || name == "setup.py" || paths.IsTestFile(name) {
				return nil
			}
			stem := paths.Stem(name)
			if _, seen := packageMap[stem]; !seen {
				packageMap[stem] = path
			}
			return nil
		}

		// Deeper source registers its first segment as the importable
		// root, whether or not that directory carries an initializer
		// (namespace packages have none). Test support files are not
		// evidence of a package.
		if name != "__init__.py" && (name == "conftest.py" || paths.IsTestFile(name)) {
			return nil
		}
		first := parts[0]
		if _, seen := packageMap[first]; !seen {
			packageMap[first] = filepath.Join(start, first)
		}
		return nil
	})
}
