// Package paths provides path canonicalization and test-path derivation.
package paths

import (
	"path/filepath"
	"strings"
)

// Canonicalize converts an absolute path to a root-relative path with
// forward slashes. Paths outside the root fall back to the base name.
func Canonicalize(absolutePath string, root string) string {
	rel, err := filepath.Rel(root, absolutePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(absolutePath)
	}
	return filepath.ToSlash(rel)
}

// IsWithin reports whether path sits under root.
func IsWithin(path string, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Stem returns the extension-less base name of a path.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DeriveTestPath mirrors a source file's location under the test root with
// the conventional test_ prefix:
//
//	src/services/payment.py -> tests/src/services/test_payment.py
//
// The returned path is absolute. Callers treat it as an opaque
// existing-or-not candidate; nothing here checks the filesystem.
func DeriveTestPath(sourcePath, projectRoot, testRoot string) string {
	rel := sourcePath
	if filepath.IsAbs(sourcePath) {
		r, err := filepath.Rel(projectRoot, sourcePath)
		if err != nil || strings.HasPrefix(r, "..") {
			r = filepath.Base(sourcePath)
		}
		rel = r
	}

	filename := "test_" + Stem(rel) + ".py"
	return filepath.Join(projectRoot, testRoot, filepath.Dir(rel), filename)
}

// IsTestFile reports whether a filename follows test naming conventions.
func IsTestFile(name string) bool {
	return strings.HasPrefix(name, "test_") || strings.HasSuffix(name, "_test.py")
}

// DottedModuleName converts a root-relative source path to a dotted module
// name, stripping a leading src segment when the project uses that layout.
//
//	src/pkg/a.py -> pkg.a
//	pkg/b.py     -> pkg.b
func DottedModuleName(relPath string) string {
	rel := filepath.ToSlash(relPath)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	parts := strings.Split(rel, "/")
	if len(parts) > 1 && parts[0] == "src" {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
