package project

import (
	"os"
	"path/filepath"
	"testing"

	"testsmith/internal/errors"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindRootByMarker(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{"pyproject", "pyproject.toml"},
		{"setup py", "setup.py"},
		{"setup cfg", "setup.cfg"},
		{"conftest", "conftest.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, tt.marker), "")
			writeFile(t, filepath.Join(root, "pkg", "mod.py"), "")

			got, err := FindRoot(filepath.Join(root, "pkg", "mod.py"))
			if err != nil {
				t.Fatalf("FindRoot failed: %v", err)
			}
			if got != root {
				t.Errorf("FindRoot = %q, want %q", got, root)
			}
		})
	}
}

func TestFindRootGitDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "app", "main.py"), "")

	got, err := FindRoot(filepath.Join(root, "app"))
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if got != root {
		t.Errorf("FindRoot = %q, want %q", got, root)
	}
}

func TestFindRootNearestLevelWins(t *testing.T) {
	// A conftest.py two levels down beats a pyproject.toml at the top:
	// the search checks every marker per level before ascending.
	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, "pyproject.toml"), "")
	inner := filepath.Join(outer, "sub", "project")
	writeFile(t, filepath.Join(inner, "conftest.py"), "")
	writeFile(t, filepath.Join(inner, "mod.py"), "")

	got, err := FindRoot(filepath.Join(inner, "mod.py"))
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if got != inner {
		t.Errorf("FindRoot = %q, want nearest marker level %q", got, inner)
	}
}

func TestFindRootStartsFromFileDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "")
	writeFile(t, filepath.Join(root, "mod.py"), "")

	// Passing a file and passing its directory give the same answer.
	fromFile, err := FindRoot(filepath.Join(root, "mod.py"))
	if err != nil {
		t.Fatal(err)
	}
	fromDir, err := FindRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if fromFile != fromDir {
		t.Errorf("FindRoot(file) = %q, FindRoot(dir) = %q, want equal", fromFile, fromDir)
	}
}

func TestFindRootNotFound(t *testing.T) {
	bare := t.TempDir()
	writeFile(t, filepath.Join(bare, "orphan.py"), "")

	_, err := FindRoot(filepath.Join(bare, "orphan.py"))
	if err == nil {
		t.Skip("an ancestor of the temp dir carries a marker; cannot assert absence")
	}
	if !errors.IsCode(err, errors.RootNotFound) {
		t.Errorf("error code should be ROOT_NOT_FOUND, got %v", err)
	}
}
