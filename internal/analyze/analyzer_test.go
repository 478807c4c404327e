package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"testsmith/internal/errors"
	"testsmith/internal/project"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	source := `import os
import requests
from myapp.db import connect

class Service:
    def run(self):
        pass

def helper(x):
    pass
`
	path := writeSource(t, dir, "service.py", source)
	proj := &project.Context{
		Root:       dir,
		PackageMap: map[string]string{"myapp": filepath.Join(dir, "myapp")},
	}

	analyzer := NewAnalyzer()
	result, err := analyzer.File(context.Background(), path, proj)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}

	if result.ModuleName != "service" {
		t.Errorf("ModuleName = %q, want service", result.ModuleName)
	}
	if len(result.Imports.Stdlib) != 1 || result.Imports.Stdlib[0].Module != "os" {
		t.Errorf("Stdlib = %v", result.Imports.Stdlib)
	}
	if len(result.Imports.External) != 1 || result.Imports.External[0].Module != "requests" {
		t.Errorf("External = %v", result.Imports.External)
	}
	if len(result.Imports.Internal) != 1 || result.Imports.Internal[0].Module != "myapp.db" {
		t.Errorf("Internal = %v", result.Imports.Internal)
	}
	if len(result.PublicAPI) != 2 {
		t.Errorf("PublicAPI = %+v, want class then function", result.PublicAPI)
	}
	if result.Project != proj {
		t.Error("result should reference the shared project context")
	}
}

func TestAnalyzeFileNotFound(t *testing.T) {
	proj := &project.Context{Root: t.TempDir()}
	analyzer := NewAnalyzer()

	_, err := analyzer.File(context.Background(), filepath.Join(proj.Root, "ghost.py"), proj)
	if err == nil {
		t.Fatal("missing file should fail")
	}
	if !errors.IsCode(err, errors.FileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", err)
	}
}

func TestAnalyzeFileParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "broken.py", "def broken(:\n    pass\n")
	proj := &project.Context{Root: dir}

	analyzer := NewAnalyzer()
	_, err := analyzer.File(context.Background(), path, proj)
	if err == nil {
		t.Fatal("unparsable file should fail")
	}

	// The two failure modes stay distinguishable.
	if !errors.IsCode(err, errors.ParseFailed) {
		t.Errorf("error code = %v, want PARSE_ERROR", err)
	}
	if errors.IsCode(err, errors.FileNotFound) {
		t.Error("parse failure must not read as file-not-found")
	}
	parseErr, ok := errors.AsParseError(err)
	if !ok {
		t.Fatal("error should carry parse location details")
	}
	if parseErr.File != path {
		t.Errorf("File = %q, want %q", parseErr.File, path)
	}
}

func TestAnalyzeFileEmptySource(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "empty.py", "")
	proj := &project.Context{Root: dir}

	analyzer := NewAnalyzer()
	result, err := analyzer.File(context.Background(), path, proj)
	if err != nil {
		t.Fatalf("empty file should analyze cleanly: %v", err)
	}
	if result.Imports.Total() != 0 || len(result.PublicAPI) != 0 {
		t.Errorf("empty file should yield empty results, got %+v", result)
	}
}
