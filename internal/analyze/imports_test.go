package analyze

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"testsmith/internal/pyparse"
)

func parseSource(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	parser := pyparse.NewParser()
	root, err := parser.Parse(context.Background(), "test.py", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return root, []byte(source)
}

func TestExtractImportsPlain(t *testing.T) {
	root, source := parseSource(t, "import os\nimport collections.abc\n")

	records := ExtractImports(root, source)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].Module != "os" || records[0].IsFrom || records[0].Line != 1 {
		t.Errorf("record 0 = %+v, want module os at line 1", records[0])
	}
	if records[1].Module != "collections.abc" || records[1].Line != 2 {
		t.Errorf("record 1 = %+v, want module collections.abc at line 2", records[1])
	}
}

func TestExtractImportsMultipleOnOneLine(t *testing.T) {
	root, source := parseSource(t, "import os, sys\n")

	records := ExtractImports(root, source)
	if len(records) != 2 {
		t.Fatalf("got %d records, want one per module", len(records))
	}
	if records[0].Module != "os" || records[1].Module != "sys" {
		t.Errorf("modules = %q, %q, want os, sys", records[0].Module, records[1].Module)
	}
	if records[0].Line != 1 || records[1].Line != 1 {
		t.Error("both records should carry the shared statement line")
	}
}

func TestExtractImportsAlias(t *testing.T) {
	root, source := parseSource(t, "import numpy as np\n")

	records := ExtractImports(root, source)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Module != "numpy" || records[0].Alias != "np" {
		t.Errorf("record = %+v, want numpy aliased np", records[0])
	}
}

func TestExtractImportsFrom(t *testing.T) {
	root, source := parseSource(t, "from os.path import join, exists\n")

	records := ExtractImports(root, source)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Module != "os.path" || !r.IsFrom {
		t.Errorf("record = %+v, want from os.path", r)
	}
	if len(r.Names) != 2 || r.Names[0] != "join" || r.Names[1] != "exists" {
		t.Errorf("Names = %v, want [join exists]", r.Names)
	}
}

func TestExtractImportsFromAliasedName(t *testing.T) {
	root, source := parseSource(t, "from json import loads as parse\n")

	records := ExtractImports(root, source)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if len(records[0].Names) != 1 || records[0].Names[0] != "loads" {
		t.Errorf("Names = %v, want the original name [loads]", records[0].Names)
	}
}

func TestExtractImportsRelative(t *testing.T) {
	tests := []struct {
		name   string
		source string
		module string
	}{
		{"single dot with module", "from .sibling import helper\n", ".sibling"},
		{"double dot with module", "from ..pkg import thing\n", "..pkg"},
		{"bare dot", "from . import mod\n", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, source := parseSource(t, tt.source)
			records := ExtractImports(root, source)
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].Module != tt.module {
				t.Errorf("Module = %q, want %q", records[0].Module, tt.module)
			}
		})
	}
}

func TestExtractImportsWildcard(t *testing.T) {
	root, source := parseSource(t, "from constants import *\n")

	records := ExtractImports(root, source)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if len(records[0].Names) != 1 || records[0].Names[0] != WildcardName {
		t.Errorf("Names = %v, want [%s]", records[0].Names, WildcardName)
	}
}

func TestExtractImportsFuture(t *testing.T) {
	root, source := parseSource(t, "from __future__ import annotations\n")

	records := ExtractImports(root, source)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Module != "__future__" || !records[0].IsFrom {
		t.Errorf("record = %+v, want from __future__", records[0])
	}
	if len(records[0].Names) != 1 || records[0].Names[0] != "annotations" {
		t.Errorf("Names = %v, want [annotations]", records[0].Names)
	}
}

func TestExtractImportsNestedInTryExcept(t *testing.T) {
	source := `try:
    import ujson as json
except ImportError:
    import json

def inner():
    import functools
`
	root, src := parseSource(t, source)

	records := ExtractImports(root, src)
	modules := make(map[string]bool)
	for _, r := range records {
		modules[r.Module] = true
	}

	// Fallback-pattern imports in both branches and function-local
	// imports all reach classification.
	for _, want := range []string{"ujson", "json", "functools"} {
		if !modules[want] {
			t.Errorf("missing nested import %q in %v", want, records)
		}
	}
}

func TestExtractImportsEmptyFile(t *testing.T) {
	root, source := parseSource(t, "x = 1\n")

	records := ExtractImports(root, source)
	if len(records) != 0 {
		t.Errorf("got %d records from import-free source, want 0", len(records))
	}
}
