package project

import (
	"context"
	"os"
	"path/filepath"

	"testsmith/internal/pyparse"
)

// DetectConftest looks for the pytest configuration file at the project
// root and extracts the string-list assignment naming already-registered
// import paths (paths_to_add by default). A missing file yields an empty
// path; an unparsable one yields the path with no entries.
func DetectConftest(ctx context.Context, parser *pyparse.Parser, root, conftestName, pathsVar string) (string, []string) {
	conftestPath := filepath.Join(root, conftestName)
	source, err := os.ReadFile(conftestPath)
	if err != nil {
		return "", nil
	}

	tree, err := parser.Parse(ctx, conftestPath, source)
	if err != nil {
		return conftestPath, nil
	}

	for _, assign := range pyparse.FindNodes(tree, "assignment") {
		left := assign.ChildByFieldName("left")
		right := assign.ChildByFieldName("right")
		if left == nil || right == nil {
			continue
		}
		if left.Type() != "identifier" || left.Content(source) != pathsVar {
			continue
		}
		if right.Type() != "list" {
			continue
		}

		var entries []string
		for _, elt := range pyparse.NamedChildren(right) {
			if elt.Type() == "string" {
				entries = append(entries, pyparse.CleanStringLiteral(elt.Content(source)))
			}
		}
		return conftestPath, entries
	}

	return conftestPath, nil
}
