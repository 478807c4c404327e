package analyze

import (
	sitter "github.com/smacker/go-tree-sitter"

	"testsmith/internal/pyparse"
)

// ExtractImports emits one ImportRecord per import statement anywhere in
// the tree. The whole tree is traversed, not just the top level, because
// fallback patterns (try primary import, except use secondary) bury
// imports inside blocks and both branches must reach classification.
func ExtractImports(root *sitter.Node, source []byte) []ImportRecord {
	var records []ImportRecord

	pyparse.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			records = append(records, plainImports(n, source)...)
		case "import_from_statement":
			if record, ok := fromImport(n, source); ok {
				records = append(records, record)
			}
		case "future_import_statement":
			records = append(records, futureImport(n, source))
		}
		return true
	})

	return records
}

// plainImports handles `import a.b, c as d`: one record per imported
// module, carrying the alias when present.
func plainImports(node *sitter.Node, source []byte) []ImportRecord {
	line := int(node.StartPoint().Row) + 1
	var records []ImportRecord

	for _, child := range pyparse.NamedChildren(node) {
		switch child.Type() {
		case "dotted_name":
			records = append(records, ImportRecord{
				Module: child.Content(source),
				Line:   line,
			})
		case "aliased_import":
			name := child.ChildByFieldName("name")
			alias := child.ChildByFieldName("alias")
			if name == nil {
				continue
			}
			record := ImportRecord{
				Module: name.Content(source),
				Line:   line,
			}
			if alias != nil {
				record.Alias = alias.Content(source)
			}
			records = append(records, record)
		}
	}

	return records
}

// fromImport handles `from module import name[, name...]`, including
// relative modules (dot-prefixed) and wildcard imports.
func fromImport(node *sitter.Node, source []byte) (ImportRecord, bool) {
	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode == nil {
		return ImportRecord{}, false
	}

	record := ImportRecord{
		// A relative_import node spans exactly the dots plus any
		// trailing dotted name, so its text is the module string.
		Module: moduleNode.Content(source),
		IsFrom: true,
		Line:   int(node.StartPoint().Row) + 1,
	}

	for _, child := range pyparse.NamedChildren(node) {
		if child.StartByte() == moduleNode.StartByte() {
			continue
		}
		appendImportedName(&record, child, source)
	}

	return record, true
}

// futureImport handles `from __future__ import ...`, which tree-sitter
// gives a statement type of its own.
func futureImport(node *sitter.Node, source []byte) ImportRecord {
	record := ImportRecord{
		Module: "__future__",
		IsFrom: true,
		Line:   int(node.StartPoint().Row) + 1,
	}
	for _, child := range pyparse.NamedChildren(node) {
		appendImportedName(&record, child, source)
	}
	return record
}

func appendImportedName(record *ImportRecord, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "dotted_name":
		record.Names = append(record.Names, node.Content(source))
	case "aliased_import":
		if name := node.ChildByFieldName("name"); name != nil {
			record.Names = append(record.Names, name.Content(source))
		}
	case "wildcard_import":
		record.Names = append(record.Names, WildcardName)
	}
}
