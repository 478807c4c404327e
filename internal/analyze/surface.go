package analyze

import (
	sitter "github.com/smacker/go-tree-sitter"

	"testsmith/internal/pyparse"
)

// Inspect extracts the public surface of a module: top-level classes and
// functions whose names are not private. Only the module body is walked,
// never nested scopes. Classes come first, then functions, each group in
// declaration order; downstream generation depends on that ordering.
func Inspect(root *sitter.Node, source []byte) []PublicMember {
	var classes []PublicMember
	var functions []PublicMember

	for _, stmt := range pyparse.NamedChildren(root) {
		node := stmt
		if node.Type() == "decorated_definition" {
			if def := node.ChildByFieldName("definition"); def != nil {
				node = def
			}
		}

		switch node.Type() {
		case "class_definition":
			if member, ok := classMember(node, source); ok {
				classes = append(classes, member)
			}
		case "function_definition":
			if member, ok := functionMember(node, source); ok {
				functions = append(functions, member)
			}
		}
	}

	return append(classes, functions...)
}

func functionMember(node *sitter.Node, source []byte) (PublicMember, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return PublicMember{}, false
	}
	name := nameNode.Content(source)
	if VisibilityOf(name) == Private {
		return PublicMember{}, false
	}

	return PublicMember{
		Name:       name,
		Kind:       KindFunction,
		Parameters: parameterNames(node, source),
		Docstring:  docstring(node, source),
		Visibility: Public,
	}, true
}

func classMember(node *sitter.Node, source []byte) (PublicMember, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return PublicMember{}, false
	}
	name := nameNode.Content(source)
	if VisibilityOf(name) == Private {
		return PublicMember{}, false
	}

	member := PublicMember{
		Name:       name,
		Kind:       KindClass,
		Docstring:  docstring(node, source),
		Visibility: Public,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return member, true
	}

	for _, stmt := range pyparse.NamedChildren(body) {
		method := stmt
		if method.Type() == "decorated_definition" {
			if def := method.ChildByFieldName("definition"); def != nil {
				method = def
			}
		}
		if method.Type() != "function_definition" {
			continue
		}
		methodName := method.ChildByFieldName("name")
		if methodName == nil {
			continue
		}

		// The constructor is always traversed despite its name: its
		// parameters become the class's, and it never lands in Methods.
		switch n := methodName.Content(source); {
		case n == "__init__":
			member.Parameters = parameterNames(method, source)
		case VisibilityOf(n) == Public:
			member.Methods = append(member.Methods, n)
		}
	}

	return member, true
}

// parameterNames collects the positional parameter names of a function
// node, excluding a leading self/cls receiver. Collection stops at *args
// or the bare * separator, mirroring how the runtime AST exposes only the
// positional argument list.
func parameterNames(fn *sitter.Node, source []byte) []string {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var names []string
	for _, param := range pyparse.NamedChildren(params) {
		var name string
		switch param.Type() {
		case "identifier":
			name = param.Content(source)
		case "typed_parameter":
			if len(pyparse.NamedChildren(param)) > 0 {
				inner := param.NamedChild(0)
				if inner.Type() == "identifier" {
					name = inner.Content(source)
				}
			}
		case "default_parameter", "typed_default_parameter":
			if n := param.ChildByFieldName("name"); n != nil && n.Type() == "identifier" {
				name = n.Content(source)
			}
		case "list_splat_pattern", "dictionary_splat_pattern", "keyword_separator":
			return names
		case "positional_separator":
			continue
		}

		if name == "" {
			continue
		}
		if len(names) == 0 && (name == "self" || name == "cls") && param.StartByte() == firstParamStart(params) {
			continue
		}
		names = append(names, name)
	}

	return names
}

func firstParamStart(params *sitter.Node) uint32 {
	children := pyparse.NamedChildren(params)
	if len(children) == 0 {
		return 0
	}
	return children[0].StartByte()
}

// docstring returns the cleaned leading string literal of a definition's
// body, or empty when there is none.
func docstring(node *sitter.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}

	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}

	expr := first.NamedChild(0)
	if expr.Type() != "string" {
		return ""
	}
	return pyparse.CleanStringLiteral(expr.Content(source))
}
