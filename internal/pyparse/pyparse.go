// Package pyparse wraps tree-sitter for parsing Python source.
package pyparse

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"testsmith/internal/errors"
)

// Parser parses Python source into tree-sitter syntax trees.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new Python parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// Parse builds the syntax tree for source and returns its root node.
// A tree containing syntax errors fails with *errors.ParseError locating
// the first offending node; file is used only for error reporting.
func (p *Parser) Parse(ctx context.Context, file string, source []byte) (*sitter.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.NewParseError(file, 0, err.Error())
	}

	root := tree.RootNode()
	if root.HasError() {
		line := 1
		message := "invalid syntax"
		if bad := firstErrorNode(root); bad != nil {
			line = int(bad.StartPoint().Row) + 1
			if bad.IsMissing() {
				message = "missing " + bad.Type()
			}
		}
		return nil, errors.NewParseError(file, line, message)
	}

	return root, nil
}

// firstErrorNode finds the first ERROR or missing node in the tree.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		if !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := firstErrorNode(child); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node in the tree in document order. The visit
// function returning false prunes the subtree below that node.
func Walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if !visit(node) {
		return
	}
	for i := uint32(0); i < node.ChildCount(); i++ {
		Walk(node.Child(int(i)), visit)
	}
}

// FindNodes collects every node in the tree whose type is in types.
func FindNodes(root *sitter.Node, types ...string) []*sitter.Node {
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var nodes []*sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if wanted[n.Type()] {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// NamedChildren returns the named children of a node.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// CleanStringLiteral strips prefixes and quotes from a Python string
// literal and trims surrounding whitespace, e.g. r"""x""" -> x.
func CleanStringLiteral(literal string) string {
	s := literal
	for len(s) > 0 {
		c := s[0]
		if c == 'r' || c == 'R' || c == 'b' || c == 'B' || c == 'f' || c == 'F' || c == 'u' || c == 'U' {
			s = s[1:]
			continue
		}
		break
	}

	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			s = s[len(q) : len(s)-len(q)]
			break
		}
	}

	return strings.TrimSpace(s)
}
