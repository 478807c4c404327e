// Package analyze extracts and classifies the structural facts of a
// single Python source file: its imports and its public surface.
package analyze

import (
	"testsmith/internal/project"
)

// WildcardName is the sentinel recorded for `from x import *`.
const WildcardName = "*"

// ImportRecord is a single import statement parsed from source.
// Module holds the dotted path, or one or more leading dots for a
// relative import. Records are immutable once produced.
type ImportRecord struct {
	Module string   `json:"module"`
	Names  []string `json:"names,omitempty"`
	IsFrom bool     `json:"isFrom"`
	Alias  string   `json:"alias,omitempty"`
	Line   int      `json:"line"`
}

// ImportKind labels where an imported module comes from.
type ImportKind string

const (
	KindStdlib   ImportKind = "stdlib"
	KindInternal ImportKind = "internal"
	KindExternal ImportKind = "external"
)

// ClassifiedImports partitions a file's import records: every record
// appears in exactly one list, original order preserved within each.
type ClassifiedImports struct {
	Stdlib   []ImportRecord `json:"stdlib"`
	Internal []ImportRecord `json:"internal"`
	External []ImportRecord `json:"external"`
}

// Total returns the number of records across all three partitions.
func (c *ClassifiedImports) Total() int {
	return len(c.Stdlib) + len(c.Internal) + len(c.External)
}

// Visibility tags whether a name follows the leading-underscore private
// convention. It is computed once at extraction time so the convention
// lives in one place.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// VisibilityOf classifies a Python name by its prefix.
func VisibilityOf(name string) Visibility {
	if len(name) > 0 && name[0] == '_' {
		return Private
	}
	return Public
}

// MemberKind distinguishes the two top-level member shapes.
type MemberKind string

const (
	KindFunction MemberKind = "function"
	KindClass    MemberKind = "class"
)

// PublicMember is one externally-visible top-level function or class.
// For a class, Parameters holds the constructor's parameters and Methods
// the public method names in declaration order.
type PublicMember struct {
	Name       string     `json:"name"`
	Kind       MemberKind `json:"kind"`
	Parameters []string   `json:"parameters"`
	Methods    []string   `json:"methods,omitempty"`
	Docstring  string     `json:"docstring,omitempty"`
	Visibility Visibility `json:"visibility"`
}

// AnalysisResult is the complete analysis of one source file. Results are
// created fresh per file and never cached; re-analysis re-reads the file.
type AnalysisResult struct {
	SourcePath string            `json:"sourcePath"`
	ModuleName string            `json:"moduleName"`
	Imports    ClassifiedImports `json:"imports"`
	PublicAPI  []PublicMember    `json:"publicApi"`
	Project    *project.Context  `json:"-"`
}
