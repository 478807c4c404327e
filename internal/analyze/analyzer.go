package analyze

import (
	"context"
	"os"

	"testsmith/internal/errors"
	"testsmith/internal/paths"
	"testsmith/internal/project"
	"testsmith/internal/pyparse"
)

// Analyzer runs the full per-file pipeline: read, parse once, extract and
// classify imports, and extract the public surface against the same tree.
//
// An Analyzer holds a single tree-sitter parser and is not safe for
// concurrent use; give each worker its own.
type Analyzer struct {
	parser *pyparse.Parser
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{parser: pyparse.NewParser()}
}

// Parser exposes the underlying parser for callers that need to parse
// auxiliary files (conftest detection) with the same instance.
func (a *Analyzer) Parser() *pyparse.Parser {
	return a.parser
}

// File analyzes one source file against the given project context.
//
// A missing file fails with FILE_NOT_FOUND and an unparsable one with
// PARSE_ERROR; the two must stay distinguishable. Errors surface to the
// caller unmodified; only batch orchestrators downgrade them to skips.
func (a *Analyzer) File(ctx context.Context, sourcePath string, proj *project.Context) (*AnalysisResult, error) {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFoundError(sourcePath, err)
		}
		return nil, errors.New(errors.InternalError, "cannot read source file", err)
	}

	tree, err := a.parser.Parse(ctx, sourcePath, source)
	if err != nil {
		return nil, err
	}

	records := ExtractImports(tree, source)

	return &AnalysisResult{
		SourcePath: sourcePath,
		// The module name is the file stem; dotted-path derivation is
		// the consuming generator's concern.
		ModuleName: paths.Stem(sourcePath),
		Imports:    ClassifyAll(records, proj.PackageMap),
		PublicAPI:  Inspect(tree, source),
		Project:    proj,
	}, nil
}
