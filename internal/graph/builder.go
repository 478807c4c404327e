package graph

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"testsmith/internal/analyze"
	"testsmith/internal/config"
	"testsmith/internal/logging"
	"testsmith/internal/paths"
	"testsmith/internal/project"
)

// Builder runs per-file analysis across the project and assembles the
// dependency graph. The build is best-effort: a file that fails analysis
// is logged and skipped, never aborting the whole graph.
type Builder struct {
	cfg     *config.Config
	logger  *logging.Logger
	workers int
}

// NewBuilder creates a Builder with one worker per available core.
func NewBuilder(cfg *config.Config, logger *logging.Logger) *Builder {
	return &Builder{
		cfg:     cfg,
		logger:  logger,
		workers: runtime.NumCPU(),
	}
}

// partial is one worker's share of the growing graph. Workers never share
// these; the builder merges them in shard order at the end, which keeps
// the output deterministic.
type partial struct {
	nodes []Node
	edges []Edge
}

// Build enumerates every eligible source file under the project root and
// analyzes them across a bounded worker pool.
func (b *Builder) Build(ctx context.Context, proj *project.Context) (*DependencyGraph, error) {
	files := b.enumerate(proj.Root)

	shards := shard(files, b.workers)
	partials := make([]partial, len(shards))

	g, ctx := errgroup.WithContext(ctx)
	for i, files := range shards {
		i, files := i, files
		g.Go(func() error {
			// Each worker owns its parser; they are stateful.
			analyzer := analyze.NewAnalyzer()
			for _, path := range files {
				if err := ctx.Err(); err != nil {
					return err
				}
				b.analyzeInto(ctx, analyzer, proj, path, &partials[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	graph := &DependencyGraph{}
	for _, p := range partials {
		graph.Nodes = append(graph.Nodes, p.nodes...)
		graph.Edges = append(graph.Edges, p.edges...)
	}
	return graph, nil
}

// analyzeInto analyzes a single file and appends its node and edges to
// the worker's partial. Analysis failures are data-dependent, so they are
// downgraded to a logged skip here and nowhere deeper.
func (b *Builder) analyzeInto(ctx context.Context, analyzer *analyze.Analyzer, proj *project.Context, path string, p *partial) {
	result, err := analyzer.File(ctx, path, proj)
	if err != nil {
		b.logger.Warn("Skipping file that failed analysis", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	rel := paths.Canonicalize(path, proj.Root)
	moduleName := paths.DottedModuleName(rel)

	externalRoots := make(map[string]bool)
	for _, record := range result.Imports.External {
		externalRoots[analyze.ExtractRoot(record.Module)] = true
	}

	p.nodes = append(p.nodes, Node{
		Name:             moduleName,
		Path:             path,
		Package:          analyze.ExtractRoot(moduleName),
		ExternalDepCount: len(externalRoots),
	})

	for _, record := range result.Imports.Internal {
		p.edges = append(p.edges, Edge{
			Source: moduleName,
			Target: record.Module,
			Kind:   EdgeInternal,
		})
	}
	// External edges are not deduplicated across records; only the
	// node's ExternalDepCount summary collapses them.
	for _, record := range result.Imports.External {
		p.edges = append(p.edges, Edge{
			Source: moduleName,
			Target: analyze.ExtractRoot(record.Module),
			Kind:   EdgeExternal,
		})
	}
}

// enumerate lists the analyzable source files: every .py file under the
// root except excluded directories, the test root, test-named files, and
// package initializers.
func (b *Builder) enumerate(root string) []string {
	testRootName := filepath.Base(filepath.FromSlash(strings.TrimSuffix(b.cfg.TestRoot, "/")))

	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if b.cfg.IsExcluded(name) || name == testRootName {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, ".py") {
			return nil
		}
		if name == "__init__.py" || paths.IsTestFile(name) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	return files
}

// shard splits files into at most n contiguous chunks.
func shard(files []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	if len(files) < n {
		n = len(files)
	}
	if n == 0 {
		return nil
	}

	shards := make([][]string, 0, n)
	size := (len(files) + n - 1) / n
	for start := 0; start < len(files); start += size {
		end := start + size
		if end > len(files) {
			end = len(files)
		}
		shards = append(shards, files[start:end])
	}
	return shards
}
