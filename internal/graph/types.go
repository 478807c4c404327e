// Package graph assembles the whole-project dependency graph and derives
// per-module coupling metrics from it.
package graph

// EdgeKind labels a dependency edge.
type EdgeKind string

const (
	EdgeInternal EdgeKind = "internal"
	EdgeExternal EdgeKind = "external"
)

// Node is one analyzable module. Name is the dotted module path relative
// to the first-party source root; Package is its first dotted segment.
type Node struct {
	Name             string `json:"name"`
	Path             string `json:"path"`
	Package          string `json:"package"`
	ExternalDepCount int    `json:"externalDepCount"`
}

// Edge is a directed dependency from one module to another module or to
// an external root package.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
}

// DependencyGraph holds one node per analyzable module plus every
// dependency edge. Duplicate source->target pairs are kept on purpose:
// multiplicity reflects import-statement count and weights the renderer.
// Callers must not rely on slice order for identity, only on names.
type DependencyGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ModuleMetrics are the derived per-module coupling numbers.
type ModuleMetrics struct {
	Name                 string  `json:"name"`
	InternalDependencies int     `json:"internalDependencies"`
	ExternalDependencies int     `json:"externalDependencies"`
	Dependents           int     `json:"dependents"`
	CouplingScore        float64 `json:"couplingScore"`
}
