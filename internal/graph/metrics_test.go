package graph

import (
	"testing"
)

func TestComputeMetrics(t *testing.T) {
	g := &DependencyGraph{
		Nodes: []Node{
			{Name: "pkg.a", Package: "pkg"},
			{Name: "pkg.b", Package: "pkg"},
		},
		Edges: []Edge{
			{Source: "pkg.a", Target: "pkg.b", Kind: EdgeInternal},
			{Source: "pkg.a", Target: "requests", Kind: EdgeExternal},
			{Source: "pkg.a", Target: "flask", Kind: EdgeExternal},
		},
	}

	metrics := ComputeMetrics(g)

	a := metrics["pkg.a"]
	if a.InternalDependencies != 1 || a.ExternalDependencies != 2 {
		t.Errorf("pkg.a fan-out = %+v, want 1 internal, 2 external", a)
	}
	// coupling = external*2.0 + internal*0.5
	if a.CouplingScore != 4.5 {
		t.Errorf("pkg.a CouplingScore = %v, want 4.5", a.CouplingScore)
	}

	b := metrics["pkg.b"]
	if b.Dependents != 1 {
		t.Errorf("pkg.b Dependents = %d, want 1", b.Dependents)
	}
	if b.CouplingScore != 0 {
		t.Errorf("pkg.b CouplingScore = %v, want 0", b.CouplingScore)
	}
}

func TestComputeMetricsUnresolvedTargetNotADependent(t *testing.T) {
	g := &DependencyGraph{
		Nodes: []Node{{Name: "pkg.a", Package: "pkg"}},
		Edges: []Edge{
			// Internal edge to a module with no node: unresolved import.
			{Source: "pkg.a", Target: "pkg.missing", Kind: EdgeInternal},
		},
	}

	metrics := ComputeMetrics(g)

	a := metrics["pkg.a"]
	if a.InternalDependencies != 1 {
		t.Errorf("InternalDependencies = %d, want 1: fan-out still counts", a.InternalDependencies)
	}
	if _, ok := metrics["pkg.missing"]; ok {
		t.Error("unresolved target must not gain a metrics entry")
	}
}

func TestComputeMetricsMonotonicity(t *testing.T) {
	base := &DependencyGraph{
		Nodes: []Node{{Name: "m", Package: "m"}},
		Edges: []Edge{{Source: "m", Target: "requests", Kind: EdgeExternal}},
	}
	more := &DependencyGraph{
		Nodes: base.Nodes,
		Edges: append(append([]Edge{}, base.Edges...), Edge{Source: "m", Target: "flask", Kind: EdgeExternal}),
	}

	if ComputeMetrics(more)["m"].CouplingScore <= ComputeMetrics(base)["m"].CouplingScore {
		t.Error("adding an external dependency must raise the coupling score")
	}
}

func TestComputeMetricsEmptyGraph(t *testing.T) {
	metrics := ComputeMetrics(&DependencyGraph{})
	if len(metrics) != 0 {
		t.Errorf("empty graph should yield no metrics, got %v", metrics)
	}
}
