package render

import (
	"strings"
	"testing"

	"testsmith/internal/graph"
)

func sampleGraph() (*graph.DependencyGraph, map[string]graph.ModuleMetrics) {
	g := &graph.DependencyGraph{
		Nodes: []graph.Node{
			{Name: "pkg.a", Path: "/p/src/pkg/a.py", Package: "pkg", ExternalDepCount: 2},
			{Name: "pkg.b", Path: "/p/src/pkg/b.py", Package: "pkg"},
		},
		Edges: []graph.Edge{
			{Source: "pkg.a", Target: "pkg.b", Kind: graph.EdgeInternal},
			{Source: "pkg.a", Target: "requests", Kind: graph.EdgeExternal},
			{Source: "pkg.a", Target: "flask", Kind: graph.EdgeExternal},
		},
	}
	return g, graph.ComputeMetrics(g)
}

func TestMermaidStructure(t *testing.T) {
	g, metrics := sampleGraph()
	out := Mermaid(g, metrics)

	if !strings.HasPrefix(out, "```mermaid\ngraph TD") {
		t.Errorf("output should open a mermaid block:\n%s", out)
	}
	if !strings.HasSuffix(out, "```") {
		t.Error("output should close the mermaid block")
	}

	for _, want := range []string{
		"subgraph pkg",
		"subgraph External",
		"pkg_a[pkg.a]",
		"pkg_b[pkg.b]",
		"requests[requests]:::external",
		"pkg_a --> pkg_b",
		"pkg_a -.-> requests",
		"classDef lowCoupling",
		"classDef external",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMermaidCouplingClasses(t *testing.T) {
	g, metrics := sampleGraph()
	out := Mermaid(g, metrics)

	// pkg.a: 2 external + 1 internal = 4.5 -> medium. pkg.b: 0 -> low.
	if !strings.Contains(out, "pkg_a[pkg.a]:::mediumCoupling") {
		t.Errorf("pkg.a should be medium coupling:\n%s", out)
	}
	if !strings.Contains(out, "pkg_b[pkg.b]:::lowCoupling") {
		t.Errorf("pkg.b should be low coupling:\n%s", out)
	}
}

func TestMermaidDeterministic(t *testing.T) {
	g, metrics := sampleGraph()
	if Mermaid(g, metrics) != Mermaid(g, metrics) {
		t.Error("rendering the same graph twice must agree byte for byte")
	}
}

func TestMermaidEmptyGraph(t *testing.T) {
	out := Mermaid(&graph.DependencyGraph{}, nil)
	if !strings.Contains(out, "graph TD") {
		t.Errorf("empty graph should still render a valid block:\n%s", out)
	}
	if strings.Contains(out, "subgraph External") {
		t.Error("no external subgraph without external edges")
	}
}

func TestMetricsTable(t *testing.T) {
	_, metrics := sampleGraph()
	out := MetricsTable(metrics)

	if !strings.Contains(out, "| Module | Internal Deps | External Deps | Dependents | Coupling Score |") {
		t.Errorf("missing table header:\n%s", out)
	}

	// Sorted by coupling descending: pkg.a (4.5) before pkg.b (0).
	aIdx := strings.Index(out, "| pkg.a |")
	bIdx := strings.Index(out, "| pkg.b |")
	if aIdx < 0 || bIdx < 0 {
		t.Fatalf("missing module rows:\n%s", out)
	}
	if aIdx > bIdx {
		t.Error("rows should sort by coupling score descending")
	}
	if !strings.Contains(out, "| pkg.a | 1 | 2 | 0 | 4.5 |") {
		t.Errorf("pkg.a row malformed:\n%s", out)
	}
}
