// Package render turns dependency graphs and metrics into presentation
// formats; it performs no structural computation of its own.
package render

import (
	"fmt"
	"sort"
	"strings"

	"testsmith/internal/graph"
)

// Mermaid renders the dependency graph as a Mermaid flowchart: internal
// packages as subgraphs with coupling-colored nodes, external root
// packages in their own subgraph, solid internal edges and dotted
// external ones.
func Mermaid(g *graph.DependencyGraph, metrics map[string]graph.ModuleMetrics) string {
	var b strings.Builder
	b.WriteString("```mermaid\n")
	b.WriteString("graph TD\n\n")

	packages := make(map[string][]graph.Node)
	for _, node := range g.Nodes {
		packages[node.Package] = append(packages[node.Package], node)
	}
	packageNames := make([]string, 0, len(packages))
	for name := range packages {
		packageNames = append(packageNames, name)
	}
	sort.Strings(packageNames)

	for _, pkg := range packageNames {
		b.WriteString(fmt.Sprintf("    subgraph %s\n", pkg))
		for _, node := range packages[pkg] {
			b.WriteString(fmt.Sprintf("        %s[%s]%s\n", nodeID(node.Name), node.Name, couplingClass(metrics, node.Name)))
		}
		b.WriteString("    end\n\n")
	}

	external := make(map[string]bool)
	for _, edge := range g.Edges {
		if edge.Kind == graph.EdgeExternal {
			external[edge.Target] = true
		}
	}
	if len(external) > 0 {
		names := make([]string, 0, len(external))
		for name := range external {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("    subgraph External\n")
		for _, name := range names {
			b.WriteString(fmt.Sprintf("        %s[%s]:::external\n", nodeID(name), name))
		}
		b.WriteString("    end\n\n")
	}

	for _, edge := range g.Edges {
		arrow := "-->"
		if edge.Kind == graph.EdgeExternal {
			arrow = "-.->"
		}
		b.WriteString(fmt.Sprintf("    %s %s %s\n", nodeID(edge.Source), arrow, nodeID(edge.Target)))
	}

	b.WriteString("\n")
	b.WriteString("    classDef lowCoupling fill:#90EE90,stroke:#333,stroke-width:2px\n")
	b.WriteString("    classDef mediumCoupling fill:#FFD700,stroke:#333,stroke-width:2px\n")
	b.WriteString("    classDef highCoupling fill:#FF6347,stroke:#333,stroke-width:2px\n")
	b.WriteString("    classDef external fill:#87CEEB,stroke:#333,stroke-width:2px\n")
	b.WriteString("```")

	return b.String()
}

// nodeID sanitizes a module or package name into a Mermaid identifier.
func nodeID(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}

func couplingClass(metrics map[string]graph.ModuleMetrics, name string) string {
	metric, ok := metrics[name]
	if !ok {
		return ""
	}
	switch {
	case metric.CouplingScore < 2:
		return ":::lowCoupling"
	case metric.CouplingScore < 5:
		return ":::mediumCoupling"
	default:
		return ":::highCoupling"
	}
}

// MetricsTable renders the per-module metrics as a markdown table sorted
// by coupling score descending.
func MetricsTable(metrics map[string]graph.ModuleMetrics) string {
	sorted := make([]graph.ModuleMetrics, 0, len(metrics))
	for _, metric := range metrics {
		sorted = append(sorted, metric)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CouplingScore != sorted[j].CouplingScore {
			return sorted[i].CouplingScore > sorted[j].CouplingScore
		}
		return sorted[i].Name < sorted[j].Name
	})

	var b strings.Builder
	b.WriteString("## Module Coupling Metrics\n\n")
	b.WriteString("| Module | Internal Deps | External Deps | Dependents | Coupling Score |\n")
	b.WriteString("|--------|---------------|---------------|------------|----------------|\n")

	for _, metric := range sorted {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %.1f |\n",
			metric.Name,
			metric.InternalDependencies,
			metric.ExternalDependencies,
			metric.Dependents,
			metric.CouplingScore,
		))
	}

	b.WriteString("\n**Legend:**\n")
	b.WriteString("- **Coupling Score** = (External Deps × 2) + (Internal Deps × 0.5)\n")
	b.WriteString("- Higher scores indicate modules that are harder to test in isolation\n")

	return b.String()
}
