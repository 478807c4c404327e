package graph

// Coupling weights: external dependencies are harder to isolate in tests
// than internal ones, so they count four times as much.
const (
	externalWeight = 2.0
	internalWeight = 0.5
)

// ComputeMetrics derives per-module fan-in/fan-out and a coupling score
// from the graph, keyed by module name.
//
// Dependents count only incoming internal edges whose target is a known
// node: an edge pointing at a name with no corresponding node indicates
// an unresolved internal import and is deliberately excluded.
func ComputeMetrics(g *DependencyGraph) map[string]ModuleMetrics {
	known := make(map[string]bool, len(g.Nodes))
	for _, node := range g.Nodes {
		known[node.Name] = true
	}

	internalDeps := make(map[string]int)
	externalDeps := make(map[string]int)
	dependents := make(map[string]int)

	for _, edge := range g.Edges {
		switch edge.Kind {
		case EdgeInternal:
			internalDeps[edge.Source]++
			if known[edge.Target] {
				dependents[edge.Target]++
			}
		case EdgeExternal:
			externalDeps[edge.Source]++
		}
	}

	metrics := make(map[string]ModuleMetrics, len(g.Nodes))
	for _, node := range g.Nodes {
		internal := internalDeps[node.Name]
		external := externalDeps[node.Name]

		metrics[node.Name] = ModuleMetrics{
			Name:                 node.Name,
			InternalDependencies: internal,
			ExternalDependencies: external,
			Dependents:           dependents[node.Name],
			CouplingScore:        float64(external)*externalWeight + float64(internal)*internalWeight,
		}
	}

	return metrics
}
