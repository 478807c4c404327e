package coverage

import (
	"fmt"
	"sort"
	"strings"

	"testsmith/internal/graph"
	"testsmith/internal/paths"
)

// PrioritizeGaps combines the coverage map with module metrics into a
// ranked gap list, highest priority first. Covered files are not gaps and
// are dropped outright.
//
// Source paths are visited in lexical order and the sort is stable, so
// equal scores keep that encounter order across repeated runs.
func PrioritizeGaps(coverage map[string]Status, metrics map[string]graph.ModuleMetrics) []Gap {
	sourcePaths := make([]string, 0, len(coverage))
	for path := range coverage {
		sourcePaths = append(sourcePaths, path)
	}
	sort.Strings(sourcePaths)

	var gaps []Gap
	for _, sourcePath := range sourcePaths {
		status := coverage[sourcePath]
		if status == StatusCovered {
			continue
		}

		externalDeps, dependents := resolveMetric(sourcePath, metrics)

		gaps = append(gaps, Gap{
			SourcePath:       sourcePath,
			Status:           status,
			PriorityScore:    float64(externalDeps)*2 + float64(dependents)*3 + statusWeight[status],
			ExternalDeps:     externalDeps,
			Dependents:       dependents,
			SuggestedCommand: suggestedCommand(sourcePath, status),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].PriorityScore > gaps[j].PriorityScore
	})

	return gaps
}

// resolveMetric finds the metrics entry for a source file: exact
// module-name match first, then a substring/suffix fallback for layout
// mismatches. No match defaults both counts to zero.
func resolveMetric(sourcePath string, metrics map[string]graph.ModuleMetrics) (externalDeps, dependents int) {
	moduleName := paths.Stem(sourcePath)

	if metric, ok := metrics[moduleName]; ok {
		return metric.ExternalDependencies, metric.Dependents
	}

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.Contains(name, moduleName) || strings.HasSuffix(name, moduleName) {
			metric := metrics[name]
			return metric.ExternalDependencies, metric.Dependents
		}
	}

	return 0, 0
}

func suggestedCommand(sourcePath string, status Status) string {
	if status == StatusNoTest {
		return fmt.Sprintf("testsmith %s", sourcePath)
	}
	return fmt.Sprintf("testsmith --generate-bodies %s", sourcePath)
}
