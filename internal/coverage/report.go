package coverage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// reportLimit caps the priority table; everything past it is summarized.
const reportLimit = 20

// RenderReport produces the markdown coverage-gap report. The raw
// coverage map is needed alongside the gaps for aggregate statistics,
// since covered files never appear as gaps.
func RenderReport(gaps []Gap, coverage map[string]Status) string {
	var b strings.Builder

	b.WriteString("# TestSmith Coverage Gap Analysis\n\n")
	b.WriteString("## Summary\n\n")

	total := len(coverage)
	counts := map[Status]int{}
	for _, status := range coverage {
		counts[status]++
	}

	writeCount := func(label string, status Status) {
		n := counts[status]
		if total > 0 {
			b.WriteString(fmt.Sprintf("- **%s**: %d (%.1f%%)\n", label, n, float64(n)/float64(total)*100))
		} else {
			b.WriteString(fmt.Sprintf("- **%s**: 0\n", label))
		}
	}

	b.WriteString(fmt.Sprintf("- **Total source files**: %d\n", total))
	writeCount("No test", StatusNoTest)
	writeCount("Skeleton only", StatusSkeletonOnly)
	writeCount("Partial coverage", StatusPartial)
	writeCount("Fully covered", StatusCovered)
	b.WriteString("\n")

	if len(gaps) == 0 {
		b.WriteString("✓ **All source files have complete test coverage!**\n")
		return b.String()
	}

	b.WriteString("## Priority Coverage Gaps\n\n")
	b.WriteString("Files are prioritized by coupling (external dependencies + dependents) and coverage status.\n\n")
	b.WriteString("| Priority | File | Status | Ext Deps | Dependents | Suggested Command |\n")
	b.WriteString("|----------|------|--------|----------|------------|-------------------|\n")

	for i, gap := range gaps {
		if i == reportLimit {
			break
		}
		b.WriteString(fmt.Sprintf("| %d | %s | %s %s | %d | %d | `%s` |\n",
			i+1,
			filepath.Base(gap.SourcePath),
			statusEmoji(gap.Status),
			gap.Status,
			gap.ExternalDeps,
			gap.Dependents,
			gap.SuggestedCommand,
		))
	}

	if len(gaps) > reportLimit {
		b.WriteString(fmt.Sprintf("\n*... and %d more gaps*\n", len(gaps)-reportLimit))
	}

	b.WriteString("\n**Legend:**\n")
	b.WriteString("- ❌ `no_test`: No test file exists\n")
	b.WriteString("- ⚠️ `skeleton_only`: Test file has only TODO stubs\n")
	b.WriteString("- 🔸 `partial`: Test file has some real tests and some TODOs\n")

	return b.String()
}

func statusEmoji(status Status) string {
	switch status {
	case StatusNoTest:
		return "❌"
	case StatusSkeletonOnly:
		return "⚠️"
	default:
		return "🔸"
	}
}
