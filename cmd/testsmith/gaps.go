package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"testsmith/internal/analyze"
	"testsmith/internal/coverage"
	"testsmith/internal/graph"
	"testsmith/internal/project"
)

var (
	gapsOutput string
	gapsFormat string
)

var gapsCmd = &cobra.Command{
	Use:   "gaps [path]",
	Short: "Report prioritized test coverage gaps",
	Long: `Gaps scans the project for source files without meaningful tests,
cross-references the dependency graph, and emits a report ordered by
priority: heavily depended-on modules with many external dependencies
come first.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGaps(startPath(args))
	},
}

func init() {
	gapsCmd.Flags().StringVarP(&gapsOutput, "output", "o", "testsmith_coverage_report.md",
		"Output file path, or - for stdout")
	gapsCmd.Flags().StringVar(&gapsFormat, "format", "markdown",
		"Output format: markdown, json, or yaml")
	rootCmd.AddCommand(gapsCmd)
}

func runGaps(path string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	ctx := newContext()

	analyzer := analyze.NewAnalyzer()
	proj, err := project.BuildContext(ctx, analyzer.Parser(), path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	builder := graph.NewBuilder(cfg, logger)
	g, err := builder.Build(ctx, proj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	metrics := graph.ComputeMetrics(g)

	cov := coverage.DetectCoverage(proj.Root, cfg)
	gaps := coverage.PrioritizeGaps(cov, metrics)

	var out string
	switch gapsFormat {
	case "markdown":
		out = coverage.RenderReport(gaps, cov)
	default:
		out, err = formatResponse(gaps, gapsFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := writeOutput(gapsOutput, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	if gapsOutput != "-" {
		logger.Info("coverage report written", map[string]interface{}{
			"output": gapsOutput,
			"gaps":   len(gaps),
		})
	}
}
