package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"testsmith/internal/analyze"
	"testsmith/internal/project"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single Python source file",
	Long: `Analyze builds the project context for the given file and reports its
classified imports and public API surface.

The project root is discovered automatically from the file location
unless a root is pinned in configuration.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalyze(args[0])
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json",
		"Output format: json or yaml")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(sourcePath string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	ctx := newContext()

	analyzer := analyze.NewAnalyzer()
	proj, err := project.BuildContext(ctx, analyzer.Parser(), sourcePath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("project context built", map[string]interface{}{
		"root":     proj.Root,
		"packages": len(proj.PackageMap),
	})

	result, err := analyzer.File(ctx, sourcePath, proj)
	if err != nil {
		// Parse and not-found errors carry their codes in the message.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := formatResponse(result, analyzeFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
