package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"testsmith/internal/discovery"
	"testsmith/internal/project"
)

var discoverFormat string

var discoverCmd = &cobra.Command{
	Use:   "discover [path]",
	Short: "List source files without tests",
	Long: `Discover lists every Python source file under the given path (or the
whole project) that has no corresponding test file under the test root.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDiscover(startPath(args))
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverFormat, "format", "text",
		"Output format: text, json, or yaml")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(path string) {
	cfg := mustLoadConfig()

	root := cfg.Root
	if root == "" {
		var err error
		root, err = project.FindRoot(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	files := discovery.UntestedIn(path, root, cfg)

	switch discoverFormat {
	case "text":
		for _, f := range files {
			fmt.Println(f)
		}
	default:
		out, err := formatResponse(files, discoverFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}
