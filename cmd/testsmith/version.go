package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"testsmith/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the testsmith version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("testsmith version %s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
