package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charmingruby/functional/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version, git commit, and build date.`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fgpdemo %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
