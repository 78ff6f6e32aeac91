package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charmingruby/functional/internal/demo"
)

var suitesCmd = &cobra.Command{
	Use:   "suites",
	Short: "List the available demonstration suites",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, s := range demo.Suites() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.Name, s.Description); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suitesCmd)
}
