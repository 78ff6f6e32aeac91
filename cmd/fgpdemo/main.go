// Package main is the entry point for fgpdemo, which runs demonstration
// suites over the functional library and logs their results.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang/v2"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fgpdemo",
	Short: "Run demonstrations of currying, fixed points and type classes",
	Long: `fgpdemo exercises the functional library: currying of functions, closures
and methods, recursion through the Y combinator, typed tuples and the
functor, applicative and monad operations over option, result and effect.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (.yaml, .yml or .toml)")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
