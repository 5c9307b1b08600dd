// Package main is the entry point for the maze CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "maze - find right-and-down paths through square mazes",
	Long: `maze searches square mazes of open ('1') and blocked ('0') cells for a
path from the top-left to the bottom-right corner, moving only right or down.

Dead ends are closed as the search backs out of them, so every cell is
explored at most once. Mazes can be solved straight from a file or stdin,
or kept in a .maze/ library in the current directory.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagLogLevel string
	flagNoColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	// We register our own completion command with maze name completion.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("maze version {{.Version}}\n")
}
