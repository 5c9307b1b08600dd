package main

import (
	"fmt"

	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a maze from the library",
	Long: `Delete a stored maze. The name must match exactly; prefixes are not
accepted here.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeMazeNames,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}

	if err := ops.RemoveMaze(s, args[0]); err != nil {
		return err
	}

	fmt.Printf("Removed %s.\n", args[0])
	return nil
}
