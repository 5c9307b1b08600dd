package main

import (
	"fmt"

	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> [file|-]",
	Short: "Add a maze to the library",
	Long: `Store a maze under a name. The maze is read from the file, or from
stdin when the file is "-" or omitted.

Names are lower case letters, digits, '-' and '_', starting with a letter
or digit. Use --force to replace an existing maze.

Examples:
  maze add spiral spiral.txt
  maze add corner - --description "two by two"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

var (
	addDescription string
	addForce       bool
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "short description of the maze")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "replace an existing maze")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}

	g, _, err := readGrid(args[1:], "")
	if err != nil {
		return err
	}

	m, err := ops.AddMaze(s, args[0], addDescription, g, addForce)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (%dx%d).\n", m.Name, m.Side, m.Side)
	return nil
}
