package main

import (
	"fmt"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/model"
	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a stored maze in $EDITOR",
	Long: `Open a stored maze file in $VISUAL or $EDITOR.

The edited file is checked before it is saved: the grid must still be a
square of '1' and '0' cells and the name may not change. Exit the editor
without saving to cancel.

Examples:
  maze edit spiral
  EDITOR=nano maze edit spi`,
	Args:              cobra.ExactArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeMazeNames,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}

	name, err := resolveMaze(s, args[0])
	if err != nil {
		return err
	}
	m, err := s.LoadMaze(name)
	if err != nil {
		return err
	}

	content, err := model.EncodeMaze(m)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("# Editing maze %s\n# Rows use '1' for open and '0' for blocked cells.\n\n", name)
	content = append([]byte(header), content...)

	edited, err := cli.EditInEditor(content, ".yaml")
	if err != nil {
		return err
	}

	updated, err := model.DecodeMaze(edited, "edited maze")
	if err != nil {
		return err
	}
	if err := ops.ReplaceMaze(s, name, updated); err != nil {
		return err
	}

	fmt.Printf("%s updated.\n", name)
	return nil
}
