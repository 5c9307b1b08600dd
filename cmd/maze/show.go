package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/maze/internal/render"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored maze",
	Long: `Print a stored maze with its metadata. Use --raw to print only the rows
in the same format solve reads.

Names may be abbreviated to any unique prefix.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeMazeNames,
}

var showRaw bool

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the rows only")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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
	g, err := m.ParseGrid()
	if err != nil {
		return err
	}

	if showRaw {
		fmt.Print(g.String())
		return nil
	}

	fmt.Printf("Name:    %s\n", m.Name)
	if m.Description != "" {
		fmt.Printf("About:   %s\n", m.Description)
	}
	fmt.Printf("Size:    %dx%d (%d open)\n", g.Side(), g.Side(), g.OpenCount())
	if !m.Created.IsZero() {
		fmt.Printf("Created: %s\n", m.Created.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return render.Overlay(os.Stdout, g, nil, currentStyle())
}
