package main

import (
	"fmt"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/ops"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Compare the right/down search with free movement",
	Long: `Run the right/down search and a breadth-first search that may move in
all four directions, and report both.

The right/down search cannot find routes that need to go up or left. check
points those mazes out and prints the length of the shortest free route.

Examples:
  maze check maze.txt
  maze check --name spiral`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runCheck,
	ValidArgsFunction: completeFiles,
}

var checkName string

func init() {
	checkCmd.Flags().StringVarP(&checkName, "name", "n", "", "check a maze from the library")
	checkCmd.RegisterFlagCompletionFunc("name", completeMazeNames)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, _, err := readGrid(args, checkName)
	if err != nil {
		return err
	}

	res := ops.CheckGrid(g)

	fmt.Printf("Size:        %dx%d (%d open)\n", g.Side(), g.Side(), g.OpenCount())
	if res.Found {
		fmt.Printf("Right/down:  %s\n", cli.Green("path found"))
	} else {
		fmt.Printf("Right/down:  %s\n", cli.Red("no path"))
	}
	if res.Reachable {
		fmt.Printf("Any route:   %s (%d cells)\n", cli.Green("reachable"), len(res.Route))
	} else {
		fmt.Printf("Any route:   %s\n", cli.Red("unreachable"))
	}
	if res.Detour() {
		fmt.Println(cli.Yellow("The only routes need an up or left move, which the search never makes."))
	}
	return nil
}
