package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/logger"
	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file|-]",
	Short: "Search a maze for a right/down path",
	Long: `Search a maze for a path from the top-left to the bottom-right cell,
moving only right or down.

The maze is read from the given file, from stdin when the argument is "-"
or omitted, or from the library with --name. Each line is one row of '1'
(open) and '0' (blocked) cells; the maze must be square.

A found path is printed as "PATH FOUND!" followed by the path grid, where
'1' marks cells on the path. A maze without a path prints "no path found."
and still exits 0.

Examples:
  maze solve maze.txt
  cat maze.txt | maze solve
  maze solve --name spiral --render overlay
  maze solve maze.txt --format yaml --show-closed`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runSolve,
	ValidArgsFunction: completeFiles,
}

var (
	solveName       string
	solveRender     string
	solveFormat     string
	solveShowClosed bool
)

func init() {
	solveCmd.Flags().StringVarP(&solveName, "name", "n", "", "solve a maze from the library")
	solveCmd.Flags().StringVar(&solveRender, "render", "", "text rendering: dump or overlay (default from config)")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "output format: text or yaml")
	solveCmd.Flags().BoolVar(&solveShowClosed, "show-closed", false, "also show the maze as the search left it")

	solveCmd.RegisterFlagCompletionFunc("name", completeMazeNames)
	solveCmd.RegisterFlagCompletionFunc("render", cobra.FixedCompletions(
		[]string{render.ModeDump, render.ModeOverlay}, cobra.ShellCompDirectiveNoFileComp))
	solveCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	mode := solveRender
	if mode == "" {
		mode = currentConfig().Render
	}
	if mode != render.ModeDump && mode != render.ModeOverlay {
		return &cli.ValidationError{Field: "render mode", Message: fmt.Sprintf("%q (want dump or overlay)", mode)}
	}
	if solveFormat != "text" && solveFormat != "yaml" {
		return &cli.ValidationError{Field: "format", Message: fmt.Sprintf("%q (want text or yaml)", solveFormat)}
	}

	g, name, err := readGrid(args, solveName)
	if err != nil {
		return err
	}

	res := ops.SolveGrid(g, ops.SolveOptions{Tracer: searchTracer()})
	logger.Log.WithFields(logrus.Fields{
		"side":     g.Side(),
		"found":    res.Found,
		"steps":    res.Stats.Steps,
		"retreats": res.Stats.Retreats,
		"elapsed":  res.Stats.Duration,
	}).Info("search finished")

	if solveFormat == "yaml" {
		closed := res.Closed
		if !solveShowClosed {
			closed = nil
		}
		return render.WriteYAML(os.Stdout, render.NewReport(name, g.Side(), res.Path, res.Found, res.Stats, closed))
	}

	if !res.Found || mode == render.ModeDump {
		if err := render.Result(os.Stdout, res.Path, res.Found); err != nil {
			return err
		}
	} else {
		fmt.Println(cli.Green(render.FoundHeader))
		if err := render.Overlay(os.Stdout, res.Original, res.Path, currentStyle()); err != nil {
			return err
		}
	}

	if solveShowClosed {
		fmt.Printf("\nClosed by the search (%d retreats):\n", res.Stats.Retreats)
		return render.Overlay(os.Stdout, res.Closed, nil, currentStyle())
	}
	return nil
}
