package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored mazes",
	Long: `List the mazes in the library with their size, open cell count and
whether the right/down search finds a path.

Mazes are sorted by name.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listSolvable bool

func init() {
	listCmd.Flags().BoolVar(&listSolvable, "solvable", false, "show only mazes with a path")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}

	summaries, err := ops.ListMazes(s)
	if err != nil {
		return err
	}

	table := cli.NewTable()
	table.SetMaxWidth(4, maxDescriptionWidth)
	shown := 0
	for _, sum := range summaries {
		if sum.Err != nil {
			if !listSolvable {
				table.AddRow(sum.Name, "-", "-", cli.Red("[invalid]"), sum.Err.Error())
				shown++
			}
			continue
		}
		if listSolvable && !sum.Solvable {
			continue
		}
		table.AddRow(
			sum.Name,
			fmt.Sprintf("%dx%d", sum.Side, sum.Side),
			fmt.Sprintf("%d open", sum.Open),
			formatSolvable(sum.Solvable),
			sum.Description,
		)
		shown++
	}

	if shown == 0 {
		fmt.Println("No mazes found.")
		return nil
	}
	table.Render(os.Stdout)
	return nil
}

// maxDescriptionWidth caps the description column in listings.
const maxDescriptionWidth = 50

func formatSolvable(ok bool) string {
	if ok {
		return cli.Green("[path]")
	}
	return cli.Yellow("[no path]")
}
