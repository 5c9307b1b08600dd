package main

import (
	"fmt"
	"sort"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check stored mazes for problems",
	Long: `Check every maze in the library.

Checks for:
- Invalid names
- Empty or non-square grids
- Characters other than '1' and '0'
- A side field that does not match the grid
- Files that cannot be read or parsed`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}

	result, err := ops.ValidateLibrary(s)
	if err != nil {
		return err
	}

	if len(result) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	names := make([]string, 0, len(result))
	count := 0
	for name, issues := range result {
		names = append(names, name)
		count += len(issues)
	}
	sort.Strings(names)

	fmt.Printf("Found %d issue(s):\n\n", count)
	for _, name := range names {
		for _, issue := range result[name] {
			fmt.Printf("%s %s: %s\n", name, formatIssueType(issue.Type), issue.Message)
		}
	}

	return fmt.Errorf("%d maze(s) failed validation", len(names))
}

func formatIssueType(t ops.IssueType) string {
	switch t {
	case ops.IssueSideMismatch:
		return cli.Yellow("[side]")
	case ops.IssueInvalidName:
		return cli.Red("[name]")
	case ops.IssueEmptyGrid:
		return cli.Red("[empty]")
	case ops.IssueNonSquare:
		return cli.Red("[shape]")
	case ops.IssueBadCharacter:
		return cli.Red("[char]")
	case ops.IssueUnreadable:
		return cli.Red("[unreadable]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}
