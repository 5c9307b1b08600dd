package main

import (
	"os"
	"strings"

	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:       "completion <shell>",
	Short:     "Print a shell completion script",
	ValidArgs: []string{"bash", "zsh", "fish"},
	Long: `Print a completion script for bash, zsh or fish. Stored maze names
are completed for solve --name, show, edit and rm.

  $ source <(maze completion bash)
  $ maze completion zsh > "${fpath[1]}/_maze"
  $ maze completion fish > ~/.config/fish/completions/maze.fish
`,
}

func shellCompletionCmd(shell string, gen func() error) *cobra.Command {
	return &cobra.Command{
		Use:   shell,
		Short: "Print the " + shell + " completion script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gen()
		},
	}
}

func init() {
	completionCmd.AddCommand(
		shellCompletionCmd("bash", func() error { return rootCmd.GenBashCompletionV2(os.Stdout, true) }),
		shellCompletionCmd("zsh", func() error { return rootCmd.GenZshCompletion(os.Stdout) }),
		shellCompletionCmd("fish", func() error { return rootCmd.GenFishCompletion(os.Stdout, true) }),
	)
	rootCmd.AddCommand(completionCmd)
}

// completeMazeNames completes stored maze names with their descriptions.
func completeMazeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := storage.Open(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := s.ListMazes()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, name := range names {
		if !strings.HasPrefix(name, toCompleteLower) {
			continue
		}
		if m, err := s.LoadMaze(name); err == nil && m.Description != "" {
			completions = append(completions, name+"\t"+m.Description)
		} else {
			completions = append(completions, name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeFiles falls back to file completion for the maze argument.
func completeFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
