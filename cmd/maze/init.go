package main

import (
	"fmt"

	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a maze library",
	Long: `Create a .maze/ directory for storing mazes by name.

Fails if .maze/ already exists in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := storage.Init("."); err != nil {
		return err
	}
	fmt.Println("Initialized maze library in .maze/")
	return nil
}
