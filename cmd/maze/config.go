package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/logger"
	"github.com/jacksmith/maze/internal/model"
	"github.com/jacksmith/maze/internal/render"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
)

// appConfig is loaded once per invocation by setup.
var appConfig *storage.Config

// setup loads .mazeconfig.yaml and applies logging and color settings.
// Flags win over the config file.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if err := logger.Init(level, os.Stderr); err != nil {
		return &cli.ValidationError{Field: "log level", Message: err.Error()}
	}

	mode := cfg.Color
	if flagNoColor {
		mode = cli.ColorNever
	}
	return cli.ApplyColorMode(mode, os.Stdout)
}

// currentConfig returns the loaded config, or defaults when setup did not run.
func currentConfig() *storage.Config {
	if appConfig == nil {
		return storage.DefaultConfig()
	}
	return appConfig
}

// currentStyle returns the overlay glyphs from config.
func currentStyle() render.Style {
	cfg := currentConfig()
	return render.Style{
		Path:    cfg.PathGlyph,
		Open:    cfg.OpenGlyph,
		Blocked: cfg.BlockedGlyph,
	}
}

// resolveMaze expands a maze name or unique prefix to a stored name.
func resolveMaze(s *storage.Storage, name string) (string, error) {
	names, err := s.ListMazes()
	if err != nil {
		return "", err
	}
	return cli.MatchName(model.NormalizeName(name), names)
}

// readGrid loads a grid from a stored maze (when name is set), a file, or
// stdin for "-" and no argument. It returns the grid and a label for output.
func readGrid(args []string, name string) (model.Grid, string, error) {
	if name != "" {
		s, err := storage.Open(".")
		if err != nil {
			return nil, "", err
		}
		resolved, err := resolveMaze(s, name)
		if err != nil {
			return nil, "", err
		}
		m, err := s.LoadMaze(resolved)
		if err != nil {
			return nil, "", err
		}
		g, err := m.ParseGrid()
		if err != nil {
			return nil, "", err
		}
		return g, resolved, nil
	}

	if len(args) == 0 || args[0] == "-" {
		g, err := model.ParseGrid(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("stdin: %w", err)
		}
		return g, "", nil
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", &cli.NotFoundError{Type: "file", Name: path}
		}
		return nil, "", err
	}
	defer f.Close()

	g, err := model.ParseGrid(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return g, "", nil
}
