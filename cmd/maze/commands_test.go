package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/model"
	"github.com/jacksmith/maze/internal/ops"
	"github.com/jacksmith/maze/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDir changes into a fresh temporary directory.
func setupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cli.SetColorEnabled(false)
	appConfig = nil
	resetSolveFlags()
	return tmpDir
}

// setupTestStorage creates a .maze library with a few mazes.
func setupTestStorage(t *testing.T) (string, *storage.Storage) {
	t.Helper()
	tmpDir := setupTestDir(t)

	s, err := storage.Init(tmpDir)
	require.NoError(t, err)

	add := func(name, description string, rows ...string) {
		g, err := model.ParseRows(rows)
		require.NoError(t, err)
		_, err = ops.AddMaze(s, name, description, g, false)
		require.NoError(t, err)
	}
	add("corner", "two by two", "11", "01")
	add("closed", "", "10", "01")
	add("spiral", "needs a detour", "11111", "00001", "11111", "10000", "11111")
	add("square", "", "111", "111", "111")

	return tmpDir, s
}

func resetSolveFlags() {
	solveName = ""
	solveRender = ""
	solveFormat = "text"
	solveShowClosed = false
}

func writeMazeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// captureOutput runs fn with stdout redirected and returns what it wrote.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

// withStdin replaces os.Stdin with content for the duration of the test.
func withStdin(t *testing.T, content string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	w.Close()

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
	})
}

func TestSolveCommandFromFile(t *testing.T) {
	tmpDir := setupTestDir(t)

	tests := []struct {
		name   string
		maze   string
		output string
	}{
		{
			name:   "all open",
			maze:   "111\n111\n111\n",
			output: "PATH FOUND!\n111\n001\n001\n",
		},
		{
			name:   "single cell",
			maze:   "1\n",
			output: "PATH FOUND!\n1\n",
		},
		{
			name:   "backtracks out of a dead end",
			maze:   "111\n100\n111\n",
			output: "PATH FOUND!\n100\n100\n111\n",
		},
		{
			name:   "no path",
			maze:   "10\n01\n",
			output: "no path found.\n",
		},
		{
			name:   "crlf input",
			maze:   "11\r\n01\r\n\r\n",
			output: "PATH FOUND!\n11\n01\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetSolveFlags()
			path := writeMazeFile(t, tmpDir, tt.maze)

			output, err := captureOutput(t, func() error {
				return runSolve(nil, []string{path})
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.output, output)
		})
	}
}

func TestSolveCommandFromStdin(t *testing.T) {
	setupTestDir(t)
	withStdin(t, "11\n01\n")

	output, err := captureOutput(t, func() error {
		return runSolve(nil, []string{"-"})
	})

	assert.NoError(t, err)
	assert.Equal(t, "PATH FOUND!\n11\n01\n", output)
}

func TestSolveCommandInvalidInput(t *testing.T) {
	tmpDir := setupTestDir(t)

	tests := []struct {
		name    string
		maze    string
		message string
	}{
		{"empty", "", "at least one row"},
		{"non-square", "11\n", "not square"},
		{"bad character", "1x\n11\n", "line 1, column 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMazeFile(t, tmpDir, tt.maze)
			err := runSolve(nil, []string{path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSolveCommandMissingFile(t *testing.T) {
	setupTestDir(t)

	err := runSolve(nil, []string{"nope.txt"})

	var nf *cli.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "file", nf.Type)
}

func TestSolveCommandByName(t *testing.T) {
	setupTestStorage(t)
	solveName = "corn"

	output, err := captureOutput(t, func() error {
		return runSolve(nil, nil)
	})

	assert.NoError(t, err)
	assert.Equal(t, "PATH FOUND!\n11\n01\n", output)
}

func TestSolveCommandOverlay(t *testing.T) {
	setupTestStorage(t)
	solveName = "square"
	solveRender = "overlay"

	output, err := captureOutput(t, func() error {
		return runSolve(nil, nil)
	})

	assert.NoError(t, err)
	assert.Equal(t, "PATH FOUND!\n***\n..*\n..*\n", output)
}

func TestSolveCommandShowClosed(t *testing.T) {
	setupTestStorage(t)
	solveName = "spiral"
	solveShowClosed = true

	output, err := captureOutput(t, func() error {
		return runSolve(nil, nil)
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "no path found.\n"))
	assert.Contains(t, output, "Closed by the search")
	assert.Contains(t, output, "(6 retreats)")
	// Everything the search entered except the origin is closed.
	assert.Contains(t, output, "\n.####\n#####\n....#\n.####\n.....\n")
}

func TestSolveCommandYAML(t *testing.T) {
	setupTestStorage(t)
	solveName = "corner"
	solveFormat = "yaml"

	output, err := captureOutput(t, func() error {
		return runSolve(nil, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "name: corner")
	assert.Contains(t, output, "found: true")
	assert.Contains(t, output, "side: 2")
	assert.Contains(t, output, "- \"11\"")
	assert.Contains(t, output, "advances: 2")
	assert.NotContains(t, output, "closed:")
}

func TestSolveCommandBadFlags(t *testing.T) {
	setupTestDir(t)

	solveRender = "ascii"
	err := runSolve(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render mode")

	resetSolveFlags()
	solveFormat = "json"
	err = runSolve(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestCheckCommand(t *testing.T) {
	setupTestStorage(t)

	tests := []struct {
		name     string
		maze     string
		contains []string
		excludes []string
	}{
		{
			name:     "monotone path",
			maze:     "corner",
			contains: []string{"2x2 (3 open)", "path found", "reachable (3 cells)"},
			excludes: []string{"up or left"},
		},
		{
			name:     "detour",
			maze:     "spiral",
			contains: []string{"no path", "reachable (17 cells)", "up or left"},
		},
		{
			name:     "blocked",
			maze:     "closed",
			contains: []string{"no path", "unreachable"},
			excludes: []string{"up or left"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkName = tt.maze
			defer func() { checkName = "" }()

			output, err := captureOutput(t, func() error {
				return runCheck(nil, nil)
			})

			assert.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestInitCommand(t *testing.T) {
	tmpDir := setupTestDir(t)

	output, err := captureOutput(t, func() error {
		return runInit(nil, nil)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Initialized maze library")
	_, err = os.Stat(filepath.Join(tmpDir, ".maze", "mazes"))
	assert.NoError(t, err)

	err = runInit(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddCommand(t *testing.T) {
	tmpDir, s := setupTestStorage(t)
	addDescription = "from a file"
	addForce = false
	defer func() { addDescription = "" }()

	path := writeMazeFile(t, tmpDir, "110\n010\n011\n")
	output, err := captureOutput(t, func() error {
		return runAdd(nil, []string{"Zigzag", path})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Added zigzag (3x3)")

	m, err := s.LoadMaze("zigzag")
	require.NoError(t, err)
	assert.Equal(t, "from a file", m.Description)
	assert.Equal(t, "110\n010\n011\n", m.Grid)

	err = runAdd(nil, []string{"zigzag", path})
	var exists *ops.MazeExistsError
	assert.ErrorAs(t, err, &exists)

	addForce = true
	defer func() { addForce = false }()
	_, err = captureOutput(t, func() error {
		return runAdd(nil, []string{"zigzag", path})
	})
	assert.NoError(t, err)
}

func TestAddCommandFromStdin(t *testing.T) {
	_, s := setupTestStorage(t)
	withStdin(t, "1\n")

	_, err := captureOutput(t, func() error {
		return runAdd(nil, []string{"dot"})
	})

	require.NoError(t, err)
	assert.True(t, s.MazeExists("dot"))
}

func TestListCommand(t *testing.T) {
	setupTestStorage(t)

	tests := []struct {
		name     string
		solvable bool
		contains []string
		excludes []string
	}{
		{
			name:     "all mazes",
			contains: []string{"closed", "corner", "spiral", "square", "[no path]", "two by two", "5x5"},
		},
		{
			name:     "solvable only",
			solvable: true,
			contains: []string{"corner", "square"},
			excludes: []string{"closed", "spiral"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listSolvable = tt.solvable
			defer func() { listSolvable = false }()

			output, err := captureOutput(t, func() error {
				return runList(nil, nil)
			})

			assert.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestListCommandEmpty(t *testing.T) {
	tmpDir := setupTestDir(t)
	_, err := storage.Init(tmpDir)
	require.NoError(t, err)

	output, err := captureOutput(t, func() error {
		return runList(nil, nil)
	})

	assert.NoError(t, err)
	assert.Equal(t, "No mazes found.\n", output)
}

func TestShowCommand(t *testing.T) {
	setupTestStorage(t)

	output, err := captureOutput(t, func() error {
		return runShow(nil, []string{"cor"})
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Name:    corner")
	assert.Contains(t, output, "About:   two by two")
	assert.Contains(t, output, "2x2 (3 open)")
	assert.Contains(t, output, "\n..\n#.\n")
}

func TestShowCommandRaw(t *testing.T) {
	setupTestStorage(t)
	showRaw = true
	defer func() { showRaw = false }()

	output, err := captureOutput(t, func() error {
		return runShow(nil, []string{"closed"})
	})

	assert.NoError(t, err)
	assert.Equal(t, "10\n01\n", output)
}

func TestShowCommandErrors(t *testing.T) {
	setupTestStorage(t)

	err := runShow(nil, []string{"nothing"})
	var nf *cli.NotFoundError
	assert.ErrorAs(t, err, &nf)

	// "s" matches both spiral and square.
	err = runShow(nil, []string{"s"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestRmCommand(t *testing.T) {
	_, s := setupTestStorage(t)

	output, err := captureOutput(t, func() error {
		return runRm(nil, []string{"corner"})
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Removed corner.")
	assert.False(t, s.MazeExists("corner"))

	err = runRm(nil, []string{"corner"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEditCommand(t *testing.T) {
	_, s := setupTestStorage(t)

	// The editor script replaces the grid with a 3x3 maze.
	script := filepath.Join(t.TempDir(), "edit.sh")
	require.NoError(t, os.WriteFile(script, []byte(`#!/bin/sh
printf 'name: corner\ndescription: edited\ngrid: |\n  111\n  001\n  001\n' > "$1"
`), 0755))
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	output, err := captureOutput(t, func() error {
		return runEdit(nil, []string{"corner"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "corner updated.")

	m, err := s.LoadMaze("corner")
	require.NoError(t, err)
	assert.Equal(t, "edited", m.Description)
	assert.Equal(t, 3, m.Side)
	assert.Equal(t, "111\n001\n001\n", m.Grid)
	assert.False(t, m.Created.IsZero(), "creation time should survive the edit")
}

func TestEditCommandRejectsInvalidGrid(t *testing.T) {
	_, s := setupTestStorage(t)

	script := filepath.Join(t.TempDir(), "edit.sh")
	require.NoError(t, os.WriteFile(script, []byte(`#!/bin/sh
printf 'name: corner\ngrid: |\n  12\n  11\n' > "$1"
`), 0755))
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	err := runEdit(nil, []string{"corner"})
	var invalid *ops.InvalidMazeError
	require.ErrorAs(t, err, &invalid)

	m, err := s.LoadMaze("corner")
	require.NoError(t, err)
	assert.Equal(t, "11\n01\n", m.Grid)
}

func TestValidateCommand(t *testing.T) {
	_, s := setupTestStorage(t)

	output, err := captureOutput(t, func() error {
		return runValidate(nil, nil)
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "No issues found.")

	require.NoError(t, s.SaveMaze(&model.MazeFile{Name: "broken", Side: 2, Grid: "1\n"}))
	output, err = captureOutput(t, func() error {
		return runValidate(nil, nil)
	})
	assert.Error(t, err)
	assert.Contains(t, output, "Found 1 issue(s)")
	assert.Contains(t, output, "broken [side]")
}

func TestSetupAppliesConfig(t *testing.T) {
	tmpDir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mazeconfig.yaml"),
		[]byte("render: overlay\npath_glyph: \"@\"\ncolor: never\n"), 0644))
	flagLogLevel = ""
	flagNoColor = false

	require.NoError(t, setup(nil, nil))
	assert.Equal(t, "overlay", currentConfig().Render)
	assert.Equal(t, "@", currentStyle().Path)
	assert.False(t, cli.ColorEnabled())

	path := writeMazeFile(t, tmpDir, "11\n11\n")
	output, err := captureOutput(t, func() error {
		return runSolve(nil, []string{path})
	})
	assert.NoError(t, err)
	assert.Equal(t, "PATH FOUND!\n@@\n.@\n", output)
}

func TestSetupRejectsBadConfig(t *testing.T) {
	tmpDir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mazeconfig.yaml"),
		[]byte("render: fancy\n"), 0644))

	err := setup(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".mazeconfig.yaml")
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	setupTestDir(t)
	flagLogLevel = "loud"
	defer func() { flagLogLevel = "" }()

	err := setup(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestCompleteMazeNames(t *testing.T) {
	setupTestStorage(t)

	completions, directive := completeMazeNames(nil, nil, "S")
	assert.Equal(t, []string{"spiral\tneeds a detour", "square"}, completions)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	completions, _ = completeMazeNames(nil, []string{"corner"}, "")
	assert.Empty(t, completions)
}
