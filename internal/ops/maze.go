// Package ops implements the maze operations behind the CLI commands.
package ops

import (
	"fmt"
	"time"

	"github.com/jacksmith/maze/internal/model"
	"github.com/jacksmith/maze/internal/solver"
)

// MazeExistsError indicates AddMaze would overwrite a stored maze.
type MazeExistsError struct {
	Name string
}

func (e *MazeExistsError) Error() string {
	return fmt.Sprintf("maze %q already exists (use --force to replace it)", e.Name)
}

// SolveOptions configures a search.
type SolveOptions struct {
	// Tracer, if set, observes every search step.
	Tracer solver.Tracer
}

// SolveResult contains the outcome of solving one maze.
type SolveResult struct {
	Found bool
	// Path marks the found path; nil when Found is false.
	Path  model.PathGrid
	Stats solver.Stats
	// Original is the maze as given, untouched by the search.
	Original model.Grid
	// Closed is the maze as the search left it, with dead ends blocked.
	Closed model.Grid
}

// SolveGrid solves a copy of g so the caller's grid survives the search.
func SolveGrid(g model.Grid, opts SolveOptions) *SolveResult {
	work := g.Clone()

	var solverOpts []solver.Option
	if opts.Tracer != nil {
		solverOpts = append(solverOpts, solver.WithTracer(opts.Tracer))
	}
	path, st, found := solver.New(solverOpts...).Solve(work, work.Side())

	return &SolveResult{
		Found:    found,
		Path:     path,
		Stats:    st,
		Original: g,
		Closed:   work,
	}
}

// SolveMaze loads a stored maze and solves it.
func SolveMaze(s Store, name string, opts SolveOptions) (*model.MazeFile, *SolveResult, error) {
	m, err := s.LoadMaze(name)
	if err != nil {
		return nil, nil, err
	}
	g, err := m.ParseGrid()
	if err != nil {
		return nil, nil, err
	}
	return m, SolveGrid(g, opts), nil
}

// AddMaze stores g under name. An existing maze is only replaced when force
// is set; its creation time is kept.
func AddMaze(s Store, name, description string, g model.Grid, force bool) (*model.MazeFile, error) {
	normalized, err := model.ValidateName(name)
	if err != nil {
		return nil, err
	}

	created := time.Now()
	if s.MazeExists(normalized) {
		if !force {
			return nil, &MazeExistsError{Name: normalized}
		}
		if old, err := s.LoadMaze(normalized); err == nil && !old.Created.IsZero() {
			created = old.Created
		}
	}

	m := model.NewMazeFile(normalized, description, g, created)
	if err := s.SaveMaze(m); err != nil {
		return nil, fmt.Errorf("failed to save maze %s: %w", normalized, err)
	}
	return m, nil
}

// ReplaceMaze validates an edited maze file and saves it in place of name.
// Renaming through an edit is not allowed.
func ReplaceMaze(s Store, name string, edited *model.MazeFile) error {
	normalized := model.NormalizeName(name)
	if model.NormalizeName(edited.Name) != normalized {
		return fmt.Errorf("cannot rename maze %s to %q while editing", normalized, edited.Name)
	}
	// side is recomputed from the edited grid, so a stale value is not an issue.
	check := *edited
	check.Side = 0
	if issues := ValidateMazeFile(&check); len(issues) > 0 {
		return &InvalidMazeError{Name: normalized, Issues: issues}
	}

	if edited.Created.IsZero() {
		if old, err := s.LoadMaze(normalized); err == nil {
			edited.Created = old.Created
		}
	}

	g, err := edited.ParseGrid()
	if err != nil {
		return err
	}
	edited.Name = normalized
	edited.Side = g.Side()
	edited.Grid = g.String()
	return s.SaveMaze(edited)
}

// RemoveMaze deletes a stored maze.
func RemoveMaze(s Store, name string) error {
	return s.DeleteMaze(name)
}

// MazeSummary describes one stored maze for listings.
type MazeSummary struct {
	Name        string
	Description string
	Side        int
	Open        int
	Solvable    bool
	Err         error // set when the maze file could not be used
}

// ListMazes loads and solves every stored maze. Broken files are reported
// through MazeSummary.Err rather than failing the whole listing.
func ListMazes(s Store) ([]MazeSummary, error) {
	names, err := s.ListMazes()
	if err != nil {
		return nil, err
	}

	summaries := make([]MazeSummary, 0, len(names))
	for _, name := range names {
		sum := MazeSummary{Name: name}
		m, res, err := SolveMaze(s, name, SolveOptions{})
		if err != nil {
			sum.Err = err
			summaries = append(summaries, sum)
			continue
		}
		sum.Description = m.Description
		sum.Side = res.Original.Side()
		sum.Open = res.Original.OpenCount()
		sum.Solvable = res.Found
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
