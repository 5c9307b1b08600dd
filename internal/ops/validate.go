package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacksmith/maze/internal/model"
)

// IssueType classifies a problem found in a maze file.
type IssueType string

const (
	IssueInvalidName  IssueType = "invalid_name"
	IssueEmptyGrid    IssueType = "empty_grid"
	IssueNonSquare    IssueType = "non_square"
	IssueBadCharacter IssueType = "bad_character"
	IssueSideMismatch IssueType = "side_mismatch"
	IssueUnreadable   IssueType = "unreadable"
)

// Issue is one problem found in a maze file.
type Issue struct {
	Type    IssueType
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Type, i.Message)
}

// InvalidMazeError reports every issue found in a maze file.
type InvalidMazeError struct {
	Name   string
	Issues []Issue
}

func (e *InvalidMazeError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("maze %s is invalid: %s", e.Name, strings.Join(msgs, "; "))
}

// ValidateMazeFile checks a maze file's name and grid.
// A side field that disagrees with the grid is reported only when the grid
// itself is valid.
func ValidateMazeFile(m *model.MazeFile) []Issue {
	var issues []Issue

	if _, err := model.ValidateName(m.Name); err != nil {
		issues = append(issues, Issue{Type: IssueInvalidName, Message: err.Error()})
	}

	g, err := model.ParseRows(m.Rows())
	var perr *model.ParseError
	switch {
	case err == nil:
		if m.Side != 0 && m.Side != g.Side() {
			issues = append(issues, Issue{
				Type:    IssueSideMismatch,
				Message: fmt.Sprintf("side is %d but the grid is %dx%d", m.Side, g.Side(), g.Side()),
			})
		}
	case errors.Is(err, model.ErrEmptyGrid):
		issues = append(issues, Issue{Type: IssueEmptyGrid, Message: err.Error()})
	case errors.Is(err, model.ErrNonSquare):
		issues = append(issues, Issue{Type: IssueNonSquare, Message: err.Error()})
	case errors.As(err, &perr):
		issues = append(issues, Issue{Type: IssueBadCharacter, Message: perr.Error()})
	default:
		issues = append(issues, Issue{Type: IssueBadCharacter, Message: err.Error()})
	}

	return issues
}

// ValidateLibrary checks every stored maze and returns issues by name.
// Files that cannot be loaded are reported as a single IssueUnreadable.
func ValidateLibrary(s Store) (map[string][]Issue, error) {
	names, err := s.ListMazes()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]Issue)
	for _, name := range names {
		m, err := s.LoadMaze(name)
		if err != nil {
			result[name] = []Issue{{Type: IssueUnreadable, Message: err.Error()}}
			continue
		}
		if issues := ValidateMazeFile(m); len(issues) > 0 {
			result[name] = issues
		}
	}
	return result, nil
}
