package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyGrid is returned when the input contains no rows.
	ErrEmptyGrid = errors.New("maze must have at least one row")

	// ErrNonSquare is returned when the rows do not form an N×N grid.
	ErrNonSquare = errors.New("maze is not square")
)

// maxLineSize bounds a single maze row read by ParseGrid.
const maxLineSize = 1 << 20

// ParseError reports a character that is neither '1' nor '0'.
type ParseError struct {
	Line int  // 1-based row number
	Col  int  // 1-based column number
	Char rune // offending character
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: unexpected character %q (want '1' or '0')", e.Line, e.Col, e.Char)
}

// ParseGrid reads a maze from r. Each line is one row; '1' is an open cell
// and '0' a blocked one. Windows line endings and trailing blank lines are
// ignored. The result is guaranteed to be square and non-empty.
func ParseGrid(r io.Reader) (Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}
	return ParseRows(rows)
}

// ParseRows builds a grid from row strings, applying the same rules as ParseGrid.
func ParseRows(rows []string) (Grid, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	side := utf8.RuneCountInString(rows[0])
	if side == 0 {
		return nil, ErrEmptyGrid
	}
	if len(rows) != side {
		return nil, fmt.Errorf("%w: %d rows of width %d", ErrNonSquare, len(rows), side)
	}

	g := NewGrid(side)
	for r, line := range rows {
		if n := utf8.RuneCountInString(line); n != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r+1, n, side)
		}
		c := 0
		for _, ch := range line {
			switch ch {
			case '1':
				g[r][c] = Open
			case '0':
				g[r][c] = Blocked
			default:
				return nil, &ParseError{Line: r + 1, Col: c + 1, Char: ch}
			}
			c++
		}
	}
	return g, nil
}
