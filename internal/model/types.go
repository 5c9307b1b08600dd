// Package model defines the grid types shared by the solver, renderer and storage.
package model

import (
	"fmt"
	"strings"
)

// Cell is one square of an occupancy grid.
type Cell uint8

const (
	Blocked Cell = iota
	Open
)

// Byte returns the character used for the cell in maze text ('1' or '0').
func (c Cell) Byte() byte {
	if c == Open {
		return '1'
	}
	return '0'
}

// Grid is a square occupancy grid indexed as g[row][col].
// The solver mutates it in place: cells abandoned as dead ends are set to Blocked.
type Grid [][]Cell

// NewGrid returns a side×side grid with every cell blocked.
func NewGrid(side int) Grid {
	g := make(Grid, side)
	for i := range g {
		g[i] = make([]Cell, side)
	}
	return g
}

// Side returns the side length of the grid.
func (g Grid) Side() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// OpenCount returns the number of open cells.
func (g Grid) OpenCount() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == Open {
				n++
			}
		}
	}
	return n
}

// String renders the grid as newline-terminated rows of '1' and '0'.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, c := range row {
			b.WriteByte(c.Byte())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Mark is one square of a path grid.
type Mark uint8

const (
	OffPath Mark = iota
	OnPath
)

// PathGrid marks the cells of a discovered path, indexed as p[row][col].
type PathGrid [][]Mark

// NewPathGrid returns a side×side path grid with every cell off the path.
func NewPathGrid(side int) PathGrid {
	p := make(PathGrid, side)
	for i := range p {
		p[i] = make([]Mark, side)
	}
	return p
}

// Side returns the side length of the path grid.
func (p PathGrid) Side() int {
	return len(p)
}

// Points returns the on-path cells in row-major order.
func (p PathGrid) Points() []Point {
	var pts []Point
	for r, row := range p {
		for c, m := range row {
			if m == OnPath {
				pts = append(pts, Point{Row: r, Col: c})
			}
		}
	}
	return pts
}

// Rows returns each row as a string of '1' (on path) and '0'.
func (p PathGrid) Rows() []string {
	rows := make([]string, len(p))
	for r, row := range p {
		b := make([]byte, len(row))
		for c, m := range row {
			if m == OnPath {
				b[c] = '1'
			} else {
				b[c] = '0'
			}
		}
		rows[r] = string(b)
	}
	return rows
}

// String renders the path grid as newline-terminated rows.
func (p PathGrid) String() string {
	var b strings.Builder
	for _, row := range p.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Point is a (row, col) position in a grid.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a forward step taken by the search.
type Move uint8

const (
	Right Move = iota + 1
	Down
)

func (m Move) String() string {
	switch m {
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Apply returns the point reached by taking m from p.
func (m Move) Apply(p Point) Point {
	switch m {
	case Right:
		p.Col++
	case Down:
		p.Row++
	}
	return p
}

// Undo returns the point m was taken from, given the point it reached.
func (m Move) Undo(p Point) Point {
	switch m {
	case Right:
		p.Col--
	case Down:
		p.Row--
	}
	return p
}
