// Package render turns search results into text for the terminal.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/maze/internal/cli"
	"github.com/jacksmith/maze/internal/model"
)

// Header lines written before a dump.
const (
	FoundHeader    = "PATH FOUND!"
	NotFoundHeader = "no path found."
)

// Modes accepted by the render config key and --render flag.
const (
	ModeDump    = "dump"
	ModeOverlay = "overlay"
)

// Style selects the glyphs used by Overlay.
type Style struct {
	Path    string
	Open    string
	Blocked string
}

// DefaultStyle draws the path with '*', open cells with '.' and walls with '#'.
var DefaultStyle = Style{Path: "*", Open: ".", Blocked: "#"}

// Dump writes the path grid as rows of '1' (on path) and '0', each row
// preceded by a newline, followed by a final newline.
func Dump(w io.Writer, p model.PathGrid) error {
	bw := bufio.NewWriter(w)
	for _, row := range p.Rows() {
		bw.WriteByte('\n')
		bw.WriteString(row)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// Result writes the complete text result: the found header followed by the
// dump, or the not-found line.
func Result(w io.Writer, p model.PathGrid, found bool) error {
	if !found {
		_, err := fmt.Fprintln(w, NotFoundHeader)
		return err
	}
	if _, err := io.WriteString(w, cli.Green(FoundHeader)); err != nil {
		return err
	}
	return Dump(w, p)
}

// Overlay draws g with the path from p on top. p may be nil to draw the
// maze alone. Path glyphs are green and wall glyphs gray when color is on.
func Overlay(w io.Writer, g model.Grid, p model.PathGrid, st Style) error {
	bw := bufio.NewWriter(w)
	for r, row := range g {
		var line strings.Builder
		for c, cell := range row {
			switch {
			case p != nil && p[r][c] == model.OnPath:
				line.WriteString(cli.Green(st.Path))
			case cell == model.Open:
				line.WriteString(st.Open)
			default:
				line.WriteString(cli.Gray(st.Blocked))
			}
		}
		bw.WriteString(line.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
