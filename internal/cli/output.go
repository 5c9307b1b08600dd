package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Color modes accepted by --color and the color config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// colorEnabled tracks whether color output is enabled.
// It starts from terminal detection and can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode sets color output from a mode string. "auto" enables color
// only when w is a terminal.
func ApplyColorMode(mode string, w io.Writer) error {
	switch strings.ToLower(mode) {
	case "", ColorAuto:
		SetColorEnabled(IsTerminal(w))
	case ColorAlways:
		SetColorEnabled(true)
	case ColorNever:
		SetColorEnabled(false)
	default:
		return &ValidationError{Field: "color", Message: fmt.Sprintf("%q (want auto, always or never)", mode)}
	}
	return nil
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth caps the visible width of a column.
// Longer content is truncated with "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}

	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column of each row is not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(row)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts[i] = col
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to at most maxWidth visible characters, ending in
// "..." when there is room for it. ANSI codes do not count towards the
// width; if any were cut a reset is appended.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, tail := maxWidth, ""
	if maxWidth >= len(ellipsis) {
		limit, tail = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
			b.WriteRune(r)
			continue
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if visible >= limit {
			break
		}
		b.WriteRune(r)
		visible++
	}

	b.WriteString(tail)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}
