package solver

import "github.com/jacksmith/maze/internal/model"

// IsOpen reports whether (row, col) lies inside a side×side grid and is open.
// Out-of-range coordinates are simply not open. g must be the grid the search
// is currently mutating so that closed dead ends read as blocked.
func IsOpen(g model.Grid, row, col, side int) bool {
	return row >= 0 && row < side && col >= 0 && col < side && g[row][col] == model.Open
}
