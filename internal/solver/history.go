package solver

import "github.com/jacksmith/maze/internal/model"

// history is the stack of forward moves on the current frontier, one entry
// per cell entered after the origin.
type history []model.Move

func (h *history) push(m model.Move) {
	*h = append(*h, m)
}

// pop removes and returns the most recent move. ok is false when empty.
func (h *history) pop() (m model.Move, ok bool) {
	n := len(*h)
	if n == 0 {
		return 0, false
	}
	m = (*h)[n-1]
	*h = (*h)[:n-1]
	return m, true
}

func (h history) len() int {
	return len(h)
}
