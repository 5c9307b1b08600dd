// Package solver finds a right/down path from the top-left to the
// bottom-right cell of a square occupancy grid.
//
// The search prefers moving right, then down. At a dead end it undoes the
// most recent move and closes the abandoned cell in the occupancy grid, so
// closed cells double as the visited set. Up and left are never tried as
// forward moves, which means grids whose only route needs such a detour are
// reported as having no path.
package solver

import (
	"time"

	"github.com/jacksmith/maze/internal/model"
)

// Stats captures how much work a search did.
type Stats struct {
	Steps    int // loop iterations, including the terminal one
	Advances int
	Retreats int // equals the number of cells closed
	MaxDepth int // longest move history reached
	Duration time.Duration
}

// Solver runs searches. The zero value is ready to use.
type Solver struct {
	tracer Tracer
}

// Option configures a Solver.
type Option func(*Solver)

// WithTracer reports every search transition to t.
func WithTracer(t Tracer) Option {
	return func(s *Solver) { s.tracer = t }
}

// New returns a Solver configured with opts.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve searches g with the default Solver.
func Solve(g model.Grid, side int) (model.PathGrid, bool) {
	p, _, ok := New().Solve(g, side)
	return p, ok
}

// Solve searches g, a side×side grid, for a path from (0,0) to
// (side-1, side-1). g must be non-empty and square; this is not checked.
//
// g is owned by the call: dead-end cells are set to model.Blocked in place
// and stay closed after Solve returns. Clone g first if the original is
// still needed, and do not touch it from another goroutine during the call.
//
// The origin is entered without checking that it is open. On success the
// returned path grid marks the path; otherwise it is nil.
func (s *Solver) Solve(g model.Grid, side int) (model.PathGrid, Stats, bool) {
	start := time.Now()
	var st Stats

	path := model.NewPathGrid(side)
	cur := model.Point{}
	path[cur.Row][cur.Col] = model.OnPath
	dest := model.Point{Row: side - 1, Col: side - 1}

	var moves history
	for {
		st.Steps++

		switch {
		case IsOpen(g, cur.Row, cur.Col+1, side):
			cur = s.advance(path, &moves, cur, model.Right, &st)

		case IsOpen(g, cur.Row+1, cur.Col, side):
			cur = s.advance(path, &moves, cur, model.Down, &st)

		case cur == dest:
			path[cur.Row][cur.Col] = model.OnPath
			st.Duration = time.Since(start)
			s.emit(Event{Kind: EventFound, From: cur, To: cur, Depth: moves.len()})
			return path, st, true

		case moves.len() > 0:
			m, _ := moves.pop()
			path[cur.Row][cur.Col] = model.OffPath
			g[cur.Row][cur.Col] = model.Blocked
			prev := cur
			cur = m.Undo(cur)
			st.Retreats++
			s.emit(Event{Kind: EventRetreat, Move: m, From: prev, To: cur, Depth: moves.len()})

		default:
			st.Duration = time.Since(start)
			s.emit(Event{Kind: EventNotFound, From: cur, To: cur})
			return nil, st, false
		}
	}
}

func (s *Solver) advance(path model.PathGrid, moves *history, cur model.Point, m model.Move, st *Stats) model.Point {
	next := m.Apply(cur)
	path[next.Row][next.Col] = model.OnPath
	moves.push(m)

	st.Advances++
	if d := moves.len(); d > st.MaxDepth {
		st.MaxDepth = d
	}
	s.emit(Event{Kind: EventAdvance, Move: m, From: cur, To: next, Depth: moves.len()})
	return next
}

func (s *Solver) emit(e Event) {
	if s.tracer != nil {
		s.tracer.OnStep(e)
	}
}
