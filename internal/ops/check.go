package ops

import (
	"github.com/jacksmith/maze/internal/graph"
	"github.com/jacksmith/maze/internal/model"
)

// CheckResult compares the right/down search with unrestricted movement.
type CheckResult struct {
	// Found is the right/down search result.
	Found bool
	// Reachable reports whether the destination can be reached moving in
	// all four directions.
	Reachable bool
	// Route is a shortest four-direction route, nil when unreachable.
	Route []model.Point
	// Solve holds the full search result.
	Solve *SolveResult
}

// Detour reports whether a route exists that the right/down search cannot find.
func (r *CheckResult) Detour() bool {
	return r.Reachable && !r.Found
}

// CheckGrid runs both analyses on g without modifying it.
// The origin counts as open for reachability, matching the search, which
// enters it without checking.
func CheckGrid(g model.Grid) *CheckResult {
	res := &CheckResult{Solve: SolveGrid(g, SolveOptions{})}
	res.Found = res.Solve.Found

	side := g.Side()
	view := g.Clone()
	view[0][0] = model.Open
	gr := graph.BuildGraph(view)

	res.Route = gr.ShortestPath(model.Point{}, model.Point{Row: side - 1, Col: side - 1})
	res.Reachable = res.Route != nil
	return res
}
