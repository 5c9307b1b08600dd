// Package graph answers unrestricted reachability questions about a maze.
// It treats every open cell as a node joined to its open orthogonal
// neighbours, independent of the right/down search in package solver.
package graph

import (
	"sort"

	"github.com/jacksmith/maze/internal/model"
)

// offsets lists neighbour directions in a fixed order: up, right, down, left.
var offsets = [4]model.Point{{Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}}

// Graph is a 4-connected graph over the open cells of a grid.
type Graph struct {
	// adjacent maps a cell to its open neighbours in offsets order
	adjacent map[model.Point][]model.Point
	// nodes tracks all open cells
	nodes map[model.Point]bool
}

// BuildGraph constructs the graph for g. The grid is only read.
func BuildGraph(g model.Grid) *Graph {
	gr := &Graph{
		adjacent: make(map[model.Point][]model.Point),
		nodes:    make(map[model.Point]bool),
	}

	side := g.Side()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if g[r][c] != model.Open {
				continue
			}
			p := model.Point{Row: r, Col: c}
			gr.nodes[p] = true
			for _, d := range offsets {
				n := model.Point{Row: r + d.Row, Col: c + d.Col}
				if n.Row < 0 || n.Row >= side || n.Col < 0 || n.Col >= side {
					continue
				}
				if g[n.Row][n.Col] == model.Open {
					gr.adjacent[p] = append(gr.adjacent[p], n)
				}
			}
		}
	}

	return gr
}

// Neighbors returns the open neighbours of p.
// Returns empty slice if p is not a node.
func (g *Graph) Neighbors(p model.Point) []model.Point {
	adj := g.adjacent[p]
	result := make([]model.Point, len(adj))
	copy(result, adj)
	return result
}

// HasNode returns true if p is an open cell.
func (g *Graph) HasNode(p model.Point) bool {
	return g.nodes[p]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns all nodes in row-major order.
func (g *Graph) Nodes() []model.Point {
	result := make([]model.Point, 0, len(g.nodes))
	for p := range g.nodes {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Row != result[j].Row {
			return result[i].Row < result[j].Row
		}
		return result[i].Col < result[j].Col
	})
	return result
}

// Reachable reports whether to can be reached from from.
func (g *Graph) Reachable(from, to model.Point) bool {
	return g.ShortestPath(from, to) != nil
}

// ShortestPath returns a shortest route from from to to, both included,
// using breadth-first search. Returns nil if either end is not a node or
// no route exists.
func (g *Graph) ShortestPath(from, to model.Point) []model.Point {
	if !g.nodes[from] || !g.nodes[to] {
		return nil
	}

	parent := map[model.Point]model.Point{from: from}
	queue := []model.Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return walkBack(parent, from, to)
		}
		for _, n := range g.adjacent[cur] {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			queue = append(queue, n)
		}
	}
	return nil
}

// walkBack rebuilds the route to `to` from the BFS parent links.
func walkBack(parent map[model.Point]model.Point, from, to model.Point) []model.Point {
	var route []model.Point
	for p := to; ; p = parent[p] {
		route = append(route, p)
		if p == from {
			break
		}
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
