// Package bellman_ford: engine type and graph builders.
package bellman_ford

import "github.com/wayfind/wayfind/core"

// edge is one directed edge of the flat edge list.
type edge struct {
	from   int
	to     int
	weight int64
}

// Engine is the Bellman-Ford single-source shortest-path engine.
//
// The graph is a flat edge list plus a running vertex count. Build it with
// AddEdge/AddEdges, then query with Run. The zero value is ready to use.
type Engine struct {
	totalVertices int
	edges         []edge
}

// compile-time contract check
var _ core.Algorithm[[]int64] = (*Engine)(nil)

// New returns an empty Engine.
func New() *Engine {
	return &Engine{}
}

// AddEdge appends one outgoing edge per arc for source, growing the vertex
// count to cover both endpoints of every arc. Calling with an empty arcs
// list still registers source, so isolated nodes are representable.
func (e *Engine) AddEdge(source int, arcs []core.Arc) {
	if len(arcs) == 0 {
		e.grow(source + 1)
		return
	}

	for _, a := range arcs {
		e.edges = append(e.edges, edge{from: source, to: a.To, weight: a.Weight})
		e.grow(source + 1)
		e.grow(a.To + 1)
	}
}

// AddEdges appends every node's arcs via AddEdge.
func (e *Engine) AddEdges(nodes []core.NodeArcs) {
	for _, n := range nodes {
		e.AddEdge(n.Node, n.Arcs)
	}
}

// TotalVertices reports the vertex count derived from all insertions so far,
// which is also the length of the vector a successful Run returns.
func (e *Engine) TotalVertices() int {
	return e.totalVertices
}

// EdgeCount reports the number of edges inserted so far.
func (e *Engine) EdgeCount() int {
	return len(e.edges)
}

// grow raises the vertex count to at least n. It never shrinks.
func (e *Engine) grow(n int) {
	if n > e.totalVertices {
		e.totalVertices = n
	}
}
