// Package floyd_warshall: engine type and graph builders.
package floyd_warshall

import "github.com/wayfind/wayfind/core"

// edge is one directed (source, target, weight) triple.
type edge struct {
	from   int
	to     int
	weight int64
}

// Engine is the Floyd-Warshall all-pairs shortest-path engine.
//
// The graph is a flat list of edge triples plus a running node count. Build
// it with SetEdge/SetEdges/SetTotalNodes, then query with Run. The zero
// value is ready to use.
type Engine struct {
	totalNodes int
	edges      []edge
}

// compile-time contract check
var _ core.Algorithm[[][]int64] = (*Engine)(nil)

// New returns an empty Engine.
func New() *Engine {
	return &Engine{}
}

// SetEdge appends one directed edge and grows the node count to cover both
// endpoints. Re-adding the same (source, target) pair later overwrites the
// earlier weight in the matrix (insertion order, last write wins).
func (e *Engine) SetEdge(source, target int, weight int64) {
	e.edges = append(e.edges, edge{from: source, to: target, weight: weight})
	e.grow(source + 1)
	e.grow(target + 1)
}

// SetEdges appends every node's arcs via SetEdge.
func (e *Engine) SetEdges(nodes []core.NodeArcs) {
	for _, n := range nodes {
		for _, a := range n.Arcs {
			e.SetEdge(n.Node, a.To, a.Weight)
		}
	}
}

// SetTotalNodes raises the node count to at least total, padding the matrix
// with otherwise-unconnected nodes. It never lowers the count.
func (e *Engine) SetTotalNodes(total int) {
	e.grow(total)
}

// TotalNodes reports the node count derived from all insertions so far,
// which is also the dimension of the matrix a successful Run returns.
func (e *Engine) TotalNodes() int {
	return e.totalNodes
}

// grow raises the node count to at least n. It never shrinks.
func (e *Engine) grow(n int) {
	if n > e.totalNodes {
		e.totalNodes = n
	}
}
