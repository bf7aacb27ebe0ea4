// Package dijkstra: engine type and graph builders.
package dijkstra

import "github.com/wayfind/wayfind/core"

// Engine is the Dijkstra single-source shortest-path engine.
//
// The graph is an adjacency map from node index to outgoing arcs. Build it
// with SetNode/SetNodes, then query with Run. The zero value is ready to use.
type Engine struct {
	graph map[int][]core.Arc
}

// compile-time contract check
var _ core.Algorithm[[]int64] = (*Engine)(nil)

// New returns an empty Engine.
func New() *Engine {
	return &Engine{graph: make(map[int][]core.Arc)}
}

// SetNode registers node with the given outgoing arcs, replacing any arcs
// previously registered for it (map semantics: last write wins per key).
// A nil or empty arcs list registers a leaf node, which reserves a slot for
// it in the result vector.
func (e *Engine) SetNode(node int, arcs []core.Arc) {
	if e.graph == nil {
		e.graph = make(map[int][]core.Arc)
	}
	e.graph[node] = arcs
}

// SetNodes registers every node in nodes via SetNode.
func (e *Engine) SetNodes(nodes []core.NodeArcs) {
	for _, n := range nodes {
		e.SetNode(n.Node, n.Arcs)
	}
}

// NodeCount reports the number of registered node keys, which is also the
// length of the vector a successful Run returns.
func (e *Engine) NodeCount() int {
	return len(e.graph)
}
