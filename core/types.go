// This file declares the shared value types (Arc, NodeArcs), the Inf
// sentinel, and the sentinel errors of the taxonomy.
package core

import (
	"errors"
	"math"
)

// Inf is the sentinel distance meaning "no known path".
// Every engine initializes distances to Inf and never adds a weight to an
// Inf distance, so the sentinel cannot overflow into a finite value.
const Inf int64 = math.MaxInt64

// Sentinel errors shared by all engines. The set is closed: engines return
// these (possibly wrapped via fmt.Errorf("%w: ...")) and nothing else.
var (
	// ErrMissingStartNode indicates a single-source engine was invoked
	// without a Source(n) option.
	ErrMissingStartNode = errors.New("core: start node required but not provided")

	// ErrStartNodeNotFound indicates the supplied start node was never
	// registered with the engine, so no traversal can begin from it.
	ErrStartNodeNotFound = errors.New("core: start node not registered")

	// ErrNegativeWeightCycle indicates Bellman-Ford detected a cycle with
	// negative total weight reachable from the start node.
	ErrNegativeWeightCycle = errors.New("core: negative-weight cycle detected")
)

// Arc is one outgoing edge half: the destination node and the edge weight.
// Weights are signed; dijkstra assumes (without checking) that they are
// non-negative, bellman_ford and floyd_warshall accept negative weights.
type Arc struct {
	// To is the destination node index.
	To int

	// Weight is the cost of traversing the arc.
	Weight int64
}

// NodeArcs pairs a source node with its outgoing arcs.
// It is the element type of every bulk builder
// (dijkstra.SetNodes, bellman_ford.AddEdges, floyd_warshall.SetEdges).
type NodeArcs struct {
	// Node is the source node index.
	Node int

	// Arcs are the outgoing arcs of Node. May be empty; bellman_ford
	// treats an empty list as registering an isolated node.
	Arcs []Arc
}
