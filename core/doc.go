// Package core defines the contract shared by every shortest-path engine:
// the Algorithm interface, the node and arc value types, the Inf sentinel,
// the functional run options, and the closed error taxonomy.
//
// The contract:
//
//	type Algorithm[D any] interface {
//	    Run(opts ...RunOption) (D, error)
//	}
//
// D is the engine's distance container: []int64 for single-source engines
// (dijkstra, bellman_ford), [][]int64 for all-pairs (floyd_warshall).
// A successful Run returns a container whose unreached entries hold Inf;
// a failed Run returns one of the sentinel errors below, possibly wrapped
// with context (match with errors.Is).
//
// Contract rules:
//
//   - A single-source engine invoked without Source(n) fails with
//     ErrMissingStartNode before touching the graph.
//   - A single-source engine invoked with a start node it has never seen
//     fails with ErrStartNodeNotFound before touching the graph.
//   - Run never mutates engine state: running twice on an unmodified engine
//     yields identical results, and a built engine may be queried by any
//     number of concurrent readers. Builder methods do mutate and must not
//     race with each other or with Run.
//
// Errors (sentinel):
//
//   - ErrMissingStartNode    — single-source Run called without Source(n).
//   - ErrStartNodeNotFound   — the supplied start node is not registered.
//   - ErrNegativeWeightCycle — Bellman-Ford found a negative-weight cycle
//     reachable from the start; shortest distances are undefined.
//
// Node identity:
//
// A node is a non-negative int index; there is no separate node object.
// Every builder grows its engine's vertex count to cover the endpoints it is
// given, so indices stay within each engine's own bounds. Note that the
// engines deliberately differ in how they size their results: dijkstra by
// the number of registered node keys, bellman_ford and floyd_warshall by
// max index + 1. See each engine's package documentation.
package core
