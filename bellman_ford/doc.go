// Package bellman_ford provides a single-source shortest-path engine for
// weighted directed graphs whose edge weights may be negative, with
// detection of negative-weight cycles reachable from the start node.
//
// Overview:
//
//   - The engine keeps a flat edge list plus a vertex counter that grows to
//     cover every endpoint it is given (or grows explicitly via a zero-arc
//     AddEdge call, which registers an isolated node).
//   - Run performs up to V-1 relaxation rounds, each iterating every edge
//     once; a round that makes no update ends the loop early, which does not
//     affect correctness since convergence is monotonic.
//   - After the bounded rounds, one extra full pass over the edges checks
//     whether any relaxation would still strictly improve a reachable node.
//     If so, the graph contains a negative-weight cycle reachable from the
//     start and Run fails with core.ErrNegativeWeightCycle.
//
// Complexity:
//
//	– Time:  O(V·E)   where V = TotalVertices(), E = |edges|
//	– Space: O(V)     for the distance vector (the edge list is the graph).
//
// Sentinel arithmetic:
//
// A relaxation is evaluated only when the source endpoint's distance is not
// core.Inf. This both exempts unreachable nodes from the cycle check and
// guards the addition: Inf plus a finite weight would otherwise wrap around.
//
// Result sizing:
//
// The result vector has TotalVertices() entries, i.e. max seen index + 1 —
// unlike dijkstra, which sizes by registered-key count. Unreachable nodes
// keep core.Inf.
//
// Errors (sentinel, from core):
//
//   - core.ErrMissingStartNode    if Run is called without core.Source(n).
//   - core.ErrStartNodeNotFound   if the start index is outside [0, V).
//   - core.ErrNegativeWeightCycle if a reachable negative cycle exists;
//     wrapped with the edge that still improves after convergence.
//
// Thread safety:
//
// Run is read-only; a built engine may serve concurrent Run calls. AddEdge
// and AddEdges mutate and must not race with each other or with Run.
//
// Example usage:
//
//	eng := bellman_ford.New()
//	eng.AddEdges([]core.NodeArcs{
//	    {Node: 0, Arcs: []core.Arc{{To: 1, Weight: 4}, {To: 2, Weight: 3}}},
//	    {Node: 1, Arcs: []core.Arc{{To: 2, Weight: 1}, {To: 3, Weight: 2}}},
//	    {Node: 2, Arcs: []core.Arc{{To: 3, Weight: 5}}},
//	})
//	dist, err := eng.Run(core.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist) // [0 4 3 6]
package bellman_ford
