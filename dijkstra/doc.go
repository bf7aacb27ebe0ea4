// Package dijkstra provides a single-source shortest-path engine for
// weighted directed graphs with non-negative edge weights.
//
// Overview:
//
//   - The engine keeps an adjacency map from node index to its outgoing
//     arcs; absent nodes simply have no outgoing arcs.
//   - Run expands nodes in order of increasing distance from the start using
//     a min-heap priority queue (container/heap), relaxing each outgoing arc
//     and pushing strict improvements.
//   - Lazy decrease-key: improved entries are pushed as duplicates, and a
//     popped entry whose cost exceeds the recorded best is skipped as stale.
//     Ties on cost are broken by ascending node index.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |registered nodes|, E = |arcs|
//	   • Each node's distance is finalized at most once.
//	   • Each relaxation may push one heap entry: up to E pushes.
//	   • Each heap push/pop costs O(log N), N ≤ V + E, simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance map and result vector.
//	   • O(E) worst-case heap entries under lazy decrease-key.
//
// Result sizing:
//
// The result vector has one slot per *registered* node key — not max index
// plus one, which is how bellman_ford and floyd_warshall size theirs.
// Register every node you expect in the result, including leaf nodes with no
// outgoing arcs (SetNode(n, nil)), or the vector will be undersized and a
// reachable node's distance silently dropped. Unreached slots hold core.Inf.
//
// Weights:
//
// Correctness is guaranteed only for non-negative weights. The builder does
// not reject negative weights (core.Arc is shared with engines that allow
// them) and Run performs no check; on a graph with negative arcs the
// distances are simply unspecified. Use bellman_ford for negative weights.
//
// Errors (sentinel, from core):
//
//   - core.ErrMissingStartNode  if Run is called without core.Source(n).
//   - core.ErrStartNodeNotFound if the start node was never registered.
//
// Thread safety:
//
// Run is read-only; a built engine may serve concurrent Run calls. SetNode
// and SetNodes mutate and must not race with each other or with Run.
//
// Example usage:
//
//	eng := dijkstra.New()
//	eng.SetNodes([]core.NodeArcs{
//	    {Node: 0, Arcs: []core.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 4}}},
//	    {Node: 1, Arcs: []core.Arc{{To: 2, Weight: 2}}},
//	    {Node: 2},
//	})
//	dist, err := eng.Run(core.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist) // [0 1 3]
package dijkstra
