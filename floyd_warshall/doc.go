// Package floyd_warshall provides an all-pairs shortest-path engine for
// weighted directed graphs via dense dynamic programming.
//
// Overview:
//
//   - The engine keeps a flat list of (source, target, weight) triples plus
//     a node counter that grows over every endpoint it is given, or grows
//     explicitly via SetTotalNodes (which only ever raises it).
//   - Run builds a TotalNodes()×TotalNodes() matrix initialized to core.Inf,
//     writes the direct edge weights in insertion order (last write wins),
//     forces the diagonal to zero for every node — self-loop edges included —
//     then runs the classic triple loop over intermediate node k, row i,
//     column j, relaxing only when both d[i][k] and d[k][j] are finite.
//
// Complexity:
//
//	– Time:  O(V³)   where V = TotalNodes()
//	– Space: O(V²)   for the distance matrix.
//
// Negative cycles:
//
// Unlike bellman_ford, this engine reports no cycle error; by all-pairs
// convention, cycle detection is left to the caller. A zero- or
// negative-weight cycle simply drives the diagonal entry of every node on
// the cycle below zero after convergence: inspect the diagonal post-run,
// d[n][n] < 0 implies a negative cycle through n.
//
// Start node:
//
// Run accepts core.Source and ignores it — the result covers every ordered
// pair regardless of a start node. Passing one is not an error, so callers
// may invoke all engines uniformly through core.Algorithm.
//
// Thread safety:
//
// Run is read-only; a built engine may serve concurrent Run calls. SetEdge,
// SetEdges and SetTotalNodes mutate and must not race with each other or
// with Run.
//
// Example usage:
//
//	eng := floyd_warshall.New()
//	eng.SetEdge(0, 1, 1)
//	eng.SetEdge(1, 2, 1)
//	eng.SetEdge(0, 2, 4)
//	d, err := eng.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d[0][2]) // 2, via node 1
package floyd_warshall
