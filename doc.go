// Package wayfind is a library of classical shortest-path algorithms
// over weighted directed graphs, unified behind one small contract.
//
// What is inside?
//
//	core/           — the shared Algorithm contract, node/arc types,
//	                  the Inf sentinel and the error taxonomy
//	dijkstra/       — single-source shortest paths, non-negative weights,
//	                  min-priority-queue relaxation
//	bellman_ford/   — single-source shortest paths, negative weights allowed,
//	                  negative-cycle detection
//	floyd_warshall/ — all-pairs shortest paths, dense dynamic programming
//	examples/       — a runnable demo assembling all three engines
//
// Why wayfind?
//
//   - One contract, three engines: every engine exposes
//     Run(opts ...core.RunOption) and shares the sentinel error taxonomy, so
//     callers can swap algorithms without rewriting call sites.
//   - Each engine owns its optimal representation: an adjacency map for
//     Dijkstra, a flat edge list for Bellman-Ford, a dense matrix for
//     Floyd-Warshall. No representation is forced across engines.
//   - Build-then-query lifecycle: assemble a graph with builder calls, then
//     query it as often as you like; Run never mutates the engine, so a built
//     graph serves any number of concurrent readers.
//   - Pure Go, no cgo; third-party code is confined to the test suite.
//
// Start with the package documentation of core, then pick the engine that
// matches your weight model: dijkstra for non-negative weights,
// bellman_ford when weights may be negative, floyd_warshall when you need
// every pair at once.
package wayfind
