// Package floyd_warshall implements the triple-nested dynamic program over
// the dense distance matrix.
package floyd_warshall

import "github.com/wayfind/wayfind/core"

// Run computes shortest distances between every ordered pair of nodes.
//
// Returns:
//
//   - d: square matrix of dimension TotalNodes(); d[i][j] is the shortest
//     distance from i to j, core.Inf if no path exists, and d[i][i] starts
//     at 0 for every i (negative after convergence only if a negative cycle
//     passes through i).
//   - err: always nil today; the error return belongs to the shared
//     core.Algorithm contract.
//
// The core.Source option is accepted and ignored: this is an all-pairs
// algorithm, so a start node is meaningless but not an error.
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V²)
func (e *Engine) Run(opts ...core.RunOption) ([][]int64, error) {
	// Options are parsed for contract uniformity; Source is deliberately
	// unused here.
	_ = core.NewRunOptions(opts...)

	n := e.totalNodes

	// 1) Initialize the matrix to "no known path" everywhere.
	d := make([][]int64, n)
	for i := range d {
		d[i] = make([]int64, n)
		for j := range d[i] {
			d[i][j] = core.Inf
		}
	}

	// 2) Direct edges, in insertion order: a later duplicate overwrites.
	for _, ed := range e.edges {
		d[ed.from][ed.to] = ed.weight
	}

	// 3) Force the diagonal to zero, overriding any self-loop edge.
	for i := 0; i < n; i++ {
		d[i][i] = 0
	}

	// 4) Relax through every intermediate node k. Both legs must be finite
	//    before adding, or the sentinel would overflow.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if d[i][k] == core.Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if d[k][j] == core.Inf {
					continue
				}
				if through := d[i][k] + d[k][j]; through < d[i][j] {
					d[i][j] = through
				}
			}
		}
	}

	return d, nil
}
