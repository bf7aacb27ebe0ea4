// Package bellman_ford implements the bounded relaxation rounds and the
// trailing negative-cycle detection pass.
package bellman_ford

import (
	"fmt"

	"github.com/wayfind/wayfind/core"
)

// Run computes shortest distances from the start node (core.Source) to every
// vertex in [0, TotalVertices()).
//
// Returns:
//
//   - dist: vector indexed by node, len == TotalVertices(); core.Inf marks
//     nodes with no path from the start.
//   - err:  core.ErrMissingStartNode if no Source option was given,
//     core.ErrStartNodeNotFound if the start index is out of range,
//     core.ErrNegativeWeightCycle if a negative cycle is reachable
//     from the start.
//
// Preconditions and validation (in order):
//  1. A Source option must be present (core.ErrMissingStartNode).
//  2. The start index must lie in [0, TotalVertices()) (core.ErrStartNodeNotFound).
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
func (e *Engine) Run(opts ...core.RunOption) ([]int64, error) {
	// 1) Assemble options and validate the start node.
	cfg := core.NewRunOptions(opts...)
	if !cfg.HasSource {
		return nil, core.ErrMissingStartNode
	}
	start := cfg.Source
	if start < 0 || start >= e.totalVertices {
		return nil, fmt.Errorf("%w: node %d, graph has %d vertices",
			core.ErrStartNodeNotFound, start, e.totalVertices)
	}

	// 2) All distances begin unreachable except the start.
	dist := make([]int64, e.totalVertices)
	for i := range dist {
		dist[i] = core.Inf
	}
	dist[start] = 0

	// 3) Up to V-1 relaxation rounds, each over the full edge list.
	//    A shortest path uses at most V-1 edges, so V-1 rounds suffice;
	//    a round with no update means convergence, so stop early.
	for round := 1; round < e.totalVertices; round++ {
		updated := false
		for _, ed := range e.edges {
			if dist[ed.from] == core.Inf {
				continue // unreachable source endpoint; also guards Inf+weight overflow
			}
			if next := dist[ed.from] + ed.weight; next < dist[ed.to] {
				dist[ed.to] = next
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	// 4) One extra pass: any edge that still strictly improves a reachable
	//    node lies on (or behind) a negative-weight cycle.
	for _, ed := range e.edges {
		if dist[ed.from] == core.Inf {
			continue
		}
		if dist[ed.from]+ed.weight < dist[ed.to] {
			return nil, fmt.Errorf("%w: edge %d→%d still improves after convergence",
				core.ErrNegativeWeightCycle, ed.from, ed.to)
		}
	}

	return dist, nil
}
