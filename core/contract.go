// This file declares the Algorithm contract and the functional run options.
package core

// Algorithm is implemented by every shortest-path engine.
//
// D is the engine-specific distance container: a []int64 distance vector for
// single-source engines, a [][]int64 distance matrix for all-pairs engines.
// Run computes shortest distances over the engine's already-built graph.
// It is a pure query: it never mutates engine state and has no suspension
// points, so it either returns a result or fails synchronously with one of
// the core sentinel errors.
type Algorithm[D any] interface {
	Run(opts ...RunOption) (D, error)
}

// RunOptions holds the per-call configuration assembled from RunOption
// values. The zero value means "no start node supplied".
type RunOptions struct {
	// Source is the start node for single-source engines.
	// Only meaningful when HasSource is true.
	Source int

	// HasSource reports whether Source was explicitly provided.
	// Distinguishes Source(0) from "no start node at all".
	HasSource bool
}

// RunOption configures a single Run invocation.
type RunOption func(*RunOptions)

// Source supplies the start node for single-source engines.
// All-pairs engines accept the option and ignore it; passing one there is
// not an error.
func Source(node int) RunOption {
	return func(o *RunOptions) {
		o.Source = node
		o.HasSource = true
	}
}

// NewRunOptions applies opts over the zero defaults and returns the result.
// Engines call this first in Run before validating anything else.
func NewRunOptions(opts ...RunOption) RunOptions {
	var o RunOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
