// Package dijkstra implements the min-priority-queue relaxation loop.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: improvements push duplicate
//     heap entries, and stale entries are skipped when popped.
//   - Distances are tracked in a map keyed by node index, then flattened
//     into a vector sized by the number of registered node keys.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/wayfind/wayfind/core"
)

// Run computes shortest distances from the start node (core.Source) to every
// registered node.
//
// Returns:
//
//   - dist: vector indexed by node, len == NodeCount(); core.Inf marks
//     nodes with no path from the start.
//   - err:  core.ErrMissingStartNode if no Source option was given,
//     core.ErrStartNodeNotFound if the start node is not registered.
//
// Preconditions and validation (in order):
//  1. A Source option must be present (core.ErrMissingStartNode).
//  2. The start node must be a registered key (core.ErrStartNodeNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (e *Engine) Run(opts ...core.RunOption) ([]int64, error) {
	// 1) Assemble options and validate the start node.
	cfg := core.NewRunOptions(opts...)
	if !cfg.HasSource {
		return nil, core.ErrMissingStartNode
	}
	start := cfg.Source
	if _, ok := e.graph[start]; !ok {
		return nil, fmt.Errorf("%w: node %d", core.ErrStartNodeNotFound, start)
	}

	// 2) dist holds the best-known distance per discovered node.
	dist := make(map[int]int64, len(e.graph))
	dist[start] = 0

	// 3) Seed the min-heap with (cost=0, node=start).
	pq := make(minQueue, 0, len(e.graph))
	heap.Push(&pq, queueItem{cost: 0, node: start})

	// 4) Main loop: always expand the cheapest frontier node next.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(queueItem)

		// Skip stale entries: a strictly smaller distance was recorded
		// after this entry was pushed.
		if best, ok := dist[item.node]; ok && item.cost > best {
			continue
		}

		// Relax every outgoing arc of the popped node.
		for _, arc := range e.graph[item.node] {
			next := item.cost + arc.Weight
			if best, ok := dist[arc.To]; !ok || next < best {
				dist[arc.To] = next
				heap.Push(&pq, queueItem{cost: next, node: arc.To})
			}
		}
	}

	// 5) Flatten into a vector with one slot per registered node key.
	//    Distances for nodes indexed beyond the registered-key count are
	//    dropped; see the package documentation on result sizing.
	result := make([]int64, len(e.graph))
	for i := range result {
		result[i] = core.Inf
	}
	for node, d := range dist {
		if node < len(result) {
			result[node] = d
		}
	}

	return result, nil
}

// queueItem is one heap entry: a node and its tentative distance at the time
// the entry was pushed.
type queueItem struct {
	cost int64
	node int
}

// minQueue is a min-heap of queueItem ordered by cost ascending, ties broken
// by ascending node index. Entries are never removed on improvement, only
// superseded; stale entries are ignored when popped.
type minQueue []queueItem

func (q minQueue) Len() int { return len(q) }

func (q minQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}

	return q[i].node < q[j].node
}

func (q minQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *minQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *minQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
