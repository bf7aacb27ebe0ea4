// Package floyd_warshall_test provides runnable examples for the
// Floyd-Warshall engine, executed via "go test -run Example".
package floyd_warshall_test

import (
	"fmt"

	"github.com/wayfind/wayfind/floyd_warshall"
)

// ExampleEngine_Run demonstrates all-pairs distances on a complete
// three-node graph. Complexity: O(V³).
func ExampleEngine_Run() {
	// 1) Build the graph: every ordered pair gets a direct edge.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 1)
	eng.SetEdge(0, 2, 2)
	eng.SetEdge(1, 2, 1)
	eng.SetEdge(1, 0, 3)
	eng.SetEdge(2, 0, 4)
	eng.SetEdge(2, 1, 5)

	// 2) Run without a start node: the result covers every pair.
	d, err := eng.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("d[0][1]=%d d[0][2]=%d d[1][2]=%d\n", d[0][1], d[0][2], d[1][2])
	// Output: d[0][1]=1 d[0][2]=2 d[1][2]=1
}

// ExampleEngine_Run_negativeCycleDiagnostic shows the caller-side cycle
// check: a negative diagonal entry after Run marks a negative cycle.
func ExampleEngine_Run_negativeCycleDiagnostic() {
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 1)
	eng.SetEdge(1, 0, -3)

	d, _ := eng.Run()
	fmt.Println(d[0][0] < 0)
	// Output: true
}
