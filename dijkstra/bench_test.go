package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/wayfind/wayfind/core"
	"github.com/wayfind/wayfind/dijkstra"
)

// buildRandomEngine constructs a connected directed graph with v nodes:
// a chain 0→1→…→v-1 guarantees reachability, then extra random arcs bring
// the out-degree up to roughly arcsPerNode. Weights are uniform in [1, 100].
// The generator is seeded deterministically for reproducibility.
func buildRandomEngine(v, arcsPerNode int, seed int64) *dijkstra.Engine {
	r := rand.New(rand.NewSource(seed))
	eng := dijkstra.New()
	for i := 0; i < v; i++ {
		arcs := make([]core.Arc, 0, arcsPerNode)
		if i+1 < v {
			arcs = append(arcs, core.Arc{To: i + 1, Weight: int64(r.Intn(100) + 1)})
		}
		for len(arcs) < arcsPerNode {
			arcs = append(arcs, core.Arc{To: r.Intn(v), Weight: int64(r.Intn(100) + 1)})
		}
		eng.SetNode(i, arcs)
	}

	return eng
}

// BenchmarkRun measures Run on graphs of increasing size and density.
func BenchmarkRun(b *testing.B) {
	cases := []struct {
		name        string
		vertices    int
		arcsPerNode int
	}{
		{"Small_100x4", 100, 4},
		{"Medium_1000x8", 1000, 8},
		{"Large_5000x8", 5000, 8},
	}

	for _, tc := range cases {
		eng := buildRandomEngine(tc.vertices, tc.arcsPerNode, 42)
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := eng.Run(core.Source(0)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
