package mcm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sadf/mcm"
)

// benchGraph builds a strongly connected graph of n nodes: a ring plus 4n
// random edges with delays in {1,2}.
func benchGraph(n int) *mcm.Graph {
	rng := rand.New(rand.NewSource(1))
	return randomGraph(rng, n, 5*n, true, func() float64 { return float64(1 + rng.Intn(2)) })
}

// BenchmarkMaximumCycleMean_200 runs Karp on a 200-node graph.
// Karp is O(V·E), about 200·1000 relaxations per call.
func BenchmarkMaximumCycleMean_200(b *testing.B) {
	g := benchGraph(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mcm.MaximumCycleMean(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMaximumCycleRatio_200 runs pruning plus Young-Tarjan-Orlin on the
// same graph.
func BenchmarkMaximumCycleRatio_200(b *testing.B) {
	g := benchGraph(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mcm.MaximumCycleRatio(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStronglyConnectedComponents_10000(b *testing.B) {
	g := benchGraph(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mcm.StronglyConnectedComponents(g)
	}
}
