package walker_test

import (
	"testing"

	"github.com/katalvlaran/relaxwalk/builder"
	"github.com/katalvlaran/relaxwalk/core"
	"github.com/katalvlaran/relaxwalk/walker"
)

// buildGrid builds a side×side grid with distances 1..9 drawn from a fixed seed;
// cell (r,c) has id r*side+c+1.
func buildGrid(b *testing.B, side int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(side*side, 2*side*side)},
		[]builder.BuilderOption{builder.WithSeed(benchSeed), builder.WithUniformWeight(1, 9)},
		builder.Grid(side, side),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

const benchSeed = 7

func benchmarkStrategy(b *testing.B, s walker.Strategy) {
	const side = 30
	g := buildGrid(b, side)
	last := core.NodeID(side * side)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walker.FindShortestPath(g, 1, last, walker.WithStrategy(s))
	}
}

// BenchmarkFindShortestPath_FIFO measures the default relaxation queue on a 30×30 grid.
func BenchmarkFindShortestPath_FIFO(b *testing.B) { benchmarkStrategy(b, walker.StrategyFIFO) }

// BenchmarkFindShortestPath_Heap measures the heap strategy on the same grid.
func BenchmarkFindShortestPath_Heap(b *testing.B) { benchmarkStrategy(b, walker.StrategyHeap) }

// BenchmarkSeedGraph measures the seed query 1 → 6.
func BenchmarkSeedGraph(b *testing.B) {
	g := newSeedGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walker.FindShortestPath(g, 1, 6)
	}
}
