package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/chromatic/gen"
	"github.com/katalvlaran/chromatic/quotient"
	"github.com/katalvlaran/chromatic/solver"
)

// circulant16 is dense enough to force real branching.
func circulant16(b *testing.B) quotient.Graph {
	b.Helper()
	g, err := gen.Circulant(16, 1, 2, 4)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkRun_Circulant16(b *testing.B) {
	g := circulant16(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := solver.NewSearch(g.OrigN, time.Now(), nil)
		if err != nil {
			b.Fatal(err)
		}
		s.Run(context.Background(), g)
	}
}

func BenchmarkRun_Circulant16Parallel(b *testing.B) {
	g := circulant16(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := solver.NewSearch(g.OrigN, time.Now(), nil,
			solver.WithThreads(4),
			solver.WithMinVerticesForTask(4),
			solver.WithMaxTaskDepth(8))
		if err != nil {
			b.Fatal(err)
		}
		s.Run(context.Background(), g)
	}
}

func BenchmarkDecompose_Circulant16(b *testing.B) {
	g := circulant16(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := solver.NewSearch(g.OrigN, time.Now(), nil, solver.WithDecompDepth(3))
		if err != nil {
			b.Fatal(err)
		}
		_ = s.Decompose(context.Background(), g)
	}
}
