package builder_test

import (
	"testing"

	"github.com/katalvlaran/randmst/builder"
)

// BenchmarkGenerateDirect measures pruned direct-sample generation at n=2048.
func BenchmarkGenerateDirect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = builder.Generate(2048, builder.DirectSample, builder.DirectDefaults(), builder.WithSeed(int64(i+1)))
	}
}

// BenchmarkGenerateEuclidean4D measures serial 4-D generation at n=2048.
func BenchmarkGenerateEuclidean4D(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = builder.Generate(2048, builder.CoordinateDistance, builder.Euclidean4DDefaults(),
			builder.WithSeed(int64(i+1)), builder.WithDimension(4))
	}
}

// BenchmarkGenerateEuclidean4DParallel is the same workload split over 4 workers.
func BenchmarkGenerateEuclidean4DParallel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = builder.Generate(2048, builder.CoordinateDistance, builder.Euclidean4DDefaults(),
			builder.WithSeed(int64(i+1)), builder.WithDimension(4), builder.WithWorkers(4))
	}
}
