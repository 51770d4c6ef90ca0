package toggle_test

import (
	"testing"

	"github.com/katalvlaran/flipgrid/toggle"
)

// BenchmarkBuildMatrix_Cross8x8 measures a cold matrix build at the
// largest interactive board size.
// Complexity: O((R·C)·f), f = 5 for the cross rule.
func BenchmarkBuildMatrix_Cross8x8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := toggle.BuildVariantMatrix(8, 8, toggle.Cross); err != nil {
			b.Fatalf("BuildVariantMatrix failed: %v", err)
		}
	}
}

// BenchmarkModelCache_Hit measures the read path once a matrix is built.
func BenchmarkModelCache_Hit(b *testing.B) {
	cache := toggle.NewModelCache()
	if _, err := cache.Matrix(8, 8, toggle.Cross); err != nil {
		b.Fatalf("setup Matrix failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cache.Matrix(8, 8, toggle.Cross); err != nil {
			b.Fatalf("Matrix failed: %v", err)
		}
	}
}
