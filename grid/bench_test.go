package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/phasor/grid"
)

// BenchmarkComponents measures Components on a random 512×512 mask.
// Complexity: O(N·2n)
func BenchmarkComponents(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	f, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	mask := make([]bool, f.Len())
	for i := range mask {
		mask[i] = rng.Intn(3) == 0
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Components(mask)
	}
}

// BenchmarkShifted measures a shifted copy along the slow axis of a 512×512 field.
func BenchmarkShifted(b *testing.B) {
	f, err := grid.New(512, 512)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Shifted(1, 1)
	}
}
