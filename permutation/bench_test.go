package permutation_test

import (
	"testing"

	"github.com/katalvlaran/tensorsym/permutation"
)

// BenchmarkCompose measures composition of two random permutations of size 16.
func BenchmarkCompose(b *testing.B) {
	rng := permutation.NewRand(1)
	x := permutation.Random(16, rng)
	y := permutation.Random(16, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Compose(y); err != nil {
			b.Fatalf("Compose failed: %v", err)
		}
	}
}

// BenchmarkKey measures map-key construction used by group enumeration.
func BenchmarkKey(b *testing.B) {
	x := permutation.Random(16, permutation.NewRand(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Key()
	}
}
