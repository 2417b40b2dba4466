package indices_test

import (
	"testing"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/indices"
	"github.com/katalvlaran/tensorsym/permutation"
	"github.com/katalvlaran/tensorsym/symmetry"
)

// BenchmarkEqualsWithSymmetries_S5 compares two arrangements of a fully
// symmetric rank-5 tensor; the match is the last group element in the worst case.
func BenchmarkEqualsWithSymmetries_S5(b *testing.B) {
	idx := make([]index.Index, 5)
	for i := range idx {
		idx[i] = index.Encode(uint32(i), index.LatinLower, false)
	}
	reg := symmetry.NewRegistry()
	x, err := indices.NewTensorIndices(reg, "S", idx...)
	if err != nil {
		b.Fatalf("NewTensorIndices: %v", err)
	}
	store := x.Symmetries()
	_, _ = store.Add(index.LatinLower, permutation.MustNew(1, 0, 2, 3, 4), false)
	_, _ = store.Add(index.LatinLower, permutation.MustNew(1, 2, 3, 4, 0), false)

	rev := []index.Index{idx[4], idx[3], idx[2], idx[1], idx[0]}
	y, _ := indices.NewTensorIndices(reg, "S", rev...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !x.EqualsWithSymmetries(y).Matched() {
			b.Fatal("expected a match")
		}
	}
}
