package indices_test

import (
	"fmt"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/indices"
	"github.com/katalvlaran/tensorsym/permutation"
	"github.com/katalvlaran/tensorsym/symmetry"
)

// ExampleIndices_EqualsWithSymmetries compares F_{ab} with F_{ba} for an
// antisymmetric tensor F.
func ExampleIndices_EqualsWithSymmetries() {
	a := index.Encode(0, index.LatinLower, false)
	b := index.Encode(1, index.LatinLower, false)

	reg := symmetry.NewRegistry()
	fab, _ := indices.NewTensorIndices(reg, "F", a, b)
	_, _ = fab.Symmetries().Add(index.LatinLower, permutation.MustNew(1, 0), true)

	fba, _ := indices.NewTensorIndices(reg, "F", b, a)
	fmt.Println(fab, fba, fab.EqualsWithSymmetries(fba))
	// Output:
	// [_a0 _a1] [_a1 _a0] equal up to sign
}
