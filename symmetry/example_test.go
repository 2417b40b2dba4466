package symmetry_test

import (
	"fmt"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/permutation"
	"github.com/katalvlaran/tensorsym/symmetry"
)

// ExampleStore declares the Riemann tensor symmetries and inspects the group.
func ExampleStore() {
	st, _ := symmetry.NewStructure([]index.IndexType{
		index.LatinLower, index.LatinLower, index.LatinLower, index.LatinLower,
	}, nil)
	riemann := symmetry.NewStore(st)

	_, _ = riemann.Add(index.LatinLower, permutation.MustNew(1, 0, 2, 3), true)
	_, _ = riemann.Add(index.LatinLower, permutation.MustNew(2, 3, 0, 1), false)
	redundant, _ := riemann.Add(index.LatinLower, permutation.MustNew(0, 1, 3, 2), true)

	fmt.Println(riemann.Order(), redundant, riemann.DiffIDs())
	// Output:
	// 8 false [0 0 0 0]
}

// ExampleClosure shows the inconsistency check.
func ExampleClosure() {
	swap := permutation.MustNew(1, 0)
	_, err := symmetry.Closure(2, []permutation.Symmetry{
		permutation.NewSymmetry(swap, false),
		permutation.NewSymmetry(swap, true),
	})
	fmt.Println(err != nil)
	// Output:
	// true
}
