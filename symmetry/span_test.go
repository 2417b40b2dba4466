package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorsym/permutation"
	"github.com/katalvlaran/tensorsym/symmetry"
)

func TestClosure_IdentityOnly(t *testing.T) {
	elems, err := symmetry.Closure(3, []permutation.Symmetry{permutation.IdentitySymmetry(3)})
	require.NoError(t, err)
	require.Len(t, elems, 1)
	assert.True(t, elems[0].IsIdentity())

	elems, err = symmetry.Closure(3, nil)
	require.NoError(t, err)
	assert.Len(t, elems, 1, "no generators ⇒ trivial group")
}

func TestClosure_Swap(t *testing.T) {
	elems, err := symmetry.Closure(2, []permutation.Symmetry{sym(false, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"+[0 1]", "+[1 0]"}, sortedStrings(elems))
}

func TestClosure_AntiSwap(t *testing.T) {
	elems, err := symmetry.Closure(2, []permutation.Symmetry{sym(true, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"+[0 1]", "-[1 0]"}, sortedStrings(elems))
}

func TestClosure_Inconsistent(t *testing.T) {
	_, err := symmetry.Closure(2, []permutation.Symmetry{sym(true, 1, 0), sym(false, 1, 0)})
	assert.ErrorIs(t, err, symmetry.ErrInconsistentGenerators)

	// Identity with a minus sign contradicts the unit.
	_, err = symmetry.Closure(2, []permutation.Symmetry{sym(true, 0, 1)})
	assert.ErrorIs(t, err, symmetry.ErrInconsistentGenerators)

	// A 3-cycle is even, so declaring it antisymmetric is contradictory:
	// its cube is the identity with sign −.
	_, err = symmetry.Closure(3, []permutation.Symmetry{sym(true, 1, 2, 0)})
	assert.ErrorIs(t, err, symmetry.ErrInconsistentGenerators)
}

func TestClosure_S3AndAlternating(t *testing.T) {
	// Fully antisymmetric rank-3 tensor: sign equals parity.
	elems, err := symmetry.Closure(3, []permutation.Symmetry{sym(true, 1, 0, 2), sym(false, 1, 2, 0)})
	require.NoError(t, err)
	require.Len(t, elems, 6)
	for _, e := range elems {
		assert.Equal(t, e.Permutation().Parity() == 1, e.Sign(), "element %v", e)
	}
}

func TestClosure_Riemann(t *testing.T) {
	// R_{abcd}: antisymmetric in (ab), in (cd), symmetric under pair exchange.
	gens := []permutation.Symmetry{
		sym(true, 1, 0, 2, 3),
		sym(true, 0, 1, 3, 2),
		sym(false, 2, 3, 0, 1),
	}
	elems, err := symmetry.Closure(4, gens)
	require.NoError(t, err)
	assert.Len(t, elems, 8)
}

func TestSpan_DimensionMismatch(t *testing.T) {
	_, err := symmetry.NewSpan(3, []permutation.Symmetry{sym(false, 1, 0)})
	assert.ErrorIs(t, err, symmetry.ErrDimensionMismatch)
	_, err = symmetry.NewSpan(-1, nil)
	assert.ErrorIs(t, err, symmetry.ErrDimensionMismatch)
}

func TestSpan_LazyAndReset(t *testing.T) {
	sp, err := symmetry.NewSpan(4, []permutation.Symmetry{sym(false, 1, 2, 3, 0)})
	require.NoError(t, err)

	require.True(t, sp.Next())
	assert.True(t, sp.Symmetry().IsIdentity(), "identity comes first")
	assert.Equal(t, 1, sp.Discovered(), "nothing expanded before it is needed")

	require.True(t, sp.Next())
	assert.Equal(t, "+[1 2 3 0]", sp.Symmetry().String(), "then the generator itself")

	n := 2
	for sp.Next() {
		n++
	}
	require.NoError(t, sp.Err())
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, sp.Discovered())
	assert.False(t, sp.Next(), "exhausted span stays exhausted")

	sp.Reset()
	n = 0
	for sp.Next() {
		n++
	}
	assert.Equal(t, 4, n, "Reset restarts from the identity")
}

func TestSpan_MaxOrder(t *testing.T) {
	gens := []permutation.Symmetry{sym(false, 1, 0, 2, 3), sym(false, 1, 2, 3, 0)} // S4, order 24
	_, err := symmetry.Closure(4, gens, symmetry.WithMaxOrder(10))
	assert.ErrorIs(t, err, symmetry.ErrGroupTooLarge)

	elems, err := symmetry.Closure(4, gens, symmetry.WithMaxOrder(24))
	require.NoError(t, err)
	assert.Len(t, elems, 24)
}

func TestWithMaxOrder_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { symmetry.WithMaxOrder(0) })
	assert.Panics(t, func() { symmetry.WithLogger(nil) })
}

// TestClosure_MatchesBruteForce compares the breadth-first span with a
// two-sided brute-force closure on random small generating sets, signs
// included.
func TestClosure_MatchesBruteForce(t *testing.T) {
	rng := permutation.NewRand(2024)
	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 40; trial++ {
			k := 1 + rng.Intn(3)
			gens := make([]permutation.Symmetry, k)
			for i := range gens {
				gens[i] = permutation.RandomSymmetry(n, trial%2 == 1, rng)
			}

			want, consistent := bruteClosure(n, gens)
			got, err := symmetry.Closure(n, gens)
			if !consistent {
				assert.ErrorIs(t, err, symmetry.ErrInconsistentGenerators, "gens=%v", gens)
				continue
			}
			require.NoError(t, err, "gens=%v", gens)
			require.Len(t, got, len(want), "gens=%v", gens)
			for _, e := range got {
				sign, ok := want[e.Permutation().Key()]
				require.True(t, ok, "unexpected element %v", e)
				assert.Equal(t, sign, e.Sign(), "sign of %v", e)
			}
		}
	}
}
