package combinatorics

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tensorsym/permutation"
)

// PermutationGenerator enumerates permutations of n points in lexicographic
// successor order.
type PermutationGenerator struct {
	start []int // first element, restored by Reset
	buf   []int
	fresh bool // buf holds an element not yet returned
	done  bool
}

// Permutations enumerates all n! permutations of {0..n-1}, starting from the
// identity. n==0 yields a single empty permutation.
func Permutations(n int) (*PermutationGenerator, error) {
	if n < 0 {
		return nil, argErrorf("Permutations", "n=%d < 0", n)
	}

	return newPermutationGenerator(permutation.Identity(n).Slice()), nil
}

// PermutationsFrom enumerates permutations starting mid-sequence at start and
// continuing to the lexicographically last one. start is copied.
func PermutationsFrom(start []int) (*PermutationGenerator, error) {
	if _, err := permutation.New(start); err != nil {
		return nil, fmt.Errorf("PermutationsFrom: %w: %w", ErrInvalidArgument, err)
	}

	return newPermutationGenerator(slices.Clone(start)), nil
}

func newPermutationGenerator(start []int) *PermutationGenerator {
	g := &PermutationGenerator{start: start, buf: make([]int, len(start))}
	g.Reset()

	return g
}

// Reset rewinds to the starting permutation.
func (g *PermutationGenerator) Reset() {
	copy(g.buf, g.start)
	g.fresh, g.done = true, false
}

// Next returns the next permutation or nil.
// Complexity: amortized O(1), worst case O(n).
func (g *PermutationGenerator) Next() []int {
	if g.done {
		return nil
	}
	if g.fresh {
		g.fresh = false
		return g.buf
	}
	if !nextPermutation(g.buf) {
		g.done = true
		return nil
	}

	return g.buf
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	// Stage 1: find the rightmost ascent p[i] < p[i+1].
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// Stage 2: swap p[i] with the rightmost element larger than it.
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	// Stage 3: reverse the descending suffix.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
