package combinatorics

import (
	"math"
	"slices"
)

// Generator is a restartable cursor over a finite sequence of int arrays.
type Generator interface {
	// Next returns the next array, or nil once the sequence is exhausted.
	// The returned slice is owned by the generator and overwritten by the
	// following call.
	Next() []int

	// Reset rewinds the generator to its first element.
	Reset()
}

// Collect drains g from its current position, copying every element.
func Collect(g Generator) [][]int {
	var out [][]int
	for t := g.Next(); t != nil; t = g.Next() {
		out = append(out, slices.Clone(t))
	}

	return out
}

// Count drains g from its current position and returns how many elements
// were produced.
func Count(g Generator) int {
	n := 0
	for t := g.Next(); t != nil; t = g.Next() {
		n++
	}

	return n
}

// Factorial returns n!, saturating at math.MaxUint64. Negative n yields 0.
func Factorial(n int) uint64 {
	if n < 0 {
		return 0
	}
	r := uint64(1)
	for i := 2; i <= n; i++ {
		if r > math.MaxUint64/uint64(i) {
			return math.MaxUint64
		}
		r *= uint64(i)
	}

	return r
}

// Binomial returns C(n,k), or 0 when k is outside [0,n]. It saturates at
// math.MaxUint64.
func Binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := uint64(1)
	for i := 1; i <= k; i++ {
		// r·(n-k+i) is divisible by i at every step.
		m := uint64(n - k + i)
		if r > math.MaxUint64/m {
			return math.MaxUint64
		}
		r = r * m / uint64(i)
	}

	return r
}
