package permutation

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Permutation is an immutable bijection on {0..n-1} in one-line notation.
// The zero value is the empty permutation (n == 0).
type Permutation struct {
	p []int // never mutated after construction
}

// Identity returns the identity permutation of dimension n.
// Negative n yields the empty permutation.
// Complexity: O(n).
func Identity(n int) Permutation {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return Permutation{p: p}
}

// New validates p and returns it as a Permutation. The input is copied, so
// the caller may reuse it.
// Stage 1 (Validate): every value in range, no value seen twice.
// Stage 2 (Finalize): copy into a fresh backing array.
// Complexity: O(n) time and memory.
func New(p []int) (Permutation, error) {
	if err := validate(p); err != nil {
		return Permutation{}, err
	}

	return Permutation{p: slices.Clone(p)}, nil
}

// MustNew is New that panics on invalid input. Intended for literals in
// tests and package-level tables.
func MustNew(p ...int) Permutation {
	perm, err := New(p)
	if err != nil {
		panic(err)
	}

	return perm
}

// validate checks that p is a bijection on 0..len(p)-1.
func validate(p []int) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return permErrorf("New", ErrInvalidPermutation, "p[%d]=%d out of range [0,%d)", i, v, len(p))
		}
		if seen[v] {
			return permErrorf("New", ErrInvalidPermutation, "value %d repeated", v)
		}
		seen[v] = true
	}

	return nil
}

// Transposition returns the permutation of dimension n exchanging i and j.
func Transposition(n, i, j int) (Permutation, error) {
	if i < 0 || i >= n || j < 0 || j >= n {
		return Permutation{}, permErrorf("Transposition", ErrDimensionMismatch, "(%d,%d) outside dimension %d", i, j, n)
	}
	t := Identity(n)
	t.p[i], t.p[j] = j, i

	return t, nil
}

// Cycle returns the permutation of dimension n mapping points[0]→points[1]→…→points[0].
// Points must be distinct and in range.
func Cycle(n int, points ...int) (Permutation, error) {
	c := Identity(n)
	seen := make(map[int]struct{}, len(points))
	for k, from := range points {
		if from < 0 || from >= n {
			return Permutation{}, permErrorf("Cycle", ErrDimensionMismatch, "point %d outside dimension %d", from, n)
		}
		if _, dup := seen[from]; dup {
			return Permutation{}, permErrorf("Cycle", ErrInvalidPermutation, "point %d repeated", from)
		}
		seen[from] = struct{}{}
		c.p[from] = points[(k+1)%len(points)]
	}

	return c, nil
}

// Len returns the dimension n.
func (a Permutation) Len() int { return len(a.p) }

// At returns the image of i. It panics if i is out of range, like slice indexing.
func (a Permutation) At(i int) int { return a.p[i] }

// Slice returns a copy of the one-line notation.
func (a Permutation) Slice() []int { return slices.Clone(a.p) }

// IsIdentity reports whether a maps every point to itself.
// Complexity: O(n).
func (a Permutation) IsIdentity() bool {
	for i, v := range a.p {
		if i != v {
			return false
		}
	}

	return true
}

// Compose returns the permutation i ↦ other[a[i]] (a is applied first).
// Complexity: O(n).
func (a Permutation) Compose(other Permutation) (Permutation, error) {
	if len(a.p) != len(other.p) {
		return Permutation{}, permErrorf("Compose", ErrDimensionMismatch, "%d vs %d", len(a.p), len(other.p))
	}
	r := make([]int, len(a.p))
	for i, v := range a.p {
		r[i] = other.p[v]
	}

	return Permutation{p: r}, nil
}

// Inverse returns a⁻¹, i.e. the permutation with a.Compose(a⁻¹) == identity.
// Complexity: O(n).
func (a Permutation) Inverse() Permutation {
	r := make([]int, len(a.p))
	for i, v := range a.p {
		r[v] = i
	}

	return Permutation{p: r}
}

// Pow returns a composed with itself k times; negative k uses the inverse.
// Complexity: O(n·log|k|).
func (a Permutation) Pow(k int) Permutation {
	base := a
	if k < 0 {
		base, k = a.Inverse(), -k
	}
	result := Identity(len(a.p))
	for k > 0 {
		if k&1 == 1 {
			result, _ = result.Compose(base)
		}
		base, _ = base.Compose(base)
		k >>= 1
	}

	return result
}

// Equal reports whether a and b have the same dimension and images.
func (a Permutation) Equal(b Permutation) bool { return slices.Equal(a.p, b.p) }

// Compare orders permutations lexicographically by one-line notation; a
// shorter permutation that is a prefix sorts first.
func (a Permutation) Compare(b Permutation) int { return slices.Compare(a.p, b.p) }

// Key returns a compact string usable as a map key. Equal permutations have
// equal keys and vice versa.
func (a Permutation) Key() string {
	buf := make([]byte, 0, len(a.p)+1)
	for _, v := range a.p {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// Cycles returns the non-trivial cycles of a, each starting at its smallest
// point, ordered by that point.
// Complexity: O(n).
func (a Permutation) Cycles() [][]int {
	var (
		out  [][]int
		seen = make([]bool, len(a.p))
	)
	for start := range a.p {
		if seen[start] || a.p[start] == start {
			seen[start] = true
			continue
		}
		var cyc []int
		for x := start; !seen[x]; x = a.p[x] {
			seen[x] = true
			cyc = append(cyc, x)
		}
		out = append(out, cyc)
	}

	return out
}

// Parity returns 0 for even and 1 for odd permutations.
func (a Permutation) Parity() int {
	par := 0
	for _, c := range a.Cycles() {
		par ^= (len(c) - 1) & 1
	}

	return par
}

// Order returns the smallest k ≥ 1 with aᵏ == identity (lcm of cycle lengths).
func (a Permutation) Order() int {
	ord := 1
	for _, c := range a.Cycles() {
		ord = lcm(ord, len(c))
	}

	return ord
}

// Embed lifts a into dimension n by acting on the given positions and
// leaving every other point fixed: result[positions[i]] = positions[a[i]].
// Positions must be distinct, in [0,n) and len(positions) == a.Len().
// Complexity: O(n).
func (a Permutation) Embed(n int, positions []int) (Permutation, error) {
	if len(positions) != len(a.p) {
		return Permutation{}, permErrorf("Embed", ErrDimensionMismatch, "%d positions for dimension %d", len(positions), len(a.p))
	}
	r := Identity(n)
	seen := make([]bool, n)
	for i, pos := range positions {
		if pos < 0 || pos >= n {
			return Permutation{}, permErrorf("Embed", ErrDimensionMismatch, "position %d outside dimension %d", pos, n)
		}
		if seen[pos] {
			return Permutation{}, permErrorf("Embed", ErrInvalidPermutation, "position %d repeated", pos)
		}
		seen[pos] = true
		r.p[pos] = positions[a.p[i]]
	}

	return r, nil
}

// String renders the one-line notation, e.g. "[1 0 2]".
func (a Permutation) String() string { return fmt.Sprint(a.p) }

// Apply permutes src by p: out[i] = src[p[i]]. src is not modified.
// Complexity: O(n).
func Apply[T any](p Permutation, src []T) ([]T, error) {
	if len(src) != len(p.p) {
		return nil, permErrorf("Apply", ErrDimensionMismatch, "slice of %d for dimension %d", len(src), len(p.p))
	}
	out := make([]T, len(src))
	for i, v := range p.p {
		out[i] = src[v]
	}

	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
