package combinatorics

// CombinationGenerator enumerates k-subsets of {0..n-1} as ascending arrays
// in lexicographic order.
type CombinationGenerator struct {
	n, k  int
	buf   []int
	fresh bool
	done  bool
}

// Combinations enumerates the C(n,k) k-subsets of {0..n-1}.
// k==0 yields a single empty subset.
func Combinations(n, k int) (*CombinationGenerator, error) {
	if k < 0 || n < 0 {
		return nil, argErrorf("Combinations", "negative size n=%d k=%d", n, k)
	}
	if n < k {
		return nil, argErrorf("Combinations", "n=%d < k=%d", n, k)
	}
	g := &CombinationGenerator{n: n, k: k, buf: make([]int, k)}
	g.Reset()

	return g, nil
}

// Reset rewinds to {0..k-1}.
func (g *CombinationGenerator) Reset() {
	for i := range g.buf {
		g.buf[i] = i
	}
	g.fresh, g.done = true, false
}

// Next returns the next combination or nil.
// Complexity: O(k) worst case.
func (g *CombinationGenerator) Next() []int {
	if g.done {
		return nil
	}
	if g.fresh {
		g.fresh = false
		return g.buf
	}
	// Rightmost slot that can still grow.
	i := g.k - 1
	for i >= 0 && g.buf[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true
		return nil
	}
	g.buf[i]++
	for j := i + 1; j < g.k; j++ {
		g.buf[j] = g.buf[j-1] + 1
	}

	return g.buf
}
