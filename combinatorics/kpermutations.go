package combinatorics

// KPermutationGenerator enumerates ordered selections of k distinct points
// out of n: every k-combination, each in all of its k! orders.
type KPermutationGenerator struct {
	comb  *CombinationGenerator
	perm  *PermutationGenerator
	chose []int // current combination, owned by comb
	buf   []int
}

// KPermutations enumerates the n!/(n-k)! k-permutations of {0..n-1}.
func KPermutations(n, k int) (*KPermutationGenerator, error) {
	comb, err := Combinations(n, k)
	if err != nil {
		return nil, err
	}
	perm, err := Permutations(k)
	if err != nil {
		return nil, err
	}
	g := &KPermutationGenerator{comb: comb, perm: perm, buf: make([]int, k)}
	g.Reset()

	return g, nil
}

// Reset rewinds both inner generators.
func (g *KPermutationGenerator) Reset() {
	g.comb.Reset()
	g.perm.Reset()
	g.chose = g.comb.Next()
}

// Next returns the next k-permutation or nil.
func (g *KPermutationGenerator) Next() []int {
	for g.chose != nil {
		if p := g.perm.Next(); p != nil {
			for i, j := range p {
				g.buf[i] = g.chose[j]
			}
			return g.buf
		}
		g.chose = g.comb.Next()
		g.perm.Reset()
	}

	return nil
}
