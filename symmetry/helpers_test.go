package symmetry_test

import (
	"sort"

	"github.com/katalvlaran/tensorsym/permutation"
)

// bruteClosure multiplies every known element by every generator on both
// sides until nothing new appears. It returns ok=false when some
// permutation shows up with both signs.
func bruteClosure(dim int, gens []permutation.Symmetry) (map[string]bool, bool) {
	id := permutation.IdentitySymmetry(dim)
	known := map[string]permutation.Symmetry{id.Permutation().Key(): id}
	for changed := true; changed; {
		changed = false
		current := make([]permutation.Symmetry, 0, len(known))
		for _, s := range known {
			current = append(current, s)
		}
		for _, a := range current {
			for _, g := range gens {
				l, _ := a.Compose(g)
				r, _ := g.Compose(a)
				for _, y := range []permutation.Symmetry{l, r} {
					k := y.Permutation().Key()
					if prev, ok := known[k]; ok {
						if prev.Sign() != y.Sign() {
							return nil, false
						}
						continue
					}
					known[k] = y
					changed = true
				}
			}
		}
	}
	out := make(map[string]bool, len(known))
	for k, s := range known {
		out[k] = s.Sign()
	}

	return out, true
}

// sortedStrings renders symmetries and sorts them, for order-insensitive
// comparisons.
func sortedStrings(syms []permutation.Symmetry) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.String()
	}
	sort.Strings(out)

	return out
}

func sym(sign bool, p ...int) permutation.Symmetry {
	return permutation.NewSymmetry(permutation.MustNew(p...), sign)
}
