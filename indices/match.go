package indices

import "github.com/katalvlaran/tensorsym/permutation"

// Match is the outcome of a symmetry-aware comparison.
type Match int8

const (
	MatchNone          Match = iota // no group element relates the arrangements
	MatchEqual                      // related by an ordinary symmetry
	MatchEqualUpToSign              // related by an antisymmetry: equal up to sign −1
)

// Matched reports whether the arrangements coincide up to sign.
func (m Match) Matched() bool { return m != MatchNone }

// String names the outcome.
func (m Match) String() string {
	switch m {
	case MatchEqual:
		return "equal"
	case MatchEqualUpToSign:
		return "equal up to sign"
	default:
		return "no match"
	}
}

// EqualsWithSymmetries looks for a group element s of the receiver's store
// with ix[i] == other[s[i]] for all i, i.e. applying s to other reproduces
// the receiver. It is a pure query: neither container nor the store changes.
//
// Result:
//   - MatchNone          : sizes differ, or no element relates the arrays.
//   - MatchEqual         : the first matching element has sign false.
//   - MatchEqualUpToSign : the first matching element has sign true, so the
//     two occurrences differ by a factor of −1.
//
// Steps:
//  1. Different sizes ⇒ MatchNone.
//  2. No store, or a store of another dimension ⇒ plain Equal.
//  3. Walk the store's elements in discovery order (identity first) under
//     its read lock; compare slot by slot and stop at the first mismatch.
//  4. Return on the first element that matches every slot.
//
// Indices in a container are distinct, so at most one permutation can match
// and stopping at the first hit is exact.
//
// Complexity: O(|G|·n) worst case, O(n) when the identity matches.
func (ix *Indices) EqualsWithSymmetries(other *Indices) Match {
	if len(ix.data) != len(other.data) {
		return MatchNone
	}
	if ix.store == nil || ix.store.Dimension() != len(ix.data) {
		if ix.Equal(other) {
			return MatchEqual
		}
		return MatchNone
	}

	result := MatchNone
	ix.store.Each(func(s permutation.Symmetry) bool {
		p := s.Permutation()
		for i, x := range ix.data {
			if x != other.data[p.At(i)] {
				return true
			}
		}
		result = MatchEqual
		if s.Sign() {
			result = MatchEqualUpToSign
		}
		return false
	})

	return result
}
