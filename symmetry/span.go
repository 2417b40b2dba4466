// SPDX-License-Identifier: MIT

package symmetry

import (
	"slices"

	"github.com/katalvlaran/tensorsym/permutation"
)

// Span enumerates the group generated by a set of signed permutations.
//
// Error Conditions:
//   - ErrDimensionMismatch      : dim < 0, or a generator whose Len() != dim (NewSpan).
//   - ErrInconsistentGenerators : one permutation is reached with both signs (Err after Next).
//   - ErrGroupTooLarge          : WithMaxOrder is set and the group outgrows it (Err after Next).
//
// Steps (breadth-first closure over the Cayley graph):
//  1. Known set S = {identity}, keyed by Permutation.Key; queue = [identity].
//  2. Next pops x from the queue only when every discovered element has
//     already been yielded, so elements stream out while the queue grows.
//  3. For every generator g, in declaration order, form y = x∘g.
//  4. If y's permutation is new: check the order cap, record its sign in S,
//     append it to the queue. If it is known with the same sign, drop it.
//     If it is known with the other sign, stop with ErrInconsistentGenerators.
//  5. Finish when every discovered element has been expanded and yielded.
//  6. Reset drops everything but the identity and starts again from step 1.
//
// In a finite group every element is a product of generators (inverses are
// positive powers), so right multiplication alone reaches the whole group.
// Every edge x→x∘g is checked once x is expanded, so a full drain also
// proves the signs consistent.
//
// Elements are produced lazily in discovery order, identity first, using the
// Scanner pattern:
//
//	sp, _ := NewSpan(2, gens)
//	for sp.Next() {
//		use(sp.Symmetry())
//	}
//	if err := sp.Err(); err != nil { … }
//
// Complexity: O(|G|·|gens|·n) time, O(|G|·n) memory for group G.
type Span struct {
	dim      int
	gens     []permutation.Symmetry
	maxOrder int

	seen     map[string]bool // permutation key → sign
	elems    []permutation.Symmetry
	expanded int // elems[:expanded] have been multiplied by every generator
	yielded  int // elems[:yielded] have been returned by Next
	cur      permutation.Symmetry
	err      error
}

// NewSpan prepares enumeration of the group generated by gens, all of
// dimension dim. Only WithMaxOrder is meaningful among opts.
func NewSpan(dim int, gens []permutation.Symmetry, opts ...Option) (*Span, error) {
	if dim < 0 {
		return nil, symErrorf("NewSpan", ErrDimensionMismatch, "dimension %d < 0", dim)
	}
	for i, g := range gens {
		if g.Len() != dim {
			return nil, symErrorf("NewSpan", ErrDimensionMismatch, "generator %d has dimension %d, want %d", i, g.Len(), dim)
		}
	}
	o := gatherOptions(opts...)
	sp := &Span{dim: dim, gens: slices.Clone(gens), maxOrder: o.maxOrder}
	sp.Reset()

	return sp, nil
}

// Reset restarts enumeration from the identity and the generator list.
func (sp *Span) Reset() {
	id := permutation.IdentitySymmetry(sp.dim)
	sp.seen = map[string]bool{id.Permutation().Key(): false}
	sp.elems = append(sp.elems[:0], id)
	sp.expanded, sp.yielded = 0, 0
	sp.cur = permutation.Symmetry{}
	sp.err = nil
}

// Next advances to the next group element. It returns false when the group
// is exhausted or an error occurred; check Err afterwards.
func (sp *Span) Next() bool {
	if sp.err != nil {
		return false
	}
	for sp.yielded == len(sp.elems) {
		if sp.expanded == len(sp.elems) {
			return false
		}
		if err := sp.expand(sp.elems[sp.expanded]); err != nil {
			sp.err = err
			return false
		}
		sp.expanded++
	}
	sp.cur = sp.elems[sp.yielded]
	sp.yielded++

	return true
}

// expand multiplies x by every generator on the right.
func (sp *Span) expand(x permutation.Symmetry) error {
	for _, g := range sp.gens {
		y, err := x.Compose(g)
		if err != nil {
			return err
		}
		key := y.Permutation().Key()
		if sign, ok := sp.seen[key]; ok {
			if sign != y.Sign() {
				return symErrorf("Span", ErrInconsistentGenerators, "%v reached with both signs", y.Permutation())
			}
			continue
		}
		if sp.maxOrder > 0 && len(sp.seen) >= sp.maxOrder {
			return symErrorf("Span", ErrGroupTooLarge, "more than %d elements", sp.maxOrder)
		}
		sp.seen[key] = y.Sign()
		sp.elems = append(sp.elems, y)
	}

	return nil
}

// Symmetry returns the element produced by the last successful Next.
func (sp *Span) Symmetry() permutation.Symmetry { return sp.cur }

// Err returns the error that stopped enumeration, if any.
func (sp *Span) Err() error { return sp.err }

// Discovered returns how many distinct elements are known so far; after a
// complete drain it is the group order.
func (sp *Span) Discovered() int { return len(sp.elems) }

// Closure drains a fresh Span and returns every group element in discovery
// order, identity first.
func Closure(dim int, gens []permutation.Symmetry, opts ...Option) ([]permutation.Symmetry, error) {
	sp, err := NewSpan(dim, gens, opts...)
	if err != nil {
		return nil, err
	}
	for sp.Next() {
	}
	if err = sp.Err(); err != nil {
		return nil, err
	}

	return sp.elems, nil
}
