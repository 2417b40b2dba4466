// SPDX-License-Identifier: MIT

package symmetry

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/permutation"
)

// Store holds the generating basis of the symmetry group of one Structure,
// together with the enumerated group and the cached diff-id partition.
//
// The basis only grows. Every mutation re-runs the Span closure and commits
// only on success, so readers always observe a consistent group.
type Store struct {
	mu        sync.RWMutex
	structure Structure
	opts      Options

	gens  []permutation.Symmetry // non-redundant generators in insertion order
	elems []permutation.Symmetry // the full group, identity first
	signs map[string]bool        // permutation key → sign for every element
	ids   []int                  // cached diff-ids; nil ⇒ recompute
}

// NewStore creates an empty store (trivial group) for st.
func NewStore(st Structure, opts ...Option) *Store {
	s := &Store{structure: st, opts: gatherOptions(opts...)}
	id := permutation.IdentitySymmetry(st.Size())
	s.elems = []permutation.Symmetry{id}
	s.signs = map[string]bool{id.Permutation().Key(): false}

	return s
}

// Structure returns the slot signature this store describes.
func (s *Store) Structure() Structure { return s.structure }

// Dimension returns the number of slots.
func (s *Store) Dimension() int { return s.structure.Size() }

// Add declares a generator acting on the slots of type t only: p permutes
// the Count(t) slots of that type in their order of appearance and every
// other slot stays fixed. It reports whether the generator enlarged the group
// (false ⇒ already implied by earlier generators).
//
// Errors: ErrUnknownType, ErrDimensionMismatch, ErrIncompatibleSlots,
// ErrInconsistentGenerators, ErrGroupTooLarge. On error the store is unchanged.
func (s *Store) Add(t index.IndexType, p permutation.Permutation, sign bool) (bool, error) {
	pos := s.structure.Positions(t)
	if len(pos) == 0 {
		return false, symErrorf("Store.Add", ErrUnknownType, "type %v in %v", t, s.structure)
	}
	if p.Len() != len(pos) {
		return false, symErrorf("Store.Add", ErrDimensionMismatch, "permutation of %d for %d slots of %v", p.Len(), len(pos), t)
	}
	full, err := p.Embed(s.structure.Size(), pos)
	if err != nil {
		return false, err
	}

	return s.AddFull(permutation.NewSymmetry(full, sign))
}

// AddSymmetry is Add with the generator given as a Symmetry.
func (s *Store) AddSymmetry(t index.IndexType, sym permutation.Symmetry) (bool, error) {
	return s.Add(t, sym.Permutation(), sym.Sign())
}

// AddFull declares a generator over all slots at once. It must map every
// slot onto a slot of identical signature. It reports whether the group grew.
//
// Error Conditions:
//   - ErrDimensionMismatch      : sym.Len() != Dimension().
//   - ErrIncompatibleSlots      : some slot i is sent to a slot of another type,
//     or of other variance for a non-metric type.
//   - ErrInconsistentGenerators : sym, or a product with the existing group,
//     contradicts a sign already established.
//   - ErrGroupTooLarge          : the enlarged group exceeds WithMaxOrder.
//
// On any error the store is left exactly as it was.
//
// Steps:
//  1. Validate dimension and slot compatibility without taking the lock.
//  2. Under the write lock, look sym's permutation up in the current group:
//     same sign ⇒ redundant, return false; opposite sign ⇒ reject.
//  3. Otherwise close the enlarged basis with Closure into fresh slices.
//  4. Commit generators, elements and the sign table together and drop the
//     cached diff-ids.
//
// Complexity: O(|G'|·|gens|·n) where G' is the enlarged group; O(n) when
// step 2 decides.
func (s *Store) AddFull(sym permutation.Symmetry) (bool, error) {
	n := s.structure.Size()
	if sym.Len() != n {
		return false, symErrorf("Store.AddFull", ErrDimensionMismatch, "generator of %d for %d slots", sym.Len(), n)
	}
	p := sym.Permutation()
	for i := 0; i < n; i++ {
		if !s.structure.Compatible(i, p.At(i)) {
			return false, symErrorf("Store.AddFull", ErrIncompatibleSlots, "slot %d → %d in %v", i, p.At(i), s.structure)
		}
	}
	log := s.opts.logger.With(zap.Stringer("structure", s.structure), zap.Stringer("generator", sym))

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage 1: membership short-cut against the current group.
	if known, ok := s.signs[p.Key()]; ok {
		if known != sym.Sign() {
			log.Warn("symmetry rejected: contradicts existing group")
			return false, symErrorf("Store.AddFull", ErrInconsistentGenerators, "%v already implied with opposite sign", p)
		}
		log.Debug("symmetry redundant")
		return false, nil
	}

	// Stage 2: close the enlarged basis; nothing is committed on failure.
	gens := append(slices.Clone(s.gens), sym)
	elems, err := Closure(n, gens, maxOrderOption(s.opts.maxOrder)...)
	if err != nil {
		log.Warn("symmetry rejected", zap.Error(err))
		return false, err
	}

	// Stage 3: commit.
	signs := make(map[string]bool, len(elems))
	for _, e := range elems {
		signs[e.Permutation().Key()] = e.Sign()
	}
	s.gens, s.elems, s.signs, s.ids = gens, elems, signs, nil
	log.Debug("symmetry accepted", zap.Int("order", len(elems)), zap.Int("generators", len(gens)))

	return true, nil
}

// maxOrderOption forwards a resolved limit; zero means no option.
func maxOrderOption(limit int) []Option {
	if limit < 1 {
		return nil
	}

	return []Option{WithMaxOrder(limit)}
}

// IsEmpty reports whether no non-trivial generator has been accepted.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.gens) == 0
}

// Lookup reports whether the group contains p and, if so, with which sign.
// Complexity: O(1) for an empty store, O(n) otherwise.
func (s *Store) Lookup(p permutation.Permutation) (sign bool, ok bool) {
	if p.Len() != s.structure.Size() {
		return false, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.gens) == 0 {
		return false, p.IsIdentity()
	}
	sign, ok = s.signs[p.Key()]

	return sign, ok
}

// Contains reports whether sym (permutation and sign) is a group element.
func (s *Store) Contains(sym permutation.Symmetry) bool {
	sign, ok := s.Lookup(sym.Permutation())

	return ok && sign == sym.Sign()
}

// Generators returns a copy of the accepted basis.
func (s *Store) Generators() []permutation.Symmetry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.gens)
}

// Elements returns a copy of every group element in discovery order,
// identity first.
func (s *Store) Elements() []permutation.Symmetry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.elems)
}

// Each calls fn for every group element in discovery order until fn returns
// false. The store is read-locked during the walk, so fn must not call Add.
func (s *Store) Each(fn func(permutation.Symmetry) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.elems {
		if !fn(e) {
			return
		}
	}
}

// Order returns the group order (1 for an empty store).
func (s *Store) Order() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.elems)
}

// DiffIDs returns the equivalence partition of slot positions: two positions
// share an id iff generators connect them. Ids are numbered by first
// appearance. The result is a fresh copy of the cached partition, which is
// rebuilt on first access after an accepted Add.
func (s *Store) DiffIDs() []int {
	s.mu.RLock()
	ids := s.ids
	s.mu.RUnlock()
	if ids != nil {
		return slices.Clone(ids)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = diffIDs(s.structure.Size(), s.gens)
	}

	return slices.Clone(s.ids)
}
