// SPDX-License-Identifier: MIT

// Package symmetry tracks which permutations of a tensor's index slots leave
// the tensor invariant, or invariant up to sign.
//
// Building blocks:
//
//   - Structure — the ordered slot signature of a tensor (one IndexType per
//     slot, plus variance for non-metric types). Generators may only
//     exchange slots of identical signature.
//   - Span — breadth-first enumerator of the group generated by a finite set
//     of signed permutations. It detects inconsistent generating sets, i.e.
//     the same permutation reached with two different signs.
//   - Store — the generating basis for one Structure. It validates and lifts
//     per-type generators into the full slot space, answers membership
//     queries and computes the diff-id partition of slot positions.
//   - Registry — explicit (non-global) interning of stores per tensor name and
//     Structure, so every occurrence of a tensor shares one Store.
//
// Lifecycle of a Store:
//
//	empty ──Add(non-redundant)──▶ populated ──Add(…)──▶ populated
//	  │                                   ▲
//	  └────Add(redundant) = no-op─────────┘ (returns false)
//
// A rejected Add (dimension mismatch, incompatible slots, inconsistent sign,
// group too large) leaves the store in its last consistent state.
//
// Concurrency: a Store serializes Add behind a mutex and allows concurrent
// readers (Lookup, Contains, Elements, DiffIDs). The expected pattern is to
// declare all symmetries during setup and read concurrently afterwards.
//
// Logging: Store and Registry report accepted, redundant and rejected
// generators through the *zap.Logger given by WithLogger (no-op by default).
// Span never logs.
//
// Errors:
//
//	ErrInconsistentGenerators - same permutation reachable with both signs.
//	ErrDimensionMismatch      - generator length differs from the slot count.
//	ErrIncompatibleSlots      - generator moves a slot onto a slot of another signature.
//	ErrUnknownType            - the structure has no slot of the requested type.
//	ErrGroupTooLarge          - enumeration exceeded WithMaxOrder.
package symmetry
