// Package tensorsym is a toolkit for the index bookkeeping of tensor
// expressions: packing indices into machine words, describing which slot
// permutations leave a tensor invariant (up to sign), and comparing index
// lists modulo those symmetries.
//
// 🚀 What is tensorsym?
//
//	A small, thread-safe library that brings together:
//		• Index codec: variance, type and name packed into one uint32
//		• Permutations & signed symmetries: compose, invert, cycles, parity
//		• Combinatorial generators: permutations, combinations, tuples
//		• Group span: lazy enumeration of the group a basis generates
//		• Symmetry stores: per-tensor groups with consistency checks
//		• Index containers: sorted/simple lists with symmetry-aware equality
//
// ✨ Why choose tensorsym?
//
//   - Deterministic – every enumeration has a fixed, documented order
//   - Safe to share – stores and registries guard state with locks
//   - Fails loudly – contradictory declarations return sentinel errors
//   - Declarative – tensor symmetries can be loaded from YAML
//
// Packages:
//
//	index/         — bit-packed Index, IndexType catalogue
//	permutation/   — Permutation, Symmetry (permutation + sign), random draws
//	combinatorics/ — lazy generators over index tuples and arrangements
//	symmetry/      — Structure, Span/Closure, Store, Registry
//	indices/       — Indices container, Upper/Lower/Free views, Match
//	declare/       — YAML declarations → Registry
//	cmd/tensorsym/ — CLI: check, group, diffids
//
// Quick example, the Riemann tensor R_abcd:
//
//	R_abcd = -R_bacd = R_cdab
//
// closes to a group of order 8 acting on four latin_lower slots.
//
//	go get github.com/katalvlaran/tensorsym
package tensorsym
