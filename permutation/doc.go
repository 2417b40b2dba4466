// Package permutation provides immutable permutations in one-line notation
// and signed permutations (symmetries).
//
// A Permutation p of dimension n is a bijection on {0..n-1}; p.At(i) is the
// image of i. Composition follows the "apply self first" convention:
//
//	a.Compose(b).At(i) == b.At(a.At(i))
//
// and Apply permutes arbitrary slices consistently with it:
//
//	Apply(a.Compose(b), x) == Apply(a, Apply(b, x))
//
// A Symmetry is a Permutation with a sign: false for an ordinary symmetry of a
// tensor, true for an antisymmetry (the tensor changes sign). Composition
// xors signs; inversion keeps the sign. The identity symmetry (identity
// permutation, sign=false) is the group unit.
//
// Values are immutable: every operation returns a fresh value and never
// mutates its receiver or arguments, so permutations can be shared across
// goroutines without locking.
//
// Errors:
//
//	ErrInvalidPermutation - input array is not a bijection on 0..n-1.
//	ErrDimensionMismatch  - operands (or an operand and a slice) differ in length.
package permutation
