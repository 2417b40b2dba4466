// Package indices provides immutable containers of encoded indices.
//
// One struct, two kinds:
//
//   - Sorted — order-insensitive. Construction sorts by (type, name,
//     variance); used for the indices of products and sums where slot order
//     carries no meaning.
//   - Simple — order-preserving. The order is a tensor's declared slot order
//     and is never re-sorted. A Simple container may reference a
//     *symmetry.Store shared by every occurrence of the same tensor.
//
// Derived views (Upper, Lower, Free, OfType, Inverse, ApplyIndexMapping)
// return new containers; the receiver is never mutated. Upper/Lower/Free
// slices are computed once on first use and memoized.
//
// EqualsWithSymmetries walks the store's group and reports whether some
// element s maps other onto the receiver (this[i] == other[s[i]]), and with
// which sign. It is a pure query.
//
// Errors:
//
//	ErrDuplicateIndex    - two bit-identical indices in one container.
//	ErrStructureMismatch - a store or mapping incompatible with the slot signature.
package indices
