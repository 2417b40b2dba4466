// Package index encodes a single tensor index into one 32-bit word.
//
// 🚀 What is an encoded Index?
//
//	Every slot of a tensor ("an index") carries three facts: the symbol it is
//	named after, the alphabet/class it belongs to (its type) and whether it is
//	upper (contravariant) or lower (covariant). All three are packed into a
//	single uint32 so that comparison, hashing and contraction checks are plain
//	integer operations:
//
//	  bit 31       30 ........ 24   23 ....................... 0
//	  ┌──────────┬─────────────────┬─────────────────────────────┐
//	  │ variance │   type (7 bit)  │        name (24 bit)        │
//	  └──────────┴─────────────────┴─────────────────────────────┘
//
// ✨ Key properties:
//   - Two indices are the "same index" iff name and type match (Raw equal).
//   - Two indices are contracted iff a^b == UpperMask (only variance differs).
//   - Index is a value type: copy freely, never mutated.
//
// ⚙️ Usage:
//
//	a := index.Encode(0, index.LatinLower, false) // _a
//	b := index.Encode(0, index.LatinLower, true)  // ^a
//	index.AreContracted(a, b)                     // true
//
// All functions are total, O(1), allocation-free and side-effect free.
package index
