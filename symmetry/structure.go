// SPDX-License-Identifier: MIT

package symmetry

import (
	"slices"
	"strings"

	"github.com/katalvlaran/tensorsym/index"
)

// Structure is the ordered slot signature of a tensor: the type of every slot
// and, for non-metric types only, its variance. Two tensor occurrences with
// equal Structure share symmetry data. Structure is immutable.
type Structure struct {
	types []index.IndexType
	upper []bool // false for metric slots regardless of the index variance
}

// NewStructure builds a Structure from slot types and variances. upper may
// be nil (all lower); otherwise it must match types in length, else
// ErrDimensionMismatch. Types above index.MaxType fail with ErrInvalidType.
// Variance of metric types is ignored.
func NewStructure(types []index.IndexType, upper []bool) (Structure, error) {
	if upper != nil && len(upper) != len(types) {
		return Structure{}, symErrorf("NewStructure", ErrDimensionMismatch, "%d types, %d variances", len(types), len(upper))
	}
	for i, t := range types {
		if t > index.MaxType {
			return Structure{}, symErrorf("NewStructure", ErrInvalidType, "slot %d has type %d > %d", i, t, index.MaxType)
		}
	}
	st := Structure{types: slices.Clone(types), upper: make([]bool, len(types))}
	for i, t := range types {
		if upper != nil && !t.Metric() {
			st.upper[i] = upper[i]
		}
	}

	return st, nil
}

// StructureOf derives the Structure of an ordered index list.
// Complexity: O(n).
func StructureOf(idx []index.Index) Structure {
	st := Structure{types: make([]index.IndexType, len(idx)), upper: make([]bool, len(idx))}
	for i, ix := range idx {
		t := ix.Type()
		st.types[i] = t
		st.upper[i] = !t.Metric() && ix.IsUpper()
	}

	return st
}

// Size returns the number of slots.
func (s Structure) Size() int { return len(s.types) }

// TypeAt returns the type of slot i.
func (s Structure) TypeAt(i int) index.IndexType { return s.types[i] }

// Count returns how many slots have type t.
func (s Structure) Count(t index.IndexType) int {
	n := 0
	for _, x := range s.types {
		if x == t {
			n++
		}
	}

	return n
}

// Positions returns the slot positions of type t in ascending order.
func (s Structure) Positions(t index.IndexType) []int {
	var pos []int
	for i, x := range s.types {
		if x == t {
			pos = append(pos, i)
		}
	}

	return pos
}

// Types returns the distinct slot types in ascending order.
func (s Structure) Types() []index.IndexType {
	out := slices.Clone(s.types)
	slices.Sort(out)

	return slices.Compact(out)
}

// Compatible reports whether slots i and j have identical signature.
func (s Structure) Compatible(i, j int) bool {
	return s.types[i] == s.types[j] && s.upper[i] == s.upper[j]
}

// Key returns a compact string identifying the structure; equal structures
// have equal keys.
func (s Structure) Key() string {
	b := make([]byte, len(s.types))
	for i, t := range s.types {
		b[i] = byte(t) & 0x7F
		if s.upper[i] {
			b[i] |= 0x80
		}
	}

	return string(b)
}

// Equal reports whether s and o describe the same signature.
func (s Structure) Equal(o Structure) bool {
	return slices.Equal(s.types, o.types) && slices.Equal(s.upper, o.upper)
}

// String renders e.g. "(latin_lower,latin_lower,^matrix1)".
func (s Structure) String() string {
	parts := make([]string, len(s.types))
	for i, t := range s.types {
		if s.upper[i] {
			parts[i] = "^" + t.String()
		} else {
			parts[i] = t.String()
		}
	}

	return "(" + strings.Join(parts, ",") + ")"
}
