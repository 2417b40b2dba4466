package indices

import (
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/permutation"
	"github.com/katalvlaran/tensorsym/symmetry"
)

// Kind tags a container as order-insensitive or order-preserving.
type Kind uint8

const (
	Sorted Kind = iota // order-insensitive, sorted at construction
	Simple             // order-preserving slot list of one tensor
)

// String names the kind.
func (k Kind) String() string {
	if k == Simple {
		return "simple"
	}

	return "sorted"
}

// Indices is an immutable list of encoded indices. Use the constructors;
// the zero value is not usable. Share by pointer.
type Indices struct {
	kind  Kind
	data  []index.Index
	store *symmetry.Store // Simple only; nil ⇒ no symmetries

	once  sync.Once
	upper []index.Index
	lower []index.Index
	free  []index.Index
}

// NewSorted copies idx, sorts it and validates uniqueness.
// Complexity: O(n log n).
func NewSorted(idx ...index.Index) (*Indices, error) {
	data := slices.Clone(idx)
	slices.SortFunc(data, index.Compare)

	return build(Sorted, data, nil, "NewSorted")
}

// NewSimple copies idx keeping its order. No symmetries are attached.
func NewSimple(idx ...index.Index) (*Indices, error) {
	return build(Simple, slices.Clone(idx), nil, "NewSimple")
}

// NewSimpleWithSymmetries attaches store, whose Structure must equal the
// structure of idx (ErrStructureMismatch otherwise). A nil store is allowed.
func NewSimpleWithSymmetries(store *symmetry.Store, idx ...index.Index) (*Indices, error) {
	if store != nil && !store.Structure().Equal(symmetry.StructureOf(idx)) {
		return nil, indicesErrorf("NewSimpleWithSymmetries", ErrStructureMismatch,
			"store %v for indices %v", store.Structure(), symmetry.StructureOf(idx))
	}

	return build(Simple, slices.Clone(idx), store, "NewSimpleWithSymmetries")
}

// NewTensorIndices builds the Simple container of one occurrence of tensor
// name, attaching the store interned in reg for the tensor's structure.
func NewTensorIndices(reg *symmetry.Registry, name string, idx ...index.Index) (*Indices, error) {
	return NewSimpleWithSymmetries(reg.Store(name, symmetry.StructureOf(idx)), idx...)
}

// Concat returns the Sorted container holding every index of parts, as for
// the indices of a product built from its factors.
func Concat(parts ...*Indices) (*Indices, error) {
	var n int
	for _, p := range parts {
		n += len(p.data)
	}
	data := make([]index.Index, 0, n)
	for _, p := range parts {
		data = append(data, p.data...)
	}
	slices.SortFunc(data, index.Compare)

	return build(Sorted, data, nil, "Concat")
}

// Append returns a new container of the same kind holding ix followed by
// idx; Sorted containers are re-sorted. The result carries no symmetries
// since the slot list changed.
func (ix *Indices) Append(idx ...index.Index) (*Indices, error) {
	data := make([]index.Index, 0, len(ix.data)+len(idx))
	data = append(append(data, ix.data...), idx...)
	if ix.kind == Sorted {
		slices.SortFunc(data, index.Compare)
	}

	return build(ix.kind, data, nil, "Append")
}

// Empty returns a fresh empty container of the given kind.
func Empty(k Kind) *Indices { return &Indices{kind: k, data: []index.Index{}} }

// build takes ownership of data and validates it.
func build(k Kind, data []index.Index, store *symmetry.Store, method string) (*Indices, error) {
	ix := &Indices{kind: k, data: data, store: store}
	if err := ix.Validate(); err != nil {
		return nil, indicesErrorf(method, err, "%d indices", len(data))
	}

	return ix, nil
}

// Validate reports ErrDuplicateIndex if two indices are bit-identical.
// Complexity: O(n).
func (ix *Indices) Validate() error {
	seen := set.New[index.Index](len(ix.data))
	for i, x := range ix.data {
		if !seen.Insert(x) {
			return indicesErrorf("Validate", ErrDuplicateIndex, "%v at position %d", x, i)
		}
	}

	return nil
}

// Kind returns the container kind.
func (ix *Indices) Kind() Kind { return ix.kind }

// Size returns the number of indices.
func (ix *Indices) Size() int { return len(ix.data) }

// At returns the i-th index.
func (ix *Indices) At(i int) index.Index { return ix.data[i] }

// Slice returns a copy of the indices.
func (ix *Indices) Slice() []index.Index { return slices.Clone(ix.data) }

// Symmetries returns the attached store, or nil.
func (ix *Indices) Symmetries() *symmetry.Store { return ix.store }

// Structure returns the slot signature of the container.
func (ix *Indices) Structure() symmetry.Structure { return symmetry.StructureOf(ix.data) }

// views computes the memoized upper/lower/free splits.
func (ix *Indices) views() {
	ix.once.Do(func() {
		all := set.From(ix.data)
		ix.upper = make([]index.Index, 0, len(ix.data))
		ix.lower = make([]index.Index, 0, len(ix.data))
		ix.free = make([]index.Index, 0, len(ix.data))
		for _, x := range ix.data {
			if x.IsUpper() {
				ix.upper = append(ix.upper, x)
			} else {
				ix.lower = append(ix.lower, x)
			}
			if !all.Contains(x.Inverse()) {
				ix.free = append(ix.free, x)
			}
		}
	})
}

// derive wraps an already-valid subset in a container of the same kind.
// Symmetries do not survive: they act on the full slot list.
func (ix *Indices) derive(data []index.Index) *Indices {
	return &Indices{kind: ix.kind, data: slices.Clone(data)}
}

// Upper returns the contravariant indices in container order.
func (ix *Indices) Upper() *Indices {
	ix.views()
	return ix.derive(ix.upper)
}

// Lower returns the covariant indices in container order.
func (ix *Indices) Lower() *Indices {
	ix.views()
	return ix.derive(ix.lower)
}

// Free returns the indices without a contracted partner in the container.
func (ix *Indices) Free() *Indices {
	ix.views()
	return ix.derive(ix.free)
}

// OfType returns the indices of type t in container order.
func (ix *Indices) OfType(t index.IndexType) *Indices {
	out := make([]index.Index, 0, len(ix.data))
	for _, x := range ix.data {
		if x.Type() == t {
			out = append(out, x)
		}
	}

	return ix.derive(out)
}

// Contractions returns the position pairs (i<j) of contracted indices, ordered
// by i.
func (ix *Indices) Contractions() [][2]int {
	at := make(map[index.Index]int, len(ix.data))
	for i, x := range ix.data {
		at[x] = i
	}
	var out [][2]int
	for i, x := range ix.data {
		if j, ok := at[x.Inverse()]; ok && i < j {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

// Inverse flips the variance of every index. Sorted containers are re-sorted;
// Simple containers keep their order and keep the store when the flipped
// structure still matches it (always, unless non-metric slots are present).
// Complexity: O(n) (+ sort for Sorted).
func (ix *Indices) Inverse() *Indices {
	data := make([]index.Index, len(ix.data))
	for i, x := range ix.data {
		data[i] = x.Inverse()
	}
	out := &Indices{kind: ix.kind, data: data}
	switch {
	case ix.kind == Sorted:
		slices.SortFunc(out.data, index.Compare)
	case ix.store != nil && ix.store.Structure().Equal(symmetry.StructureOf(data)):
		out.store = ix.store
	}

	return out
}

// ApplyIndexMapping renames indices. Keys and values are compared by name and
// type only; each slot keeps its own variance. Unmapped indices are kept.
// A mapping that changes an index type, or that sends the two variances of
// one symbol to different targets, fails with ErrStructureMismatch; a result
// with duplicates fails with ErrDuplicateIndex.
func (ix *Indices) ApplyIndexMapping(mapping map[index.Index]index.Index) (*Indices, error) {
	raw := make(map[index.Index]index.Index, len(mapping))
	for from, to := range mapping {
		if from.Type() != to.Type() {
			return nil, indicesErrorf("ApplyIndexMapping", ErrStructureMismatch, "%v → %v changes type", from, to)
		}
		if prev, ok := raw[from.Raw()]; ok && prev != to.Raw() {
			return nil, indicesErrorf("ApplyIndexMapping", ErrStructureMismatch, "%v maps to both %v and %v", from.Raw(), prev, to.Raw())
		}
		raw[from.Raw()] = to.Raw()
	}
	data := make([]index.Index, len(ix.data))
	for i, x := range ix.data {
		if to, ok := raw[x.Raw()]; ok {
			data[i] = to.WithVariance(x.IsUpper())
		} else {
			data[i] = x
		}
	}
	if ix.kind == Sorted {
		slices.SortFunc(data, index.Compare)
	}

	return build(ix.kind, data, ix.store, "ApplyIndexMapping")
}

// Permute returns the Simple container with slots reordered by p
// (out[i] = ix[p[i]]). Symmetries are kept only when p preserves the
// structure.
func (ix *Indices) Permute(p permutation.Permutation) (*Indices, error) {
	data, err := permutation.Apply(p, ix.data)
	if err != nil {
		return nil, err
	}
	out := &Indices{kind: Simple, data: data}
	if ix.store != nil && ix.store.Structure().Equal(symmetry.StructureOf(data)) {
		out.store = ix.store
	}

	return out, nil
}

// DiffIDs returns the symmetry-equivalence class of every slot; without a
// store every slot is its own class.
func (ix *Indices) DiffIDs() []int {
	if ix.store != nil {
		return ix.store.DiffIDs()
	}
	ids := make([]int, len(ix.data))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Equal reports exact equality of kind-independent content and order.
func (ix *Indices) Equal(other *Indices) bool { return slices.Equal(ix.data, other.data) }

// EqualsIgnoreOrder reports whether both containers hold the same indices
// in any order.
func (ix *Indices) EqualsIgnoreOrder(other *Indices) bool {
	if len(ix.data) != len(other.data) {
		return false
	}
	a, b := slices.Clone(ix.data), slices.Clone(other.data)
	slices.SortFunc(a, index.Compare)
	slices.SortFunc(b, index.Compare)

	return slices.Equal(a, b)
}

// String renders the indices, e.g. "[_a0 ^a1]".
func (ix *Indices) String() string {
	parts := make([]string, len(ix.data))
	for i, x := range ix.data {
		parts[i] = x.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
