package combinatorics

import (
	"math"

	"github.com/RoaringBitmap/roaring"
)

// DistinctTupleGenerator enumerates tuples t with t[i] drawn from the i-th
// input set and no value used twice within a tuple. Candidates are scanned in
// ascending order per set, so tuples come out lexicographically.
//
// Sets are held as roaring bitmaps; a shared "used" bitmap records the values
// taken by the current partial assignment.
type DistinctTupleGenerator struct {
	sets  []*roaring.Bitmap
	elems [][]uint32 // ascending members of sets[i]
	pos   []int      // chosen offset into elems[i]; -1 when unassigned
	used  *roaring.Bitmap
	buf   []int

	started bool
	done    bool
}

// DistinctTuples builds the generator. Duplicate members within one set are
// collapsed; members must lie in [0, MaxUint32].
// Complexity: O(Σ|S_i|) setup.
func DistinctTuples(sets ...[]int) (*DistinctTupleGenerator, error) {
	g := &DistinctTupleGenerator{
		sets:  make([]*roaring.Bitmap, len(sets)),
		elems: make([][]uint32, len(sets)),
		pos:   make([]int, len(sets)),
		used:  roaring.New(),
		buf:   make([]int, len(sets)),
	}
	for i, s := range sets {
		bm := roaring.New()
		for _, v := range s {
			if v < 0 || uint64(v) > math.MaxUint32 {
				return nil, argErrorf("DistinctTuples", "sets[%d] member %d outside [0,MaxUint32]", i, v)
			}
			bm.Add(uint32(v))
		}
		g.sets[i] = bm
		g.elems[i] = bm.ToArray()
	}
	g.Reset()

	return g, nil
}

// Reset clears the partial assignment.
func (g *DistinctTupleGenerator) Reset() {
	g.used.Clear()
	for i := range g.pos {
		g.pos[i] = -1
	}
	g.started = false
	g.done = !g.feasible()
}

// feasible is a cheap pre-check: no set may be empty and the union of all
// sets must hold at least one value per slot.
func (g *DistinctTupleGenerator) feasible() bool {
	if len(g.sets) == 0 {
		return true
	}
	for _, s := range g.sets {
		if s.IsEmpty() {
			return false
		}
	}

	return roaring.FastOr(g.sets...).GetCardinality() >= uint64(len(g.sets))
}

// Next returns the next distinct tuple, or nil once no further assignment
// exists.
// Complexity: O(Σ|S_i|) worst case per call.
func (g *DistinctTupleGenerator) Next() []int {
	if g.done {
		return nil
	}
	k := len(g.sets)
	if k == 0 {
		if g.started {
			g.done = true
			return nil
		}
		g.started = true
		return g.buf
	}

	lvl := 0
	if g.started {
		lvl = k - 1 // advance the deepest slot first
	}
	g.started = true

	for lvl >= 0 {
		// Release the current choice at this level.
		if g.pos[lvl] >= 0 {
			g.used.Remove(g.elems[lvl][g.pos[lvl]])
		}
		// Scan for the next value not taken by a shallower slot.
		j := g.pos[lvl] + 1
		for j < len(g.elems[lvl]) && g.used.Contains(g.elems[lvl][j]) {
			j++
		}
		if j == len(g.elems[lvl]) {
			g.pos[lvl] = -1
			lvl--
			continue
		}
		g.pos[lvl] = j
		g.used.Add(g.elems[lvl][j])
		g.buf[lvl] = int(g.elems[lvl][j])
		if lvl == k-1 {
			return g.buf
		}
		lvl++
	}
	g.done = true

	return nil
}
