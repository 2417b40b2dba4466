package combinatorics

import "slices"

// TupleGenerator enumerates tuples t with 0 ≤ t[i] < bounds[i] in odometer
// order (last slot varies fastest).
type TupleGenerator struct {
	bounds []int
	buf    []int
	fresh  bool
	done   bool
}

// Tuples enumerates the Cartesian product of [0,b) ranges. Any zero bound
// makes the sequence empty; no bounds yields one empty tuple.
func Tuples(bounds ...int) (*TupleGenerator, error) {
	for i, b := range bounds {
		if b < 0 {
			return nil, argErrorf("Tuples", "bounds[%d]=%d < 0", i, b)
		}
	}
	g := &TupleGenerator{bounds: slices.Clone(bounds), buf: make([]int, len(bounds))}
	g.Reset()

	return g, nil
}

// Reset rewinds to the all-zero tuple.
func (g *TupleGenerator) Reset() {
	clear(g.buf)
	g.fresh, g.done = true, slices.Contains(g.bounds, 0)
}

// Next returns the next tuple or nil.
func (g *TupleGenerator) Next() []int {
	if g.done {
		return nil
	}
	if g.fresh {
		g.fresh = false
		return g.buf
	}
	for i := len(g.buf) - 1; i >= 0; i-- {
		g.buf[i]++
		if g.buf[i] < g.bounds[i] {
			return g.buf
		}
		g.buf[i] = 0
	}
	g.done = true

	return nil
}
