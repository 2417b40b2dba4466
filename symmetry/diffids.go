// SPDX-License-Identifier: MIT

package symmetry

import "github.com/katalvlaran/tensorsym/permutation"

// diffIDs partitions positions 0..n-1 into orbits of the generators and
// labels each class by order of first appearance, so the result is
// canonical: position 0 always has id 0, and ids grow left to right.
//
// Steps:
//  1. Disjoint-set over positions, parent[i] = i.
//  2. For every generator g and position i, union(i, g[i]).
//  3. Relabel roots in scan order.
//
// Complexity: O(|gens|·n·α(n)) time, O(n) memory.
func diffIDs(n int, gens []permutation.Symmetry) []int {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	for _, g := range gens {
		p := g.Permutation()
		for i := 0; i < n; i++ {
			union(i, p.At(i))
		}
	}

	ids := make([]int, n)
	label := make(map[int]int, n)
	for i := range ids {
		r := find(i)
		id, ok := label[r]
		if !ok {
			id = len(label)
			label[r] = id
		}
		ids[i] = id
	}

	return ids
}
