// Package combinatorics provides restartable enumerators over permutations,
// combinations, k-permutations, bounded Cartesian tuples and distinct tuples
// drawn from several sets.
//
// Every enumerator implements Generator:
//
//	for t := g.Next(); t != nil; t = g.Next() {
//		use(t) // t is the generator's own buffer
//	}
//	g.Reset() // start over
//
// ⚠ Reference semantics: Next returns the same backing slice on every call
// and mutates it in place, so the loop above allocates nothing. Callers that
// keep a result beyond the next call must copy it (or use Collect).
//
// Sequence sizes:
//
//	Permutations(n)      n!
//	Combinations(n,k)    C(n,k)            lexicographic
//	KPermutations(n,k)   n!/(n-k)!         combination-major
//	Tuples(b0..bm)       b0·b1·…·bm        odometer order, last slot fastest
//	DistinctTuples(S…)   backtracking over a shared "used" bitmap
//
// Errors:
//
//	ErrInvalidArgument - n < k, negative sizes/bounds, negative set members,
//	                     or a starting array that is not a permutation.
//
// Generators are not goroutine-safe; they hold cursor state.
package combinatorics
