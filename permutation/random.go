package permutation

import "math/rand"

// defaultSeed is used when callers pass seed==0, keeping the default stream
// reproducible.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. seed==0 selects defaultSeed.
// The result is not goroutine-safe; give each goroutine its own.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns a uniformly random permutation of dimension n drawn from rng
// by a Fisher–Yates shuffle. rng==nil uses the default deterministic stream.
// Complexity: O(n).
func Random(n int, rng *rand.Rand) Permutation {
	if rng == nil {
		rng = NewRand(0)
	}
	p := Identity(n)
	for i := len(p.p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p.p[i], p.p[j] = p.p[j], p.p[i]
	}

	return p
}

// RandomSymmetry draws a random permutation and, when allowSign is set, a
// random sign.
func RandomSymmetry(n int, allowSign bool, rng *rand.Rand) Symmetry {
	if rng == nil {
		rng = NewRand(0)
	}
	p := Random(n, rng)
	sign := allowSign && rng.Intn(2) == 1

	return Symmetry{perm: p, sign: sign}
}
