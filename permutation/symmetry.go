package permutation

import "fmt"

// Symmetry is a Permutation with a sign. Sign false marks an ordinary
// symmetry, true an antisymmetry.
type Symmetry struct {
	perm Permutation
	sign bool
}

// NewSymmetry pairs p with sign.
func NewSymmetry(p Permutation, sign bool) Symmetry {
	return Symmetry{perm: p, sign: sign}
}

// SymmetryOf validates p and returns the signed symmetry.
func SymmetryOf(p []int, sign bool) (Symmetry, error) {
	perm, err := New(p)
	if err != nil {
		return Symmetry{}, err
	}

	return Symmetry{perm: perm, sign: sign}, nil
}

// IdentitySymmetry returns the group unit of dimension n.
func IdentitySymmetry(n int) Symmetry { return Symmetry{perm: Identity(n)} }

// Permutation returns the underlying permutation.
func (s Symmetry) Permutation() Permutation { return s.perm }

// Sign reports whether s is an antisymmetry.
func (s Symmetry) Sign() bool { return s.sign }

// Len returns the dimension.
func (s Symmetry) Len() int { return s.perm.Len() }

// Compose composes the permutations (s first) and xors the signs.
func (s Symmetry) Compose(other Symmetry) (Symmetry, error) {
	p, err := s.perm.Compose(other.perm)
	if err != nil {
		return Symmetry{}, err
	}

	return Symmetry{perm: p, sign: s.sign != other.sign}, nil
}

// Inverse inverts the permutation and keeps the sign.
func (s Symmetry) Inverse() Symmetry {
	return Symmetry{perm: s.perm.Inverse(), sign: s.sign}
}

// Pow returns s composed with itself k times; the sign is s.sign when k is odd.
func (s Symmetry) Pow(k int) Symmetry {
	odd := k%2 != 0

	return Symmetry{perm: s.perm.Pow(k), sign: s.sign && odd}
}

// IsIdentity reports whether s is the group unit: identity permutation, sign false.
func (s Symmetry) IsIdentity() bool { return !s.sign && s.perm.IsIdentity() }

// Equal reports whether permutation and sign both match.
func (s Symmetry) Equal(o Symmetry) bool { return s.sign == o.sign && s.perm.Equal(o.perm) }

// String renders e.g. "+[1 0]" or "-[1 0]".
func (s Symmetry) String() string {
	if s.sign {
		return fmt.Sprintf("-%v", s.perm)
	}

	return fmt.Sprintf("+%v", s.perm)
}
