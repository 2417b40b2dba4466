// SPDX-License-Identifier: MIT

package symmetry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tensorsym/permutation"
)

var (
	// ErrInconsistentGenerators indicates that the generating set reaches one
	// permutation with both signs, e.g. a tensor declared symmetric and
	// antisymmetric under the same swap.
	ErrInconsistentGenerators = errors.New("symmetry: inconsistent generators")

	// ErrIncompatibleSlots indicates a generator that maps a slot onto a slot
	// of a different type (or of different variance for non-metric types).
	ErrIncompatibleSlots = errors.New("symmetry: generator mixes incompatible slots")

	// ErrUnknownType indicates a per-type generator for a type the structure
	// does not contain.
	ErrUnknownType = errors.New("symmetry: no slots of requested type")

	// ErrInvalidType indicates a slot type beyond index.MaxType, which no
	// encoded index can carry.
	ErrInvalidType = errors.New("symmetry: index type not encodable")

	// ErrGroupTooLarge indicates that the generated group exceeded the
	// configured maximum order.
	ErrGroupTooLarge = errors.New("symmetry: group order exceeds limit")
)

// ErrDimensionMismatch is the permutation package sentinel, re-exported so
// callers of this package can match it without a second import.
var ErrDimensionMismatch = permutation.ErrDimensionMismatch

// symErrorf wraps err with method context.
func symErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
