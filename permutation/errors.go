// SPDX-License-Identifier: MIT

package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPermutation indicates an array that is not a bijection on 0..n-1.
	ErrInvalidPermutation = errors.New("permutation: not a permutation")

	// ErrDimensionMismatch indicates operands of different dimension.
	ErrDimensionMismatch = errors.New("permutation: dimension mismatch")
)

// permErrorf prefixes err with the method name and a formatted detail while
// keeping err matchable via errors.Is.
func permErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
