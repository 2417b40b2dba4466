// SPDX-License-Identifier: MIT

package indices

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIndex indicates two bit-identical encoded indices.
	ErrDuplicateIndex = errors.New("indices: duplicate index")

	// ErrStructureMismatch indicates a symmetry store or index mapping that
	// does not fit the container's slot signature.
	ErrStructureMismatch = errors.New("indices: structure mismatch")
)

func indicesErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
