// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates nonsensical construction parameters.
var ErrInvalidArgument = errors.New("combinatorics: invalid argument")

// argErrorf wraps ErrInvalidArgument with constructor context.
func argErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
