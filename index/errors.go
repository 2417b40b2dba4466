// SPDX-License-Identifier: MIT

package index

import "errors"

// ErrUnknownType is returned by ParseType when the name does not denote a
// catalogued IndexType.
var ErrUnknownType = errors.New("index: unknown index type")
