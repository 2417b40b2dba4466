// SPDX-License-Identifier: MIT

package declare

import (
	"errors"

	"github.com/katalvlaran/tensorsym/index"
)

var (
	// ErrInvalidDeclaration indicates a malformed document or tensor entry.
	ErrInvalidDeclaration = errors.New("declare: invalid declaration")

	// ErrUnknownIndexType aliases the index catalogue sentinel.
	ErrUnknownIndexType = index.ErrUnknownType
)
