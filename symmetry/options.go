// SPDX-License-Identifier: MIT

package symmetry

import "go.uber.org/zap"

// DefaultMaxOrder disables the group-order cap. Realistic tensors have few
// slots, so their groups stay small.
const DefaultMaxOrder = 0

const (
	panicNilLogger       = "symmetry: WithLogger: logger must not be nil"
	panicMaxOrderInvalid = "symmetry: WithMaxOrder: limit must be >= 1"
)

// Option configures Span, Store and Registry.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	logger   *zap.Logger
	maxOrder int // 0 ⇒ unlimited
}

// WithLogger routes Store/Registry diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMaxOrder caps the number of group elements an enumeration may
// discover; exceeding it fails with ErrGroupTooLarge. Panics on limit < 1.
func WithMaxOrder(limit int) Option {
	if limit < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = limit }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop(), maxOrder: DefaultMaxOrder}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
