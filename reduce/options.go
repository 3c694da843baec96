// SPDX-License-Identifier: MIT

package reduce

import "go.uber.org/zap"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*options)

type options struct {
	logger *zap.Logger // never nil after gatherOptions
}

// WithLogger routes step tracing to l: one Debug entry per emitted step and
// one Info entry per completed reduction. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
