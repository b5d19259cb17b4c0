// SPDX-License-Identifier: MIT

package hotelling

import (
	"io"
	"log/slog"
)

// Option configures a single test run.
type Option func(*options)

type options struct {
	logger *slog.Logger
	report io.Writer
}

// WithLogger routes debug traces of the computation (shapes, degrees of
// freedom, intermediate T²) to l. A nil logger keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithReport writes the three-line summary to w once the test succeeds.
func WithReport(w io.Writer) Option {
	return func(o *options) { o.report = w }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gatherOptions(user ...Option) options {
	o := options{logger: discardLogger()}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
