// SPDX-License-Identifier: MIT

// Package latex: functional configuration for the matrix formatter.
// This file defines:
//   - Environment (the LaTeX matrix environments we can emit),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package latex

import "fmt"

// Environment names a LaTeX (amsmath) matrix environment.
type Environment string

// Supported environments. BMatrix is the square-bracket form.
const (
	BMatrix  Environment = "bmatrix" // [ ]
	PMatrix  Environment = "pmatrix" // ( )
	VMatrix  Environment = "vmatrix" // | |
	VVMatrix Environment = "Vmatrix" // ‖ ‖
	BBMatrix Environment = "Bmatrix" // { }
	Plain    Environment = "matrix"  // no delimiters
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEnvironment is the environment emitted when none is requested.
	DefaultEnvironment = BMatrix

	// DefaultPrecision selects the shortest round-trip representation of floats.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEnvironmentInvalid = "latex: WithEnvironment: unknown environment %q"
	panicPrecisionInvalid   = "latex: WithPrecision: precision must be >= -1, got %d"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	env       Environment
	precision int
}

// ParseEnvironment maps a user-supplied name onto a known Environment.
// Returns an error wrapping ErrUnknownEnvironment for anything else.
func ParseEnvironment(name string) (Environment, error) {
	switch env := Environment(name); env {
	case BMatrix, PMatrix, VMatrix, VVMatrix, BBMatrix, Plain:
		return env, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownEnvironment)
	}
}

// WithEnvironment selects the LaTeX environment that wraps the rows.
// Panics on an environment outside the supported set.
func WithEnvironment(env Environment) Option {
	if _, err := ParseEnvironment(string(env)); err != nil {
		panic(fmt.Sprintf(panicEnvironmentInvalid, env))
	}

	return func(o *options) { o.env = env }
}

// WithPrecision fixes the number of decimals printed for float elements.
// -1 restores the shortest representation; integers are never affected.
func WithPrecision(n int) Option {
	if n < -1 {
		panic(fmt.Sprintf(panicPrecisionInvalid, n))
	}

	return func(o *options) { o.precision = n }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) options {
	o := options{env: DefaultEnvironment, precision: DefaultPrecision}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
