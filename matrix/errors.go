// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and re-exported by latex and hotelling. All kernels MUST return these
// sentinels (optionally wrapped with an operation tag) and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf(op, ErrX) at the detection site; callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/NaN -> dimension mismatch -> numerical (singular).

var (
	// ErrInvalidInput is returned when raw row data is empty or ragged
	// (rows of unequal length), so no rectangular matrix can be built from it.
	ErrInvalidInput = errors.New("matrix: invalid input (empty or non-rectangular)")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., two samples with a different number of feature columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a matrix cannot be inverted: exactly singular
	// or too ill-conditioned for a meaningful inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)
