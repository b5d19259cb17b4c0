// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the statistical tests.
//
// Purpose:
//   - Inverse(m)      -> m⁻¹ via gonum's LU-based Dense.Inverse, ErrSingular on failure.
//   - QuadForm(v, m)  -> vᵀ m v via gonum's mat.Inner.
//
// Notes:
//   - All kernels use the central validators and wrap with matrixErrorf(op, err).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opInverse  = "Inverse"
	opQuadForm = "QuadForm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Inverse returns A⁻¹ for a square, non-singular A.
// MAIN DESCRIPTION:
//   - Explicit inverse; the caller owns the result.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: copy into gonum and run Dense.Inverse (partial-pivot LU).
//   - Stage 3: any gonum error (exact singularity or a Condition error past
//     mat.ConditionTolerance) and any non-finite cell map to ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	out, err := FromGonum(&inv)
	if err != nil {
		// Non-finite cells mean the factorization blew up.
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return out, nil
}

// QuadForm returns vᵀ m v for a square m with len(v) == m.Rows().
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf.
func QuadForm(v []float64, m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	g, err := ToGonum(m)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	x := mat.NewVecDense(len(v), append([]float64(nil), v...))
	q := mat.Inner(x, g, x)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, matrixErrorf(opQuadForm, ErrNaNInf)
	}

	return q, nil
}
