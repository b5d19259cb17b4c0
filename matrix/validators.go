// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error value.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRectangular ensures raw rows form a non-empty rectangle:
// at least one row, at least one column, and every row of equal length.
//
// Errors: ErrInvalidInput, with the offending row index in the message.
// Complexity: O(r).
func ValidateRectangular[T any](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRectangular: no rows", ErrInvalidInput)
	}
	width := len(rows[0])
	if width == 0 {
		return validatorErrorf("ValidateRectangular: empty row 0", ErrInvalidInput)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d columns, want %d", i, len(rows[i]), width),
				ErrInvalidInput,
			)
		}
	}

	return nil
}

// ValidateSameCols – Ensures a and b share the feature (column) count.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
func ValidateSameCols(a, b Matrix) error {
	if a.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameCols: %d vs %d", a.Cols(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
