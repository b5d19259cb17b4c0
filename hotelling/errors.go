// SPDX-License-Identifier: MIT

package hotelling

import "github.com/katalvlaran/lvstat/matrix"

// The test reports the matrix sentinels under names that match its contract;
// errors.Is matches either name.
var (
	// ErrDimensionMismatch: the two samples have different feature counts.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingularMatrix: too few observations for the feature count
	// (n1+n2-p-1 < 1) or a pooled covariance that cannot be inverted.
	ErrSingularMatrix = matrix.ErrSingular

	// ErrInvalidInput: an empty or ragged sample.
	ErrInvalidInput = matrix.ErrInvalidInput
)
