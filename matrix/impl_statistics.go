// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the sample statistics a two-sample multivariate test needs:
//     per-column means, unbiased covariance, scatter and pooled covariance.
//   - Delegate the arithmetic to gonum/stat; this file owns validation and the
//     package's error surface.
//
// Exposed API:
//   - ColumnMeans(X)         -> means                 // per-feature mean, len=c
//   - Covariance(X)          -> (Cov, means)          // (Xcᵀ Xc)/(r-1), r>=2
//   - Scatter(X)             -> Σ (x−x̄)(x−x̄)ᵀ       // (r-1)·Cov; zero for r==1
//   - PooledCovariance(A, B) -> (ScatterA+ScatterB)/(nA+nB-2)
//
// Determinism:
//   - Fixed column order; gonum kernels are deterministic for a given input.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeans = "ColumnMeans"
	opCovariance  = "Covariance"
	opScatter     = "Scatter"
	opPooled      = "PooledCovariance"
)

// ColumnMeans returns the arithmetic mean of every column of X.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty X).
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
func ColumnMeans(X Matrix) ([]float64, error) {
	g, err := ToGonum(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	_, c := g.Dims()
	means := make([]float64, c)
	var col []float64
	for j := 0; j < c; j++ {
		col = mat.Col(col, j, g) // reuse the column buffer
		means[j] = stat.Mean(col, nil)
	}

	return means, nil
}

// Covariance computes the unbiased sample covariance of the columns of X.
// MAIN DESCRIPTION:
//   - Cov[i][j] = Σ_k (X[k,i]-mean_i)(X[k,j]-mean_j) / (r-1).
//
// Implementation:
//   - Stage 1: Validate X (non-nil) and require r>=2.
//   - Stage 2: stat.CovarianceMatrix into a SymDense; copy out to Dense.
//   - Stage 3: ColumnMeans for the caller (reused by centering-aware callers).
//
// Returns:
//   - Matrix: Covariance (c×c), symmetric.
//   - []float64: column means.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, fmt.Errorf("need at least 2 rows, got %d: %w", X.Rows(), ErrDimensionMismatch))
	}

	g, err := ToGonum(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, g, nil)

	out, err := FromGonum(&cov)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return out, means, nil
}

// Scatter returns the scatter matrix Σ (x−x̄)(x−x̄)ᵀ, i.e. (r−1)·Covariance(X).
// A single-row sample has no spread and yields the c×c zero matrix.
func Scatter(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScatter, err)
	}
	r, c := X.Rows(), X.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opScatter, ErrInvalidDimensions)
	}
	if r == 1 {
		z, err := NewDense(c, c)
		if err != nil {
			return nil, matrixErrorf(opScatter, err)
		}

		return z, nil
	}

	cov, _, err := Covariance(X)
	if err != nil {
		return nil, matrixErrorf(opScatter, err)
	}
	d := cov.(*Dense)
	k := float64(r - 1)
	for i := range d.data {
		d.data[i] *= k
	}

	return d, nil
}

// PooledCovariance returns ((nA−1)·Sa + (nB−1)·Sb) / (nA+nB−2).
// MAIN DESCRIPTION:
//   - The equal-covariance estimate shared by two samples with the same features.
//
// Implementation:
//   - Stage 1: NotNil(A,B) → SameCols → nA+nB−2 >= 1.
//   - Stage 2: sum the two scatter matrices and divide by the pooled dof.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column counts differ),
//     ErrSingular (nA+nB−2 < 1: no degrees of freedom left to estimate spread).
//
// Complexity:
//   - Time O((nA+nB)·c^2), Space O(c^2).
func PooledCovariance(A, B Matrix) (*Dense, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, matrixErrorf(opPooled, err)
	}
	if err := ValidateNotNil(B); err != nil {
		return nil, matrixErrorf(opPooled, err)
	}
	if err := ValidateSameCols(A, B); err != nil {
		return nil, matrixErrorf(opPooled, err)
	}
	dof := A.Rows() + B.Rows() - 2
	if dof < 1 {
		return nil, matrixErrorf(opPooled, fmt.Errorf("pooled degrees of freedom %d: %w", dof, ErrSingular))
	}

	sa, err := Scatter(A)
	if err != nil {
		return nil, matrixErrorf(opPooled, err)
	}
	sb, err := Scatter(B)
	if err != nil {
		return nil, matrixErrorf(opPooled, err)
	}

	inv := 1.0 / float64(dof)
	for i := range sa.data {
		sa.data[i] = (sa.data[i] + sb.data[i]) * inv
	}

	return sa, nil
}
