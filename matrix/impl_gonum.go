// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge between the package's Matrix surface and gonum's mat.Dense, so the
//     numerically sensitive kernels (covariance, inversion) reuse gonum's
//     LAPACK-backed implementations instead of hand-rolled loops.
//
// Determinism:
//   - Conversions always copy; neither side aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
// Dense inputs take a single flat copy; other implementations go through At.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero-sized input), wrapped At errors.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a *Dense, enforcing the finite-only policy.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("cell (%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}
