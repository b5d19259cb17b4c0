// SPDX-License-Identifier: MIT
// Package: hotelling
//
// Purpose:
//   - Hotelling's two-sample T² test for equal mean vectors under a shared
//     covariance, reported as the F-scaled statistic and its upper-tail p-value.
//
// Pipeline:
//   δ = x̄ − ȳ → S_pooled → T² = n1·n2/(n1+n2) · δᵀ S_pooled⁻¹ δ
//     → F = T²·(n1+n2−p−1)/(p·(n1+n2−2)) → p = 1 − CDF_F(F; p, n1+n2−p−1)

package hotelling

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstat/matrix"
)

const (
	opTwoSample     = "hotelling.TwoSample"
	opTwoSampleRows = "hotelling.TwoSampleRows"
)

// TwoSample runs the test on samples x (n1×p) and y (n2×p), rows being observations.
// MAIN DESCRIPTION:
//   - Deterministic, allocation-bounded, no I/O unless WithReport is given.
//
// Implementation:
//   - Stage 1 (Validate): NotNil(x,y) → non-empty → SameCols → n1 > p and n2 > p.
//   - Stage 2 (Moments): column means and pooled covariance.
//   - Stage 3 (Statistic): invert S_pooled, evaluate the quadratic form, rescale to F.
//   - Stage 4 (Tail): p-value from the F(p, n1+n2−p−1) distribution.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidInput (empty sample),
//     ErrDimensionMismatch (column counts differ),
//     ErrSingularMatrix (a sample with n <= p rows, or S_pooled not invertible).
//
// Complexity:
//   - Time O((n1+n2)·p² + p³), Space O(p²).
func TwoSample(x, y matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Validate).
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("%s: x: %w", opTwoSample, err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, fmt.Errorf("%s: y: %w", opTwoSample, err)
	}
	n1, p := x.Rows(), x.Cols()
	n2 := y.Rows()
	if n1 == 0 || n2 == 0 || p == 0 || y.Cols() == 0 {
		return nil, fmt.Errorf("%s: empty sample: %w", opTwoSample, ErrInvalidInput)
	}
	if err := matrix.ValidateSameCols(x, y); err != nil {
		return nil, fmt.Errorf("%s: %w", opTwoSample, err)
	}
	if n1 <= p || n2 <= p {
		return nil, fmt.Errorf("%s: samples of %d and %d rows need more than %d rows each: %w",
			opTwoSample, n1, n2, p, ErrSingularMatrix)
	}
	df2 := n1 + n2 - p - 1

	// Stage 2 (Moments).
	mx, err := matrix.ColumnMeans(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTwoSample, err)
	}
	my, err := matrix.ColumnMeans(y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTwoSample, err)
	}
	delta := make([]float64, p)
	for j := range delta {
		delta[j] = mx[j] - my[j]
	}
	pooled, err := matrix.PooledCovariance(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTwoSample, err)
	}

	// Stage 3 (Statistic).
	inv, err := matrix.Inverse(pooled)
	if err != nil {
		return nil, fmt.Errorf("%s: pooled covariance: %w", opTwoSample, err)
	}
	q, err := matrix.QuadForm(delta, inv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTwoSample, err)
	}
	fn1, fn2, fp := float64(n1), float64(n2), float64(p)
	t2 := fn1 * fn2 / (fn1 + fn2) * q
	statistic := t2 * float64(df2) / (fp * (fn1 + fn2 - 2))

	// Stage 4 (Tail).
	pValue := upperTail(statistic, fp, float64(df2))

	o.logger.Debug("hotelling two-sample test",
		"n1", n1, "n2", n2, "p", p,
		"t_squared", t2, "statistic", statistic,
		"df1", p, "df2", df2, "p_value", pValue)

	res := &Result{
		Statistic: statistic,
		PValue:    pValue,
		TSquared:  t2,
		DF1:       p,
		DF2:       df2,
		N1:        n1,
		N2:        n2,
		MeanDiff:  delta,
	}
	if o.report != nil {
		if err = res.WriteReport(o.report); err != nil {
			return res, fmt.Errorf("%s: report: %w", opTwoSample, err)
		}
	}

	return res, nil
}

// TwoSampleRows is TwoSample over raw rows; empty or ragged rows fail with ErrInvalidInput.
func TwoSampleRows(x, y [][]float64, opts ...Option) (*Result, error) {
	mx, err := matrix.NewFromRows(x)
	if err != nil {
		return nil, fmt.Errorf("%s: x: %w", opTwoSampleRows, err)
	}
	my, err := matrix.NewFromRows(y)
	if err != nil {
		return nil, fmt.Errorf("%s: y: %w", opTwoSampleRows, err)
	}

	return TwoSample(mx, my, opts...)
}

// TwoSampleT2Test computes the test, prints the summary to w (stdout when w
// is nil) and returns the statistic and p-value.
func TwoSampleT2Test(x, y matrix.Matrix, w io.Writer) (statistic, pValue float64, err error) {
	if w == nil {
		w = os.Stdout
	}
	res, err := TwoSample(x, y, WithReport(w))
	if err != nil {
		return 0, 0, err
	}

	return res.Statistic, res.PValue, nil
}

// upperTail returns 1 − CDF_F(f; d1, d2), clamped to [0, 1].
// A non-positive statistic means no evidence at all: p = 1.
func upperTail(f, d1, d2 float64) float64 {
	if f <= 0 {
		return 1
	}
	pv := 1 - distuv.F{D1: d1, D2: d2}.CDF(f)
	switch {
	case pv < 0:
		return 0
	case pv > 1:
		return 1
	default:
		return pv
	}
}
