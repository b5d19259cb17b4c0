// SPDX-License-Identifier: MIT

package hotelling

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvstat/matrix"
)

// Result is the outcome of one two-sample test.
type Result struct {
	// Statistic is T² rescaled to follow F(DF1, DF2) under the null.
	Statistic float64 `yaml:"statistic" json:"statistic"`
	// PValue is the upper-tail probability of Statistic, in [0, 1].
	PValue float64 `yaml:"p_value" json:"p_value"`
	// TSquared is Hotelling's T² before the F rescaling.
	TSquared float64 `yaml:"t_squared" json:"t_squared"`

	DF1 int `yaml:"df1" json:"df1"` // p, the number of features
	DF2 int `yaml:"df2" json:"df2"` // n1+n2-p-1
	N1  int `yaml:"n1" json:"n1"`
	N2  int `yaml:"n2" json:"n2"`

	// MeanDiff is x̄ − ȳ, one entry per feature.
	MeanDiff []float64 `yaml:"mean_diff" json:"mean_diff"`
}

// Reject reports whether the null hypothesis of equal means is rejected at level alpha.
func (r *Result) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// String is the three-line summary without a trailing newline:
//
//	Test statistic: <v>
//	Degrees of freedom: <p> and <df2>
//	p-value: <pv>
func (r *Result) String() string {
	return fmt.Sprintf("Test statistic: %s\nDegrees of freedom: %d and %d\np-value: %s",
		FormatFloat(r.Statistic), r.DF1, r.DF2, FormatFloat(r.PValue))
}

// WriteReport writes String() followed by a newline to w.
func (r *Result) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, r.String()+"\n")

	return err
}

// FormatFloat prints v in its shortest round-trip form (e.g. 0.5, 1.0,
// 1234567.5, 1e-07); see matrix.FormatFloat.
func FormatFloat(v float64) string {
	return matrix.FormatFloat(v, 64)
}
