// Package lvstat is a small collection of numeric utilities built on a shared
// dense matrix core.
//
// 🚀 What is inside?
//
//	latex/     — render a rectangular numeric matrix as a LaTeX bmatrix
//	             (or pmatrix, vmatrix, ...) environment
//	hotelling/ — Hotelling's two-sample T² test with an F-distribution p-value
//	matrix/    — Dense matrix, validators, column statistics, pooled
//	             covariance and inversion (gonum-backed)
//	dataset/   — the embedded iris table and a numeric CSV loader
//	cmd/lvstat — command-line front end for both utilities
//
// Quick example:
//
//	s, _ := latex.Format([][]int{{3, 4, 5}, {6, 7, 9}, {4, 5, 122}})
//	// \begin{bmatrix} 3 & 4 & 5 \\ 6 & 7 & 9 \\ 4 & 5 & 122 \end{bmatrix}
//
//	ir, _ := dataset.LoadIris()
//	x, _ := ir.Select(dataset.Versicolor, dataset.SepalLength, dataset.SepalWidth)
//	y, _ := ir.Select(dataset.Virginica, dataset.SepalLength, dataset.SepalWidth)
//	res, _ := hotelling.TwoSample(x, y)
//	// F ≈ 15.83 on (2, 97) df, p ≈ 1.13e-06
//
//	go install github.com/katalvlaran/lvstat/cmd/lvstat@latest
package lvstat
