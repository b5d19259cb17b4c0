// Package hotelling implements Hotelling's two-sample T² test: are the mean
// vectors of two multivariate samples equal, assuming a shared covariance?
//
// TwoSample returns a Result with the F-scaled statistic, its degrees of
// freedom (p, n1+n2-p-1) and the upper-tail p-value. TwoSampleT2Test
// additionally prints the summary
//
//	Test statistic: <v>
//	Degrees of freedom: <p> and <df2>
//	p-value: <pv>
//
// Failures are reported as ErrDimensionMismatch, ErrSingularMatrix or
// ErrInvalidInput, all matchable with errors.Is.
package hotelling
