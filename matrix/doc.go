// Package matrix offers the dense matrix type and numeric kernels shared by the
// lvstat utilities.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors, built
//     from raw rows via NewFromRows (empty and ragged input is rejected).
//   - Validators (ValidateRectangular, ValidateSameCols, ValidateSquare, ...)
//     that every kernel runs before touching data.
//   - Sample statistics: ColumnMeans, Covariance, Scatter, PooledCovariance.
//   - Linear algebra: Inverse and QuadForm, backed by gonum.
//
// All failures surface as the sentinels in errors.go, wrapped with the name of
// the operation that detected them; match them with errors.Is.
package matrix
