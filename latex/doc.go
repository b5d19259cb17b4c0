// Package latex renders numeric matrices as LaTeX matrix environments.
//
//	s, _ := latex.Format([][]int{{3, 4, 5}, {6, 7, 9}, {4, 5, 122}})
//	// \begin{bmatrix} 3 & 4 & 5 \\ 6 & 7 & 9 \\ 4 & 5 & 122 \end{bmatrix}
//
// The output is meant to be pasted verbatim inside a math block of a document
// that loads amsmath. Empty or ragged input fails with ErrInvalidInput.
package latex
