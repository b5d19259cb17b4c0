// SPDX-License-Identifier: MIT

package latex_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/latex"
	"github.com/katalvlaran/lvstat/matrix"
)

type celsius float64

func TestFormat_Known(t *testing.T) {
	t.Parallel()

	s, err := latex.Format([][]int{{5}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 5 \end{bmatrix}`, s)

	s, err = latex.Format([][]int{{3, 4, 5}, {6, 7, 9}, {4, 5, 122}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 3 & 4 & 5 \\ 6 & 7 & 9 \\ 4 & 5 & 122 \end{bmatrix}`, s)
}

func TestFormat_ElementTypes(t *testing.T) {
	t.Parallel()

	s, err := latex.Format([][]float64{{1, 2.5}, {-0.125, 1e21}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 1.0 & 2.5 \\ -0.125 & 1e+21 \end{bmatrix}`, s)

	s, err = latex.Format([][]float32{{0.1}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 0.1 \end{bmatrix}`, s, "float32 uses its own shortest form")

	s, err = latex.Format([][]uint8{{255, 0}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 255 & 0 \end{bmatrix}`, s)

	s, err = latex.Format([][]celsius{{36.6}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 36.6 \end{bmatrix}`, s)

	s, err = latex.Format([][]float64{{3, 1234567.5}, {0.00001, 0}})
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 3.0 & 1234567.5 \\ 1e-05 & 0.0 \end{bmatrix}`, s)
}

func TestFormat_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := map[string][][]int{
		"nil":       nil,
		"no rows":   {},
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
	}
	for name, rows := range cases {
		_, err := latex.Format(rows)
		require.ErrorIs(t, err, latex.ErrInvalidInput, name)
		require.ErrorIs(t, err, matrix.ErrInvalidInput, name)
	}

	_, err := latex.Format([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// Separator counts mirror the shape for any rectangular input.
func TestFormat_SeparatorsMatchShape(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		r, c := 1+rng.Intn(8), 1+rng.Intn(8)
		rows := make([][]float64, r)
		for i := range rows {
			rows[i] = make([]float64, c)
			for j := range rows[i] {
				rows[i][j] = rng.NormFloat64() * 100
			}
		}

		s, err := latex.Format(rows)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(s, `\begin{bmatrix} `))
		require.True(t, strings.HasSuffix(s, ` \end{bmatrix}`))
		require.Equal(t, r-1, strings.Count(s, `\\`), "row separators for %dx%d", r, c)

		body := strings.TrimSuffix(strings.TrimPrefix(s, `\begin{bmatrix} `), ` \end{bmatrix}`)
		lines := strings.Split(body, latex.RowSep)
		require.Len(t, lines, r)
		for _, line := range lines {
			require.Equal(t, c-1, strings.Count(line, "&"))
		}
	}
}

func TestFormat_Options(t *testing.T) {
	t.Parallel()

	s, err := latex.Format([][]int{{1, 2}}, latex.WithEnvironment(latex.VMatrix), latex.WithPrecision(3))
	require.NoError(t, err)
	assert.Equal(t, `\begin{vmatrix} 1 & 2 \end{vmatrix}`, s, "precision leaves integers alone")

	s, err = latex.Format([][]float64{{1.23456}}, latex.WithPrecision(0), latex.WithEnvironment(latex.Plain))
	require.NoError(t, err)
	assert.Equal(t, `\begin{matrix} 1 \end{matrix}`, s)

	assert.Panics(t, func() { latex.WithPrecision(-2) })
	assert.Panics(t, func() { latex.WithEnvironment("tabular") })
}

func TestParseEnvironment(t *testing.T) {
	t.Parallel()

	env, err := latex.ParseEnvironment("Bmatrix")
	require.NoError(t, err)
	assert.Equal(t, latex.BBMatrix, env)

	_, err = latex.ParseEnvironment("array")
	require.ErrorIs(t, err, latex.ErrUnknownEnvironment)
}

type hidden struct{ matrix.Matrix }

func TestFormatMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{3, 4, 5}, {6, 7, 9}, {4, 5, 122}})
	require.NoError(t, err)

	want := `\begin{bmatrix} 3.0 & 4.0 & 5.0 \\ 6.0 & 7.0 & 9.0 \\ 4.0 & 5.0 & 122.0 \end{bmatrix}`
	s, err := latex.FormatMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, want, s)

	s, err = latex.FormatMatrix(hidden{m})
	require.NoError(t, err)
	assert.Equal(t, want, s)

	_, err = latex.FormatMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
