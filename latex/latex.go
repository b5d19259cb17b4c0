// SPDX-License-Identifier: MIT

// Package latex: matrix → LaTeX source.
//
// Purpose:
//   - Render a rectangular numeric matrix as an amsmath environment body:
//     `\begin{bmatrix} a & b \\ c & d \end{bmatrix}`.
//   - Accept any Go integer or float element type, and matrix.Matrix values.
//
// Determinism:
//   - Output depends only on the input values and options; no locale, no
//     trailing whitespace, single spaces around every separator.

package latex

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstat/matrix"
)

// Separators of the rendered body.
const (
	ColSep = " & "
	RowSep = ` \\ `
)

const (
	opFormat       = "latex.Format"
	opFormatMatrix = "latex.FormatMatrix"
)

// Number is the set of element types Format accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Format renders rows as a LaTeX matrix environment.
// MAIN DESCRIPTION:
//   - Every element becomes its textual form, row elements are joined with
//     " & ", rows with " \\ ", and the whole is wrapped in
//     "\begin{<env>} " … " \end{<env>}" (bmatrix unless WithEnvironment says otherwise).
//
// Implementation:
//   - Stage 1: matrix.ValidateRectangular(rows) → ErrInvalidInput on empty/ragged input.
//   - Stage 2: format each cell (integers base 10; floats via matrix.FormatFloat,
//     so 3.0 keeps its ".0", or fixed WithPrecision decimals).
//   - Stage 3: join and wrap.
//
// Errors:
//   - ErrInvalidInput; matrix.ErrNaNInf for NaN/±Inf floats.
//
// Complexity:
//   - Time O(r*c), Space O(output).
func Format[T Number](rows [][]T, opts ...Option) (string, error) {
	if err := matrix.ValidateRectangular(rows); err != nil {
		return "", fmt.Errorf("%s: %w", opFormat, err)
	}
	o := gatherOptions(opts...)

	lines := make([]string, len(rows))
	cells := make([]string, len(rows[0]))
	var err error
	for i, row := range rows {
		for j, v := range row {
			if cells[j], err = formatCell(v, o.precision); err != nil {
				return "", fmt.Errorf("%s: cell (%d,%d): %w", opFormat, i, j, err)
			}
		}
		lines[i] = strings.Join(cells, ColSep)
	}

	return wrap(o.env, strings.Join(lines, RowSep)), nil
}

// FormatMatrix renders a matrix.Matrix the same way Format renders rows.
func FormatMatrix(m matrix.Matrix, opts ...Option) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("%s: %w", opFormatMatrix, err)
	}

	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
	}

	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			rows[i][j] = v
			return true
		})
	} else {
		var err error
		for i := range rows {
			for j := range rows[i] {
				if rows[i][j], err = m.At(i, j); err != nil {
					return "", fmt.Errorf("%s: %w", opFormatMatrix, err)
				}
			}
		}
	}

	s, err := Format(rows, opts...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opFormatMatrix, err)
	}

	return s, nil
}

// wrap places body inside the begin/end markers of env.
func wrap(env Environment, body string) string {
	var sb strings.Builder
	sb.Grow(len(body) + 2*len(env) + 16)
	sb.WriteString(`\begin{`)
	sb.WriteString(string(env))
	sb.WriteString("} ")
	sb.WriteString(body)
	sb.WriteString(` \end{`)
	sb.WriteString(string(env))
	sb.WriteString("}")

	return sb.String()
}

// formatCell converts one element to text. Reflection on the kind keeps
// named numeric types (type Celsius float64) formatting like their base type.
func formatCell[T Number](v T, precision int) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", matrix.ErrNaNInf
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		if precision >= 0 {
			return strconv.FormatFloat(f, 'f', precision, bits), nil
		}

		return matrix.FormatFloat(f, bits), nil
	default:
		// Unreachable under the Number constraint.
		return fmt.Sprint(v), nil
	}
}
