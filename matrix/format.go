// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Plain decimal notation is used for magnitudes in [fixedMin, fixedMax);
// anything outside switches to exponent form.
const (
	fixedMin = 1e-4
	fixedMax = 1e16
)

// FormatFloat renders v in the shortest form that round-trips at bitSize
// (32 or 64) bits, using the conventional numeric display:
//   - plain decimals for 1e-4 <= |v| < 1e16, e.g. 0.5, 1234567.5;
//   - integral values keep a ".0" suffix, e.g. 3.0, so floats stay
//     distinguishable from integers;
//   - exponent form otherwise, e.g. 1e-07, 1.1259783253999346e-06, 1e+21;
//   - zero is "0.0" (or "-0.0"), NaN is "nan", infinities are "inf"/"-inf".
func FormatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < fixedMin || abs >= fixedMax) {
		return strconv.FormatFloat(v, 'e', -1, bitSize)
	}

	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
