// SPDX-License-Identifier: MIT

package latex

import (
	"errors"

	"github.com/katalvlaran/lvstat/matrix"
)

var (
	// ErrInvalidInput is returned for an empty or non-rectangular matrix.
	// It is the matrix sentinel itself, so errors.Is matches either name.
	ErrInvalidInput = matrix.ErrInvalidInput

	// ErrUnknownEnvironment is returned by ParseEnvironment for unsupported names.
	ErrUnknownEnvironment = errors.New("latex: unknown matrix environment")
)
