// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when a gonum argument is nil.
	ErrNilInput = errors.New("converters: nil input")

	// ErrDimensionMismatch is returned when A, b and x do not agree in size.
	ErrDimensionMismatch = errors.New("converters: dimension mismatch")
)

const (
	opFromGonum          = "FromGonum"
	opFromGonumAugmented = "FromGonumAugmented"
	opToGonum            = "ToGonum"
	opResidual           = "Residual"
)

// converterErrorf wraps err with an operation tag.
func converterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
