// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for contract violations (see panic* constants).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with matrixErrorf(op, ErrX) so
// callers still match with errors.Is.

var (
	// ErrMalformedMatrix is returned by New when the input is empty, has
	// rows of differing length, or lacks a coefficient column.
	ErrMalformedMatrix = errors.New("matrix: malformed matrix")

	// ErrOutOfRange indicates that a row, column or crop size is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry in a scalar type that can hold one.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroPivot is returned by pivot selection when no candidate row has a
	// non-zero entry in the pivot column.
	ErrZeroPivot = errors.New("matrix: no non-zero pivot")

	// ErrUnknownStrategy is returned for a PivotStrategy outside the declared set.
	ErrUnknownStrategy = errors.New("matrix: unknown pivot strategy")
)

// Panic messages for contract violations.
const (
	panicZeroScale = "matrix: ScaleRow: scalar must be non-zero"
)

// Operation name constants for unified error wrapping.
const (
	opNew          = "New"
	opAt           = "At"
	opRow          = "Row"
	opColumn       = "Column"
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
	opCrop         = "Crop"
	opSelectPivot  = "SelectPivot"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
