// SPDX-License-Identifier: MIT

// Package matrix: domain types.
package matrix

import "github.com/katalvlaran/gaussjordan/scalar"

// Matrix is a rectangular, non-empty grid of scalars. The last column is the
// augmented target vector; the first Cols()-1 columns are coefficients.
//
// Invariants (established by New, preserved by every method):
//   - len(rows) ≥ 1 and every row has exactly cols entries, cols ≥ 2.
//   - Only Crop changes the row count; nothing changes the width.
//
// A Matrix is not safe for concurrent mutation. Pipeline stages take
// ownership of it and never share it.
type Matrix[T scalar.Scalar[T]] struct {
	rows [][]T // row-major, each row an independent slice
	cols int   // column count including the augmented column
}

// PivotStrategy selects how forward elimination chooses its pivot row.
type PivotStrategy uint8

const (
	// PivotNone keeps the diagonal row unless its entry is zero, in which case
	// the first lower row with a non-zero entry is used.
	PivotNone PivotStrategy = iota

	// PivotPartial picks the row with the largest magnitude in the pivot
	// column (partial pivoting). Scalars without a magnitude fall back to
	// PivotNone behavior.
	PivotPartial
)

// String returns the flag spelling of s.
func (s PivotStrategy) String() string {
	switch s {
	case PivotNone:
		return "none"
	case PivotPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a declared strategy.
func (s PivotStrategy) Valid() bool { return s <= PivotPartial }

// ParsePivotStrategy maps "none"/"partial" to a PivotStrategy.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	switch name {
	case "none", "":
		return PivotNone, nil
	case "partial":
		return PivotPartial, nil
	default:
		return PivotNone, matrixErrorf("ParsePivotStrategy("+name+")", ErrUnknownStrategy)
	}
}
