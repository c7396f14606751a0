// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep row operations minimal by delegating bounds checks here.
//  - Return plain sentinel errors wrapped with a validator tag so call sites
//    can add their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// minCols is one coefficient column plus the augmented column.
const minCols = 2

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T scalar.Scalar[T]](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ row < m.Rows(). Assumes m is non-nil.
// Complexity: O(1).
func ValidateRowIndex[T scalar.Scalar[T]](m *Matrix[T], row int) error {
	if row < 0 || row >= len(m.rows) {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d of %d)", row, len(m.rows)), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ col < m.Cols(). Assumes m is non-nil.
// Complexity: O(1).
func ValidateColIndex[T scalar.Scalar[T]](m *Matrix[T], col int) error {
	if col < 0 || col >= m.cols {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d of %d)", col, m.cols), ErrOutOfRange)
	}

	return nil
}

// ValidateRectangular checks raw row data and returns its width.
// Errors: ErrMalformedMatrix when rows is empty, the first row has fewer than
// two entries, or any row length differs from the first.
// Complexity: O(rows).
func ValidateRectangular[T any](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, validatorErrorf("ValidateRectangular: no rows", ErrMalformedMatrix)
	}
	cols := len(rows[0])
	if cols < minCols {
		return 0, validatorErrorf(fmt.Sprintf("ValidateRectangular: %d column(s), need ≥ %d", cols, minCols), ErrMalformedMatrix)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d has %d entries, want %d", i, len(rows[i]), cols), ErrMalformedMatrix)
		}
	}

	return cols, nil
}

// validateFinite rejects NaN/±Inf entries for scalars implementing Finiter.
// Complexity: O(rows*cols).
func validateFinite[T any](rows [][]T) error {
	for i, row := range rows {
		for j, v := range row {
			if !scalar.IsFinite(v) {
				return validatorErrorf(fmt.Sprintf("validateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
