// SPDX-License-Identifier: MIT

// Package echelon: stage types. Each wraps the matrix owned by that stage and
// exposes read accessors only; the next stage is the only code that mutates it.
package echelon

import (
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// noSingular marks a RowEchelon whose every coefficient column found a pivot.
const noSingular = -1

// RowEchelon is a matrix after forward elimination: for every processed
// column i, every entry below (i,i) is exactly 0 and (i,i) is pivot·(1/pivot).
// That product is exactly 1 for Rational and Mod; for Float64 and Complex128
// it is 1 within rounding (49·(1/49) is 0.9999999999999999).
type RowEchelon[T scalar.Scalar[T]] struct {
	m        *matrix.Matrix[T]
	singular int // first column without a pivot, or noSingular
	opts     Options
}

// SquareMatrix is a RowEchelon cropped to exactly Unknowns() rows, none of
// which is zero in its coefficient block.
type SquareMatrix[T scalar.Scalar[T]] struct {
	m    *matrix.Matrix[T]
	opts Options
}

// ReducedRowEchelon is a SquareMatrix with an identity coefficient block
// (exact for exact fields, within rounding for floats); the last column holds
// the solution.
type ReducedRowEchelon[T scalar.Scalar[T]] struct {
	m *matrix.Matrix[T]
}

// ---------- RowEchelon accessors ----------

// Rows returns the row count.
func (re *RowEchelon[T]) Rows() int { return re.m.Rows() }

// Cols returns the column count including the augmented column.
func (re *RowEchelon[T]) Cols() int { return re.m.Cols() }

// At returns entry (i, j).
func (re *RowEchelon[T]) At(i, j int) (T, error) { return re.m.At(i, j) }

// Matrix returns a deep copy of the underlying matrix.
func (re *RowEchelon[T]) Matrix() *matrix.Matrix[T] { return re.m.Clone() }

// Singular reports the first coefficient column for which forward
// elimination found no non-zero pivot.
func (re *RowEchelon[T]) Singular() (col int, ok bool) {
	return re.singular, re.singular != noSingular
}

// IsSolvable counts rows that are not entirely zero (target column included)
// and reports whether that count equals the coefficient width. A recorded
// singular column always makes the system unsolvable.
// Complexity: O(rows*cols).
func (re *RowEchelon[T]) IsSolvable() bool {
	if re.singular != noSingular {
		return false
	}
	isZero := zeroTest[T](re.opts.tolerance)
	nonZero := 0
	for r := 0; r < re.m.Rows(); r++ {
		if zero, _ := re.m.IsZeroRow(r, re.m.Cols(), isZero); !zero {
			nonZero++
		}
	}

	return nonZero == re.m.Unknowns()
}

// String renders the underlying matrix.
func (re *RowEchelon[T]) String() string { return re.m.String() }

// ---------- SquareMatrix accessors ----------

// Size returns n, the number of unknowns (== rows).
func (sq *SquareMatrix[T]) Size() int { return sq.m.Rows() }

// At returns entry (i, j).
func (sq *SquareMatrix[T]) At(i, j int) (T, error) { return sq.m.At(i, j) }

// Matrix returns a deep copy of the underlying matrix.
func (sq *SquareMatrix[T]) Matrix() *matrix.Matrix[T] { return sq.m.Clone() }

// String renders the underlying matrix.
func (sq *SquareMatrix[T]) String() string { return sq.m.String() }

// ---------- ReducedRowEchelon accessors ----------

// Size returns n, the number of unknowns.
func (rr *ReducedRowEchelon[T]) Size() int { return rr.m.Rows() }

// At returns entry (i, j).
func (rr *ReducedRowEchelon[T]) At(i, j int) (T, error) { return rr.m.At(i, j) }

// Matrix returns a deep copy of the underlying matrix.
func (rr *ReducedRowEchelon[T]) Matrix() *matrix.Matrix[T] { return rr.m.Clone() }

// String renders the underlying matrix.
func (rr *ReducedRowEchelon[T]) String() string { return rr.m.String() }
