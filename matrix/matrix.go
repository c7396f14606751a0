// Package matrix defines the augmented Matrix and its constructor.
//
// What & Why:
//
//	New is the single entry point that turns raw row data into a Matrix.
//	It is fallible: empty input, ragged rows and non-finite entries are
//	rejected up front so that elimination code can rely on the rectangular
//	invariant without re-checking it.
//
// Complexity:
//
//	New and Clone run in O(rows*cols) time and memory.
//	Rows, Cols, Unknowns and At run in O(1).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// New builds a Matrix from an ordered collection of ordered rows.
// Stage 1 (Validate): rectangular shape, at least two columns, finite entries.
// Stage 2 (Prepare): deep-copy every row so the caller keeps its slices.
// Stage 3 (Finalize): return the Matrix or a wrapped ErrMalformedMatrix/ErrNaNInf.
// Complexity: O(rows*cols).
func New[T scalar.Scalar[T]](rows [][]T) (*Matrix[T], error) {
	// Validate shape
	cols, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	// Validate numeric policy
	if err = validateFinite(rows); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// Copy rows
	data := make([][]T, len(rows))
	for i := range rows {
		data[i] = append(make([]T, 0, cols), rows[i]...)
	}

	return &Matrix[T]{rows: data, cols: cols}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return len(m.rows) }

// Cols returns the number of columns, including the augmented column.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Unknowns returns the coefficient width, Cols()-1.
// Complexity: O(1).
func (m *Matrix[T]) Unknowns() int { return m.cols - 1 }

// At retrieves the element at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := ValidateRowIndex(m, row); err != nil {
		return zero, matrixErrorf(opAt, err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return zero, matrixErrorf(opAt, err)
	}

	return m.rows[row][col], nil
}

// isExactZero is the default zero predicate.
func isExactZero[T scalar.Scalar[T]](v T) bool { return v.IsZero() }

// at is the unchecked accessor used by row operations after validation.
func (m *Matrix[T]) at(row, col int) T { return m.rows[row][col] }

// Set overwrites the element at (row, col).
// Elimination uses it to snap eliminated entries to an exact zero.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := ValidateRowIndex(m, row); err != nil {
		return matrixErrorf("Set", err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return matrixErrorf("Set", err)
	}
	if !scalar.IsFinite(v) {
		return matrixErrorf("Set", ErrNaNInf)
	}
	m.rows[row][col] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([][]T, len(m.rows))
	for i, row := range m.rows {
		data[i] = append(make([]T, 0, m.cols), row...)
	}

	return &Matrix[T]{rows: data, cols: m.cols}
}

// IsFiniteRow reports whether every entry of row is finite.
// Scalars without a Finiter capability are always finite.
// Complexity: O(Cols()).
func (m *Matrix[T]) IsFiniteRow(row int) (bool, error) {
	if err := ValidateRowIndex(m, row); err != nil {
		return false, matrixErrorf("IsFiniteRow", err)
	}
	for _, v := range m.rows[row] {
		if !scalar.IsFinite(v) {
			return false, nil
		}
	}

	return true, nil
}

// IsZeroRow reports whether the first width entries of row satisfy isZero.
// A nil isZero falls back to T.IsZero. Width is clamped to Cols().
// Complexity: O(width).
func (m *Matrix[T]) IsZeroRow(row, width int, isZero func(T) bool) (bool, error) {
	if err := ValidateRowIndex(m, row); err != nil {
		return false, matrixErrorf("IsZeroRow", err)
	}
	if isZero == nil {
		isZero = isExactZero[T]
	}
	if width > m.cols {
		width = m.cols
	}
	for j := 0; j < width; j++ {
		if !isZero(m.rows[row][j]) {
			return false, nil
		}
	}

	return true, nil
}

// String renders the matrix with right-aligned columns and a "|" before the
// augmented column:
//
//	 2  1 -1 |   8
//	-3 -1  2 | -11
//
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	// Stage 1: format every cell once and measure column widths
	cells := make([][]string, len(m.rows))
	widths := make([]int, m.cols)
	for i, row := range m.rows {
		cells[i] = make([]string, m.cols)
		for j, v := range row {
			s := fmt.Sprint(v)
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	// Stage 2: emit rows
	var b strings.Builder
	last := m.cols - 1
	for _, row := range cells {
		for j, s := range row {
			if j == last {
				b.WriteString("| ")
			}
			b.WriteString(strings.Repeat(" ", widths[j]-len(s)))
			b.WriteString(s)
			if j < last {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
