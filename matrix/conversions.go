// SPDX-License-Identifier: MIT

// Package matrix: copy-out conversions. Every function here returns freshly
// allocated slices; callers can never reach the matrix storage through them.
package matrix

// Raw returns a deep copy of all rows.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Raw() [][]T {
	out := make([][]T, len(m.rows))
	for i, row := range m.rows {
		out[i] = append(make([]T, 0, m.cols), row...)
	}

	return out
}

// Row returns a copy of row i.
// Complexity: O(cols).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	return append(make([]T, 0, m.cols), m.rows[i]...), nil
}

// Column returns a copy of column j in row order. Column(Unknowns()) is the
// augmented target vector.
// Complexity: O(rows).
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	out := make([]T, len(m.rows))
	for i, row := range m.rows {
		out[i] = row[j]
	}

	return out, nil
}

// Coefficients returns a copy of the coefficient block (all columns but the last).
// Complexity: O(rows*cols).
func (m *Matrix[T]) Coefficients() [][]T {
	out := make([][]T, len(m.rows))
	for i, row := range m.rows {
		out[i] = append(make([]T, 0, m.cols-1), row[:m.cols-1]...)
	}

	return out
}
