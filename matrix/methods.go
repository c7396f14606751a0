// Package matrix provides the row-level mutation primitives elimination is
// built from. Every method validates its indices first and returns a wrapped
// ErrOutOfRange instead of panicking; the one deliberate panic is ScaleRow
// with a zero scalar, which no correct caller can produce.
package matrix

import "github.com/katalvlaran/gaussjordan/scalar"

// SwapRows exchanges rows i and j. Self-inverse; i == j is a no-op.
// Complexity: O(1).
func (m *Matrix[T]) SwapRows(i, j int) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// ScaleRow sets M(row) = M(row) · s.
// Panics when s is zero: scaling by zero destroys an equation and is always a
// caller bug, never an input condition.
// Complexity: O(cols).
func (m *Matrix[T]) ScaleRow(row int, s T) error {
	if s.IsZero() {
		panic(panicZeroScale)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	r := m.rows[row]
	for k := range r {
		r[k] = r[k].Mul(s)
	}

	return nil
}

// AddScaledRow sets M(dst) = M(dst) + s · M(src).
// dst == src is allowed and yields (1+s) · M(dst).
// Complexity: O(cols).
func (m *Matrix[T]) AddScaledRow(dst, src int, s T) error {
	if err := ValidateRowIndex(m, dst); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if err := ValidateRowIndex(m, src); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if s.IsZero() {
		return nil
	}
	d, r := m.rows[dst], m.rows[src]
	if dst == src {
		r = append([]T(nil), r...) // read a snapshot, d is overwritten in place
	}
	for k := range d {
		d[k] = d[k].Add(s.Mul(r[k]))
	}

	return nil
}

// Crop truncates the matrix to its first n rows, discarding the rest.
// Errors: ErrOutOfRange when n < 1 or n > Rows().
// The caller is responsible for having verified that the kept prefix is the
// set it wants; Crop performs no rank check.
// Complexity: O(Rows()-n) to release the dropped rows.
func (m *Matrix[T]) Crop(n int) error {
	if n < 1 || n > len(m.rows) {
		return matrixErrorf(opCrop, validatorErrorf("Crop", ErrOutOfRange))
	}
	for i := n; i < len(m.rows); i++ {
		m.rows[i] = nil
	}
	m.rows = m.rows[:n]

	return nil
}

// SelectPivot returns the row to use as pivot for elimination step `step`
// (column `step`), scanning rows step..Rows()-1. It does not mutate m.
//
// Strategy:
//   - PivotNone: step itself when its entry is non-zero, else the first lower
//     row with a non-zero entry.
//   - PivotPartial: the row with the largest Magnitude(); ties keep the upper
//     row. Scalars without a magnitude behave as PivotNone.
//
// isZero decides what counts as zero (nil means T.IsZero).
// Errors: ErrOutOfRange for a step outside the coefficient block or past the
// last row, ErrUnknownStrategy, ErrZeroPivot when every candidate is zero.
// Complexity: O(Rows()-step).
func (m *Matrix[T]) SelectPivot(step int, strategy PivotStrategy, isZero func(T) bool) (int, error) {
	// Stage 1: Validate
	if !strategy.Valid() {
		return 0, matrixErrorf(opSelectPivot, ErrUnknownStrategy)
	}
	if err := ValidateRowIndex(m, step); err != nil {
		return 0, matrixErrorf(opSelectPivot, err)
	}
	if step >= m.Unknowns() {
		return 0, matrixErrorf(opSelectPivot, validatorErrorf("SelectPivot: augmented column", ErrOutOfRange))
	}
	if isZero == nil {
		isZero = isExactZero[T]
	}

	// Stage 2: Partial pivoting when the scalar exposes a magnitude
	if strategy == PivotPartial {
		if _, ok := scalar.Magnitude(m.at(step, step)); ok {
			best, bestMag := -1, -1.0
			for r := step; r < len(m.rows); r++ {
				v := m.at(r, step)
				if isZero(v) {
					continue
				}
				mag, _ := scalar.Magnitude(v)
				if mag > bestMag {
					best, bestMag = r, mag
				}
			}
			if best < 0 {
				return 0, matrixErrorf(opSelectPivot, ErrZeroPivot)
			}

			return best, nil
		}
	}

	// Stage 3: First non-zero at or below the diagonal
	for r := step; r < len(m.rows); r++ {
		if !isZero(m.at(r, step)) {
			return r, nil
		}
	}

	return 0, matrixErrorf(opSelectPivot, ErrZeroPivot)
}

// PivotSwap selects a pivot for step and swaps it into row step.
// It returns the original index of the chosen row (== step when no swap).
// Complexity: O(Rows()-step).
func (m *Matrix[T]) PivotSwap(step int, strategy PivotStrategy, isZero func(T) bool) (int, error) {
	row, err := m.SelectPivot(step, strategy, isZero)
	if err != nil {
		return 0, err
	}
	if row != step {
		m.rows[step], m.rows[row] = m.rows[row], m.rows[step]
	}

	return row, nil
}
