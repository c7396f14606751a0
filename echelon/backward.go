// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// Backward clears every entry above the diagonal of sq, producing an identity
// coefficient block with the solution in the last column. It takes ownership
// of sq's matrix.
//
// Forward already guaranteed a unit diagonal and zeros below it, so only the
// upper triangle is touched: for column c = n-1 .. 1 and each row r < c,
// row(r) += -entry(r,c) · row(c), then (r,c) is snapped to 0.
//
// Errors: ErrNilStage when sq is nil; ErrNonFinite when a row overflows.
// Complexity: O(n³) time, O(1) extra space.
func Backward[T scalar.Scalar[T]](sq *SquareMatrix[T]) (*ReducedRowEchelon[T], error) {
	if sq == nil || sq.m == nil {
		return nil, echelonErrorf(opBackward, ErrNilStage)
	}
	m := sq.m
	n := m.Rows()

	var (
		c, r int
		e    T
		err  error
	)
	for c = n - 1; c > 0; c-- {
		for r = 0; r < c; r++ {
			e, _ = m.At(r, c) // safe: r < c < n
			if e.IsZero() {
				continue
			}
			_ = m.AddScaledRow(r, c, e.Neg())
			if err = checkFinite(m, r); err != nil {
				return nil, echelonErrorf(opBackward, fmt.Errorf("clearing column %d: %w", c, err))
			}
			if err = m.Set(r, c, zeroLike(e)); err != nil {
				return nil, echelonErrorf(opBackward, err)
			}
		}
	}

	return &ReducedRowEchelon[T]{m: m}, nil
}
