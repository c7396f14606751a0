// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// Solve returns the last column in row order: component k is variable k.
// Complexity: O(n).
func (rr *ReducedRowEchelon[T]) Solve() []T {
	x, _ := rr.m.Column(rr.m.Unknowns()) // safe: Unknowns() is the last column

	return x
}

// TrySolve runs Forward, Square, Backward and Solve on a copy of m; the
// caller's matrix is never modified.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil;
//   - ErrNoUniqueSolution when the system is singular or underdetermined;
//   - ErrNonFinite when a component overflowed to ±Inf or became NaN.
//
// Complexity: O(r·c·min(r,c)).
func TrySolve[T scalar.Scalar[T]](m *matrix.Matrix[T], opts ...Option) ([]T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf(opTrySolve, err)
	}

	re, err := Forward(m.Clone(), opts...)
	if err != nil {
		return nil, echelonErrorf(opTrySolve, err)
	}
	sq, err := Square(re)
	if err != nil {
		return nil, echelonErrorf(opTrySolve, err)
	}
	rr, err := Backward(sq)
	if err != nil {
		return nil, echelonErrorf(opTrySolve, err)
	}

	x := rr.Solve()
	for k, v := range x {
		if !scalar.IsFinite(v) {
			return nil, echelonErrorf(opTrySolve, fmt.Errorf("x[%d] = %v: %w", k, v, ErrNonFinite))
		}
	}

	return x, nil
}

// Residual returns A·x − b for every row of m, in m's own arithmetic.
// For an exact solution over an exact field every component is zero.
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch when len(x) != Unknowns().
// Complexity: O(r·c).
func Residual[T scalar.Scalar[T]](m *matrix.Matrix[T], x []T) ([]T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf(opResidual, err)
	}
	n := m.Unknowns()
	if len(x) != n {
		return nil, echelonErrorf(opResidual, fmt.Errorf("len(x)=%d, unknowns=%d: %w", len(x), n, ErrDimensionMismatch))
	}

	out := make([]T, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		row, _ := m.Row(r) // safe: r < Rows()
		acc := row[n].Neg()
		for k := 0; k < n; k++ {
			acc = acc.Add(row[k].Mul(x[k]))
		}
		out[r] = acc
	}

	return out, nil
}
