// SPDX-License-Identifier: MIT

package echelon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// Forward reduces m to row-echelon form in place and takes ownership of it;
// callers must not use m afterwards (pass m.Clone() to keep the original).
//
// Implementation:
//   - Stage 1: resolve options; the result carries them to later stages.
//   - Stage 2: for column i = 0 .. Unknowns()-1:
//     a) pick a pivot with the configured strategy and swap it into row i;
//     if there is no row i or no non-zero candidate, record i as singular,
//     notify the observer and stop;
//     b) scale row i by the pivot's inverse so (i,i) = 1, within rounding
//     for floats;
//     c) for each lower row r, add -entry(r,i) · row(i) and snap (r,i) to 0;
//     a row left holding NaN or ±Inf by b) or c) fails with ErrNonFinite.
//
// Errors:
//   - ErrNonFinite when a pivot or its inverse is NaN, ±Inf or (for the
//     inverse) underflows to 0, or when scaling or elimination overflows a row.
//   - ErrNilStage when m is nil. A singular system is not an error here; it is
//     reported by RowEchelon.Singular and rejected by Square.
//
// Complexity: O(r·c·min(r,c)) time, O(1) extra space.
func Forward[T scalar.Scalar[T]](m *matrix.Matrix[T], opts ...Option) (*RowEchelon[T], error) {
	if m == nil {
		return nil, echelonErrorf(opForward, ErrNilStage)
	}
	o := gatherOptions(opts...)
	isZero := zeroTest[T](o.tolerance)

	n, rows := m.Unknowns(), m.Rows()
	singular := noSingular

	var (
		i, r       int
		from       int
		err        error
		pivot, inv T
		e          T
	)
	for i = 0; i < n; i++ {
		// a) pivot selection
		if i >= rows {
			singular = i
			o.observer.SingularColumn(i)
			break
		}
		from, err = m.PivotSwap(i, o.pivot, isZero)
		if errors.Is(err, matrix.ErrZeroPivot) {
			singular = i
			o.observer.SingularColumn(i)
			break
		}
		if err != nil {
			return nil, echelonErrorf(opForward, err)
		}
		o.observer.PivotChosen(i, from)

		// b) normalize
		pivot, _ = m.At(i, i) // safe: i < rows, i < n
		if !scalar.IsFinite(pivot) {
			return nil, echelonErrorf(opForward, fmt.Errorf("pivot at column %d is %v: %w", i, pivot, ErrNonFinite))
		}
		inv = pivot.Inv()
		if !scalar.IsFinite(inv) || inv.IsZero() {
			return nil, echelonErrorf(opForward, fmt.Errorf("1/pivot at column %d: %w", i, ErrNonFinite))
		}
		_ = m.ScaleRow(i, inv) // safe: inv ≠ 0, i < rows
		if err = checkFinite(m, i); err != nil {
			return nil, echelonErrorf(opForward, fmt.Errorf("scaling: %w", err))
		}

		// c) eliminate below
		for r = i + 1; r < rows; r++ {
			e, _ = m.At(r, i)
			if e.IsZero() {
				continue
			}
			if !isZero(e) {
				_ = m.AddScaledRow(r, i, e.Neg())
				if err = checkFinite(m, r); err != nil {
					return nil, echelonErrorf(opForward, fmt.Errorf("eliminating column %d: %w", i, err))
				}
			}
			if err = m.Set(r, i, zeroLike(e)); err != nil {
				return nil, echelonErrorf(opForward, err)
			}
		}
	}

	return &RowEchelon[T]{m: m, singular: singular, opts: o}, nil
}

// checkFinite returns ErrNonFinite when row r of m holds NaN or ±Inf.
func checkFinite[T scalar.Scalar[T]](m *matrix.Matrix[T], r int) error {
	ok, err := m.IsFiniteRow(r)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("row %d: %w", r, ErrNonFinite)
	}

	return nil
}
