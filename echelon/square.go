// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// Square validates that the first n = Unknowns() rows of re form a full-rank
// coefficient block and crops re to exactly those rows. It takes ownership of
// re's matrix.
//
// Rejection (ErrNoUniqueSolution, never a panic):
//   - Forward recorded a singular column;
//   - fewer than n rows (underdetermined);
//   - any of the first n rows is zero in its coefficient entries;
//   - with WithConsistencyCheck, any discarded row is not entirely zero
//     (additionally matches ErrInconsistent).
//
// Only the first n rows are inspected; see the package documentation for the
// row-order constraint this relies on.
//
// Complexity: O(r·c).
func Square[T scalar.Scalar[T]](re *RowEchelon[T]) (*SquareMatrix[T], error) {
	if re == nil || re.m == nil {
		return nil, echelonErrorf(opSquare, ErrNilStage)
	}
	m, o := re.m, re.opts
	n := m.Unknowns()
	isZero := zeroTest[T](o.tolerance)

	// Stage 1: structural rejections
	if col, ok := re.Singular(); ok {
		return nil, echelonErrorf(opSquare, fmt.Errorf("singular at column %d: %w", col, ErrNoUniqueSolution))
	}
	if m.Rows() < n {
		o.observer.SingularColumn(m.Rows())
		return nil, echelonErrorf(opSquare, fmt.Errorf("%d equation(s) for %d unknown(s): %w", m.Rows(), n, ErrNoUniqueSolution))
	}

	// Stage 2: the first n rows must each carry a non-zero coefficient
	for r := 0; r < n; r++ {
		if zero, _ := m.IsZeroRow(r, n, isZero); zero {
			o.observer.SingularColumn(r)
			return nil, echelonErrorf(opSquare, fmt.Errorf("row %d has no non-zero coefficient: %w", r, ErrNoUniqueSolution))
		}
	}

	// Stage 3: optional consistency check on the rows about to be dropped
	if o.consistency {
		for r := n; r < m.Rows(); r++ {
			if zero, _ := m.IsZeroRow(r, m.Cols(), isZero); !zero {
				return nil, echelonErrorf(opSquare, fmt.Errorf("row %d: %w: %w", r, ErrNoUniqueSolution, ErrInconsistent))
			}
		}
	}

	// Stage 4: crop
	if err := m.Crop(n); err != nil {
		return nil, echelonErrorf(opSquare, err)
	}

	return &SquareMatrix[T]{m: m, opts: o}, nil
}
