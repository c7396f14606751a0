// Package echelon implements Gauss–Jordan elimination on an augmented
// *matrix.Matrix as a strictly linear pipeline of typed stages:
//
//	Matrix ──Forward──▶ RowEchelon ──Square──▶ SquareMatrix ──Backward──▶ ReducedRowEchelon ──Solve──▶ []T
//
// Each stage takes ownership of its input, transforms it in place and wraps
// it in the next stage type. The wrapper types expose only read accessors, so
// the invariant a stage establishes cannot be broken by later callers.
//
// # Stages
//
//   - Forward
//
//   - Method: for every coefficient column i, select a pivot row (see
//     matrix.PivotStrategy), normalize it to a leading 1 and clear column i
//     below it. A column without any non-zero candidate marks the system as
//     singular and stops elimination.
//
//   - Time: O(r·c·min(r,c)).
//
//   - Square
//
//   - Method: reject when elimination hit a singular column, when there are
//     fewer rows than unknowns, or when any of the first n rows is zero in its
//     coefficient block; otherwise crop to exactly n rows.
//
//   - Time: O(n²).
//
//   - Backward
//
//   - Method: from the last column to the first, clear every entry above the
//     diagonal, leaving an identity coefficient block.
//
//   - Time: O(n³).
//
// # Row-order constraint
//
// Square validates and keeps the FIRST n rows of the row-echelon matrix.
// This is correct as long as elimination places pivots in increasing row
// order with no dependent row ahead of a later independent one, which the
// Forward stage guarantees by swapping its pivot into row i. Callers that
// build a RowEchelon by other means must respect the same ordering.
//
// # Numeric policy
//
// Zero tests are exact (Scalar.IsZero) unless WithTolerance(eps) is given,
// in which case scalars implementing scalar.Magnituder with |v| ≤ eps count as
// zero. Entries cleared by elimination are snapped to an exact zero so that
// floating residue never hides a zero row. Non-finite solution components are
// reported as ErrNonFinite, never returned.
//
// # Diagnostics
//
// The package never logs. It reports pivot choices and singular columns to an
// Observer supplied with WithObserver; the default observer discards them.
package echelon
