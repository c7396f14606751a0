// Package matrix offers the augmented-matrix representation used by the
// Gauss–Jordan pipeline.
//
// The matrix package provides:
//
//   - Matrix[T], a rectangular grid of scalars whose last column is the
//     right-hand side of Ax = b, built by the fallible constructor New.
//   - Row primitives (SwapRows, ScaleRow, AddScaledRow) and Crop, the only
//     operations elimination stages are allowed to perform.
//   - Pivot selection (PivotNone, PivotPartial) used by forward elimination.
//   - Validators and sentinel errors shared with the echelon package.
//
// Rows are stored as independent slices so swaps are O(1) and row
// operations touch a single contiguous slice, which is O(cols).
//
// See the examples in this package and echelon for usage patterns.
package matrix
