// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between gonum's dense types
// and matrix.Matrix[scalar.Float64]:
//   - FromGonum / FromGonumAugmented build an augmented system from
//     mat.Matrix (and mat.Vector) values;
//   - ToGonum splits an augmented matrix back into A and b;
//   - ToVecDense exports a solution vector;
//   - Residual measures ‖A·x − b‖∞ with gonum's own arithmetic, which makes it
//     an independent check of a solution produced by package echelon.
//
// Only float64 data crosses the boundary; exact fields (Rational, Mod) have
// no gonum counterpart.
package converters
