// SPDX-License-Identifier: MIT

// Package gaussjordan solves systems of linear equations by Gauss–Jordan
// elimination over any field: float64, complex128, exact rationals and prime
// fields GF(p).
//
// A system of m equations in n unknowns is an augmented matrix [A | b] with
// m rows and n+1 columns. Solving runs in explicit stages, each producing a
// distinct value so that no stage can be skipped:
//
//	matrix.Matrix ──Forward──▶ RowEchelon ──Square──▶ SquareMatrix
//	                                                   │
//	                 solution ◀──Solve── ReducedRowEchelon ◀──Backward
//
// echelon.TrySolve runs the whole pipeline on a copy of its input and returns
// either the unique solution or an error matching echelon.ErrNoUniqueSolution.
//
// Subpackages:
//
//	scalar/            the Scalar[T] field contract and its implementations
//	matrix/            the rectangular augmented matrix and elementary row ops
//	echelon/           Forward, Square, Backward, Solve, TrySolve, Residual
//	converters/        adapters to gonum's mat.Dense / mat.VecDense
//	cmd/gaussjordan/   a stdin-driven command line front end
//
// Quick example:
//
//	m, _ := matrix.New([][]scalar.Rational{
//		{scalar.RationalFromInt(1), scalar.RationalFromInt(1), scalar.RationalFromInt(3)},
//		{scalar.RationalFromInt(1), scalar.RationalFromInt(-1), scalar.RationalFromInt(1)},
//	})
//	x, err := echelon.TrySolve(m) // x = [2 1]
//
//	go get github.com/katalvlaran/gaussjordan
package gaussjordan
