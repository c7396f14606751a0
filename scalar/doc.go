// SPDX-License-Identifier: MIT

// Package scalar defines the field-like element types the elimination
// pipeline operates on.
//
// What & Why:
//
//	Gauss–Jordan elimination needs only five operations from its elements:
//	a zero test, addition, negation, multiplication and a multiplicative
//	inverse. Scalar[T] captures exactly that set as a self-referential
//	generic constraint, so the same algorithm runs over IEEE floats,
//	complex numbers, exact rationals and prime fields.
//
// Provided types:
//
//   - Float64    – IEEE-754 double; Magnituder + Finiter.
//   - Complex128 – IEEE complex; Magnituder + Finiter.
//   - Rational   – exact fraction backed by math/big; Magnituder.
//   - Mod        – element of GF(p) for a prime p < 2^32 (see PrimeField).
//
// Optional capabilities:
//
//	Magnituder (absolute value) enables partial pivoting and tolerance-based
//	zero tests. Finiter lets the matrix and echelon packages reject NaN/Inf
//	instead of propagating them.
//
// Complexity:
//
//	Float64/Complex128/Mod ops are O(1) and allocation-free.
//	Rational ops allocate a fresh big.Rat per result (values are immutable).
package scalar
