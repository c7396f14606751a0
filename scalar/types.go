// SPDX-License-Identifier: MIT

// Package scalar: capability interfaces and sentinel errors.
package scalar

import "errors"

// Scalar is the arithmetic contract every matrix element must satisfy.
// Subtraction is a.Add(b.Neg()); division is a.Mul(b.Inv()).
// Inv on a zero value is a programmer error and panics.
type Scalar[T any] interface {
	// IsZero reports whether the value is the additive identity.
	IsZero() bool

	// Add returns v + o.
	Add(o T) T

	// Neg returns -v.
	Neg() T

	// Mul returns v · o.
	Mul(o T) T

	// Inv returns 1 / v.
	Inv() T
}

// Magnituder is implemented by scalars with a meaningful absolute value.
// Partial pivoting and tolerance-based zero tests require it.
type Magnituder interface {
	Magnitude() float64
}

// Finiter is implemented by scalars that can hold NaN or ±Inf.
type Finiter interface {
	IsFinite() bool
}

var (
	// ErrParse is returned (wrapped) by every textual parser in this package.
	ErrParse = errors.New("scalar: cannot parse value")

	// ErrModulus is returned by ParsePrimeField for a non-prime or too-large p.
	ErrModulus = errors.New("scalar: modulus must be a prime below 2^32")
)

// Panic messages for contract violations.
const (
	panicZeroInverse    = "scalar: inverse of zero"
	panicModulusInvalid = "scalar: PrimeField: modulus must be a prime below 2^32"
	panicModulusMix     = "scalar: Mod: operands from different fields"
)

// Magnitude returns |v| when T implements Magnituder.
// ok is false for scalars without a magnitude.
func Magnitude[T any](v T) (m float64, ok bool) {
	mg, ok := any(v).(Magnituder)
	if !ok {
		return 0, false
	}

	return mg.Magnitude(), true
}

// IsFinite reports whether v is finite. Scalars that do not implement
// Finiter are always finite.
func IsFinite[T any](v T) bool {
	f, ok := any(v).(Finiter)
	if !ok {
		return true
	}

	return f.IsFinite()
}

// Sub returns a - b.
func Sub[T Scalar[T]](a, b T) T { return a.Add(b.Neg()) }

// Div returns a / b. Panics when b is zero.
func Div[T Scalar[T]](a, b T) T { return a.Mul(b.Inv()) }
