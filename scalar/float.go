// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Float64 is an IEEE-754 double precision scalar.
type Float64 float64

// IsZero reports v == 0 exactly. Use a tolerance option in the echelon
// package for approximate zero tests.
func (v Float64) IsZero() bool { return v == 0 }

// Add returns v + o.
func (v Float64) Add(o Float64) Float64 { return v + o }

// Neg returns -v.
func (v Float64) Neg() Float64 { return -v }

// Mul returns v · o.
func (v Float64) Mul(o Float64) Float64 { return v * o }

// Inv returns 1 / v. Panics when v is zero so that ±Inf never enters a matrix.
func (v Float64) Inv() Float64 {
	if v == 0 {
		panic(panicZeroInverse)
	}

	return 1 / v
}

// Magnitude returns |v|.
func (v Float64) Magnitude() float64 { return math.Abs(float64(v)) }

// IsFinite reports whether v is neither NaN nor ±Inf.
func (v Float64) IsFinite() bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String formats v with the shortest representation (%g).
func (v Float64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// ParseFloat64 parses a decimal or scientific literal.
func ParseFloat64(s string) (Float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as float64: %v", ErrParse, s, err)
	}

	return Float64(f), nil
}

// Complex128 is an IEEE-754 complex scalar.
type Complex128 complex128

// IsZero reports v == 0 exactly.
func (v Complex128) IsZero() bool { return v == 0 }

// Add returns v + o.
func (v Complex128) Add(o Complex128) Complex128 { return v + o }

// Neg returns -v.
func (v Complex128) Neg() Complex128 { return -v }

// Mul returns v · o.
func (v Complex128) Mul(o Complex128) Complex128 { return v * o }

// Inv returns 1 / v. Panics when v is zero.
func (v Complex128) Inv() Complex128 {
	if v == 0 {
		panic(panicZeroInverse)
	}

	return 1 / v
}

// Magnitude returns the modulus |v|.
func (v Complex128) Magnitude() float64 { return cmplx.Abs(complex128(v)) }

// IsFinite reports whether both parts are finite.
func (v Complex128) IsFinite() bool {
	c := complex128(v)

	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}

// String formats v like strconv.FormatComplex with %g precision.
func (v Complex128) String() string { return strconv.FormatComplex(complex128(v), 'g', -1, 128) }

// ParseComplex128 parses literals such as "1+2i", "-3i" or "4".
func ParseComplex128(s string) (Complex128, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as complex128: %v", ErrParse, s, err)
	}

	return Complex128(c), nil
}
