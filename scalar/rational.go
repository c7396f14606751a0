// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Rational is an exact fraction backed by *big.Rat.
// Values are immutable: every operation returns a freshly allocated result,
// so Rationals may be copied and shared freely. The zero value is 0.
type Rational struct {
	r *big.Rat // nil means 0
}

// NewRational returns num/den. Panics when den is zero.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic(panicZeroInverse)
	}

	return Rational{r: big.NewRat(num, den)}
}

// RationalFromInt returns the integer n as a Rational.
func RationalFromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// RationalFromRat copies r into a Rational. A nil r yields 0.
func RationalFromRat(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}

	return Rational{r: new(big.Rat).Set(r)}
}

// rat returns the backing value, substituting 0 for the zero Rational.
func (v Rational) rat() *big.Rat {
	if v.r == nil {
		return new(big.Rat)
	}

	return v.r
}

// Rat returns a copy of the underlying *big.Rat.
func (v Rational) Rat() *big.Rat { return new(big.Rat).Set(v.rat()) }

// IsZero reports v == 0.
func (v Rational) IsZero() bool { return v.r == nil || v.r.Sign() == 0 }

// Add returns v + o.
func (v Rational) Add(o Rational) Rational {
	return Rational{r: new(big.Rat).Add(v.rat(), o.rat())}
}

// Neg returns -v.
func (v Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(v.rat())}
}

// Mul returns v · o.
func (v Rational) Mul(o Rational) Rational {
	return Rational{r: new(big.Rat).Mul(v.rat(), o.rat())}
}

// Inv returns 1 / v. Panics when v is zero.
func (v Rational) Inv() Rational {
	if v.IsZero() {
		panic(panicZeroInverse)
	}

	return Rational{r: new(big.Rat).Inv(v.r)}
}

// Magnitude returns |v| rounded to the nearest float64.
func (v Rational) Magnitude() float64 {
	f, _ := v.rat().Float64()

	return math.Abs(f)
}

// Equal reports whether v and o denote the same fraction.
func (v Rational) Equal(o Rational) bool { return v.rat().Cmp(o.rat()) == 0 }

// String renders integers without a denominator ("3") and fractions as "a/b".
func (v Rational) String() string {
	r := v.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.String()
}

// ParseRational accepts "a/b", decimal ("0.25") and scientific ("1e-3") forms.
func ParseRational(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q as rational", ErrParse, s)
	}

	return Rational{r: r}, nil
}
