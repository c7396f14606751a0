// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PrimeField describes GF(p) for a prime p < 2^32.
// Keeping p below 2^32 lets every product fit in a uint64 before reduction.
// Values come only from NewPrimeField or ParsePrimeField; the zero value
// has no modulus and its Elem and Parse panic.
type PrimeField struct {
	p uint64
}

// NewPrimeField validates p and returns the field.
// Panics when p is not a prime below 2^32 (programmer error).
func NewPrimeField(p uint64) PrimeField {
	if p > math.MaxUint32 || !isPrime(p) {
		panic(panicModulusInvalid)
	}

	return PrimeField{p: p}
}

// ParsePrimeField reads a decimal modulus and validates it without panicking.
func ParsePrimeField(s string) (PrimeField, error) {
	p, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return PrimeField{}, fmt.Errorf("%w: %q as modulus: %v", ErrParse, s, err)
	}
	if p > math.MaxUint32 || !isPrime(p) {
		return PrimeField{}, fmt.Errorf("%d: %w", p, ErrModulus)
	}

	return PrimeField{p: p}, nil
}

// Modulus returns p.
func (f PrimeField) Modulus() uint64 { return f.p }

// Elem maps an arbitrary integer into the field.
// Panics on the zero PrimeField.
func (f PrimeField) Elem(v int64) Mod {
	if f.p == 0 {
		panic(panicModulusInvalid)
	}
	p := int64(f.p)
	r := v % p
	if r < 0 {
		r += p
	}

	return Mod{v: uint64(r), p: f.p}
}

// Parse reads a (possibly negative) decimal integer and reduces it mod p.
// Panics on the zero PrimeField.
func (f PrimeField) Parse(s string) (Mod, error) {
	if f.p == 0 {
		panic(panicModulusInvalid)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Mod{}, fmt.Errorf("%w: %q as GF(%d): %v", ErrParse, s, f.p, err)
	}

	return f.Elem(n), nil
}

// Mod is an element of a prime field.
// The zero value is 0 in every field and adopts the modulus of the other
// operand; mixing two different non-zero moduli panics.
type Mod struct {
	v uint64 // canonical residue in [0, p)
	p uint64 // modulus; 0 only for the zero value
}

// Value returns the canonical residue.
func (m Mod) Value() uint64 { return m.v }

// Modulus returns p, or 0 for the zero value.
func (m Mod) Modulus() uint64 { return m.p }

// field resolves the common modulus of two operands.
func (m Mod) field(o Mod) uint64 {
	switch {
	case m.p == 0:
		return o.p
	case o.p == 0 || o.p == m.p:
		return m.p
	default:
		panic(panicModulusMix)
	}
}

// IsZero reports m == 0.
func (m Mod) IsZero() bool { return m.v == 0 }

// Add returns m + o (mod p).
func (m Mod) Add(o Mod) Mod {
	p := m.field(o)
	if p == 0 {
		return Mod{}
	}

	return Mod{v: (m.v + o.v) % p, p: p}
}

// Neg returns -m (mod p).
func (m Mod) Neg() Mod {
	if m.v == 0 {
		return m
	}

	return Mod{v: m.p - m.v, p: m.p}
}

// Mul returns m · o (mod p).
func (m Mod) Mul(o Mod) Mod {
	p := m.field(o)
	if p == 0 {
		return Mod{}
	}

	return Mod{v: (m.v * o.v) % p, p: p}
}

// Inv returns m^(p-2), the inverse by Fermat's little theorem.
// Panics when m is zero.
func (m Mod) Inv() Mod {
	if m.v == 0 {
		panic(panicZeroInverse)
	}

	return Mod{v: powMod(m.v, m.p-2, m.p), p: m.p}
}

// String renders the residue.
func (m Mod) String() string { return strconv.FormatUint(m.v, 10) }

// powMod computes base^exp mod p by square-and-multiply.
func powMod(base, exp, p uint64) uint64 {
	result := uint64(1)
	base %= p
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % p
		}
		base = base * base % p
		exp >>= 1
	}

	return result
}

// isPrime is trial division; p < 2^32 keeps it under 2^16 iterations.
func isPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	if p%2 == 0 {
		return p == 2
	}
	for d := uint64(3); d*d <= p; d += 2 {
		if p%d == 0 {
			return false
		}
	}

	return true
}
