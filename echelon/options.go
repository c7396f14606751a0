// SPDX-License-Identifier: MIT

// Package echelon: functional configuration for the elimination pipeline.
//
// Options are resolved once by Forward and carried by every later stage
// value, so Square and Backward always run under the same pivoting and
// numeric policy that produced their input.
package echelon

import (
	"math"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivot swaps rows only when the diagonal entry is zero.
	DefaultPivot = matrix.PivotNone

	// DefaultTolerance of 0 means zero tests use Scalar.IsZero exactly.
	DefaultTolerance = 0.0

	// DefaultConsistencyCheck drops rows past Unknowns() without inspecting them.
	DefaultConsistencyCheck = false
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivot       matrix.PivotStrategy
	tolerance   float64
	observer    Observer
	consistency bool
}

// WithPivoting selects the pivot strategy used by Forward.
// Panics when s is not a declared matrix.PivotStrategy.
func WithPivoting(s matrix.PivotStrategy) Option {
	if !s.Valid() {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = s }
}

// WithTolerance treats values with Magnitude() ≤ eps as zero.
// Scalars without a magnitude always use exact IsZero.
// Panics when eps is negative, NaN or ±Inf.
//
// Prefer a small eps (1e-12 … 1e-9) for float64 data whose singular
// structure is known to be exact in theory but noisy in practice.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// WithObserver installs a diagnostic observer. nil restores the no-op default.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = nopObserver{}
		}
		o.observer = obs
	}
}

// WithConsistencyCheck makes Square reject an over-determined system whose
// discarded rows are not all zero (0 = c, c ≠ 0).
func WithConsistencyCheck(on bool) Option {
	return func(o *Options) { o.consistency = on }
}

// NewOptions resolves opts against the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Pivot returns the configured pivot strategy.
func (o Options) Pivot() matrix.PivotStrategy { return o.pivot }

// Tolerance returns the configured zero tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// ConsistencyCheck reports whether Square inspects discarded rows.
func (o Options) ConsistencyCheck() bool { return o.consistency }

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivot:       DefaultPivot,
		tolerance:   DefaultTolerance,
		observer:    nopObserver{},
		consistency: DefaultConsistencyCheck,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// zeroTest builds the zero predicate for eps.
func zeroTest[T scalar.Scalar[T]](eps float64) func(T) bool {
	if eps == 0 {
		return func(v T) bool { return v.IsZero() }
	}

	return func(v T) bool {
		if v.IsZero() {
			return true
		}
		mag, ok := scalar.Magnitude(v)

		return ok && mag <= eps
	}
}

// zeroLike returns the additive identity in v's own field (v + (-v)).
// Mod values carry their modulus, so a bare zero value is not always right.
func zeroLike[T scalar.Scalar[T]](v T) T { return v.Add(v.Neg()) }
