// SPDX-License-Identifier: MIT
// Package echelon: sentinel errors.

package echelon

import (
	"errors"
	"fmt"
)

var (
	// ErrNoUniqueSolution is returned when the system is singular,
	// underdetermined or (with WithConsistencyCheck) inconsistent. It is an
	// expected outcome for degenerate input, not a programming fault.
	ErrNoUniqueSolution = errors.New("echelon: system has no unique solution")

	// ErrInconsistent accompanies ErrNoUniqueSolution when a discarded
	// trailing row reads 0 = c with c ≠ 0.
	ErrInconsistent = errors.New("echelon: inconsistent system")

	// ErrNonFinite is returned when elimination produces NaN or ±Inf: a
	// pivot or its inverse, a row after scaling or elimination, or a
	// solution component.
	ErrNonFinite = errors.New("echelon: non-finite value")

	// ErrNilStage is returned when a nil stage value is passed to the next stage.
	ErrNilStage = errors.New("echelon: nil stage")

	// ErrDimensionMismatch is returned by Residual when len(x) != Unknowns().
	ErrDimensionMismatch = errors.New("echelon: dimension mismatch")
)

// Operation tags for error wrapping.
const (
	opForward  = "Forward"
	opSquare   = "Square"
	opBackward = "Backward"
	opTrySolve = "TrySolve"
	opResidual = "Residual"
)

// Panic messages for invalid option values (programmer error).
const (
	panicToleranceInvalid = "echelon: WithTolerance: eps must be finite, non-negative"
	panicPivotInvalid     = "echelon: WithPivoting: unknown pivot strategy"
)

// echelonErrorf wraps err with an operation tag. Use only when err != nil.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
