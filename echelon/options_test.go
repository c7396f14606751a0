package echelon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/echelon"
	"github.com/katalvlaran/gaussjordan/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := echelon.NewOptions()
	assert.Equal(t, echelon.DefaultPivot, o.Pivot())
	assert.Equal(t, echelon.DefaultTolerance, o.Tolerance())
	assert.Equal(t, echelon.DefaultConsistencyCheck, o.ConsistencyCheck())
}

func TestOptions_Apply(t *testing.T) {
	t.Parallel()

	o := echelon.NewOptions(
		echelon.WithPivoting(matrix.PivotPartial),
		echelon.WithTolerance(1e-9),
		echelon.WithConsistencyCheck(true),
		nil, // ignored
	)
	assert.Equal(t, matrix.PivotPartial, o.Pivot())
	assert.Equal(t, 1e-9, o.Tolerance())
	assert.True(t, o.ConsistencyCheck())
}

// TestOptions_Panics covers nonsensical option values.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		eps := eps
		assert.Panics(t, func() { echelon.WithTolerance(eps) }, "eps=%v", eps)
	}
	assert.Panics(t, func() { echelon.WithPivoting(matrix.PivotStrategy(99)) })
	assert.NotPanics(t, func() { echelon.WithTolerance(0) })
}

// TestObserver_NilSafety covers WithObserver(nil) and zero ObserverFuncs.
func TestObserver_NilSafety(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		_, _ = echelon.TrySolve(mustFloat(t, scenarioUnderdetermined), echelon.WithObserver(nil))
	})
	require.NotPanics(t, func() {
		_, _ = echelon.TrySolve(mustFloat(t, scenarioUnderdetermined), echelon.WithObserver(echelon.ObserverFuncs{}))
	})

	var pivots, singular int
	_, err := echelon.TrySolve(mustFloat(t, scenarioUnderdetermined), echelon.WithObserver(echelon.ObserverFuncs{
		OnPivot:    func(int, int) { pivots++ },
		OnSingular: func(int) { singular++ },
	}))
	require.ErrorIs(t, err, echelon.ErrNoUniqueSolution)
	assert.Equal(t, 2, pivots)
	assert.Equal(t, 1, singular)
}
