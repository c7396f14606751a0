package echelon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/echelon"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// TestForward_Shape asserts unit diagonal and exact zeros below it.
func TestForward_Shape(t *testing.T) {
	t.Parallel()

	for _, strategy := range []matrix.PivotStrategy{matrix.PivotNone, matrix.PivotPartial} {
		strategy := strategy
		t.Run(strategy.String(), func(t *testing.T) {
			t.Parallel()
			re, err := echelon.Forward(mustFloat(t, scenarioSolvable), echelon.WithPivoting(strategy))
			require.NoError(t, err)

			_, singular := re.Singular()
			require.False(t, singular)
			require.True(t, re.IsSolvable())

			for i := 0; i < re.Cols()-1; i++ {
				d, err := re.At(i, i)
				require.NoError(t, err)
				require.InDelta(t, 1.0, float64(d), 1e-15, "diagonal (%d,%d)", i, i)
				for r := i + 1; r < re.Rows(); r++ {
					v, _ := re.At(r, i)
					require.Equal(t, scalar.Float64(0), v, "below-diagonal (%d,%d)", r, i)
				}
			}
		})
	}
}

// TestForward_ExactValues checks the documented intermediate form without pivoting.
func TestForward_ExactValues(t *testing.T) {
	t.Parallel()

	re, err := echelon.Forward(mustFloat(t, scenarioSolvable))
	require.NoError(t, err)
	want := mustFloat(t, [][]float64{
		{1, 0.5, -0.5, 4},
		{0, 1, 1, 2},
		{0, 0, 1, -1},
	})
	require.Equal(t, want.Raw(), re.Matrix().Raw())
}

// TestForward_SingularStops records the singular column and notifies the observer.
func TestForward_SingularStops(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	re, err := echelon.Forward(mustFloat(t, scenarioUnderdetermined), echelon.WithObserver(rec))
	require.NoError(t, err)

	col, ok := re.Singular()
	require.True(t, ok)
	require.Equal(t, 2, col)
	require.False(t, re.IsSolvable())

	require.Equal(t, [][2]int{{0, 0}, {1, 1}}, rec.pivots)
	require.Equal(t, []int{2}, rec.singular)

	zero, err := re.Matrix().IsZeroRow(2, re.Cols(), nil)
	require.NoError(t, err)
	require.True(t, zero, "third row collapses to zero")
}

// TestForward_ObserverSeesSwaps reports the original row of each pivot.
func TestForward_ObserverSeesSwaps(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	_, err := echelon.Forward(mustFloat(t, scenarioSolvable),
		echelon.WithPivoting(matrix.PivotPartial), echelon.WithObserver(rec))
	require.NoError(t, err)

	require.Len(t, rec.pivots, 3)
	assert.Equal(t, [2]int{0, 1}, rec.pivots[0], "|-3| is the largest entry of column 0")
	assert.Empty(t, rec.singular)
}

// TestForward_MissingRows marks the first column without a row as singular.
func TestForward_MissingRows(t *testing.T) {
	t.Parallel()

	re, err := echelon.Forward(mustFloat(t, [][]float64{{1, 1, 1, 3}, {0, 1, 1, 2}}))
	require.NoError(t, err)
	col, ok := re.Singular()
	require.True(t, ok)
	require.Equal(t, 2, col)
}

// TestForward_Tolerance treats near-zero pivots as zero when configured.
func TestForward_Tolerance(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 1, 2},
		{1, 1 + 1e-14, 2},
	}

	re, err := echelon.Forward(mustFloat(t, rows))
	require.NoError(t, err)
	_, ok := re.Singular()
	require.False(t, ok, "exact zero test sees a 1e-14 pivot")

	re, err = echelon.Forward(mustFloat(t, rows), echelon.WithTolerance(1e-12))
	require.NoError(t, err)
	col, ok := re.Singular()
	require.True(t, ok)
	require.Equal(t, 1, col)

	// A sub-tolerance entry below a pivot is snapped to zero without touching
	// the rest of its row.
	re, err = echelon.Forward(mustFloat(t, [][]float64{{1, 0, 1}, {1e-14, 1, 2}}), echelon.WithTolerance(1e-12))
	require.NoError(t, err)
	require.Equal(t, mustFloat(t, [][]float64{{1, 0, 1}, {0, 1, 2}}).Raw(), re.Matrix().Raw())
}

// TestForward_Nil rejects a nil matrix.
func TestForward_Nil(t *testing.T) {
	t.Parallel()

	_, err := echelon.Forward[scalar.Float64](nil)
	require.ErrorIs(t, err, echelon.ErrNilStage)
}

// TestForward_OverflowIsClassified reports rows that overflow mid-elimination
// instead of scaling by the zero inverse of an infinite pivot.
func TestForward_OverflowIsClassified(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1e-300, 1e300, 1},
		{1, 1, 2},
	}

	var (
		x   []scalar.Float64
		err error
	)
	require.NotPanics(t, func() { x, err = echelon.TrySolve(mustFloat(t, rows)) })
	require.ErrorIs(t, err, echelon.ErrNonFinite)
	require.Nil(t, x)

	_, err = echelon.Forward(mustFloat(t, rows), echelon.WithPivoting(matrix.PivotNone))
	require.ErrorIs(t, err, echelon.ErrNonFinite)

	// Partial pivoting picks row 1 first and never overflows.
	x, err = echelon.TrySolve(mustFloat(t, rows), echelon.WithPivoting(matrix.PivotPartial))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 0}, floats(x), 1e-12)
}

// TestForward_EliminationOverflow reports a lower row that overflows while
// its column entry is cleared.
func TestForward_EliminationOverflow(t *testing.T) {
	t.Parallel()

	_, err := echelon.Forward(mustFloat(t, [][]float64{
		{1, 1e300, 1},
		{1e300, -1e300, 1},
	}))
	require.ErrorIs(t, err, echelon.ErrNonFinite)
}

// TestForward_DiagonalRounding shows the unit diagonal is exact only for
// exact fields.
func TestForward_DiagonalRounding(t *testing.T) {
	t.Parallel()

	re, err := echelon.Forward(mustFloat(t, [][]float64{{49, 1}}))
	require.NoError(t, err)
	d, _ := re.At(0, 0)
	require.InDelta(t, 1.0, float64(d), 1e-15)

	q, err := echelon.Forward(mustRational(t, [][]int64{{49, 1}}))
	require.NoError(t, err)
	dq, _ := q.At(0, 0)
	require.True(t, scalar.RationalFromInt(1).Equal(dq))
}
