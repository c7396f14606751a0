package echelon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/echelon"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// TestBackward_IdentityBlock leaves an exact identity over Q.
func TestBackward_IdentityBlock(t *testing.T) {
	t.Parallel()

	re, err := echelon.Forward(mustRational(t, [][]int64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}))
	require.NoError(t, err)
	sq, err := echelon.Square(re)
	require.NoError(t, err)
	rr, err := echelon.Backward(sq)
	require.NoError(t, err)
	require.Equal(t, 3, rr.Size())

	for i := 0; i < rr.Size(); i++ {
		for j := 0; j < rr.Size(); j++ {
			v, err := rr.At(i, j)
			require.NoError(t, err)
			want := scalar.RationalFromInt(0)
			if i == j {
				want = scalar.RationalFromInt(1)
			}
			require.Truef(t, want.Equal(v), "(%d,%d) = %s", i, j, v)
		}
	}

	x := rr.Solve()
	require.Equal(t, "2 3 -1", x[0].String()+" "+x[1].String()+" "+x[2].String())
}

// TestBackward_SolveIsACopy keeps the stage value intact.
func TestBackward_SolveIsACopy(t *testing.T) {
	t.Parallel()

	re, err := echelon.Forward(mustFloat(t, [][]float64{{1, 0, 4}, {0, 1, 5}}))
	require.NoError(t, err)
	sq, err := echelon.Square(re)
	require.NoError(t, err)
	rr, err := echelon.Backward(sq)
	require.NoError(t, err)

	x := rr.Solve()
	x[0] = 99
	v, _ := rr.At(0, 2)
	require.Equal(t, scalar.Float64(4), v)
}

// TestBackward_Nil rejects a nil stage.
func TestBackward_Nil(t *testing.T) {
	t.Parallel()

	_, err := echelon.Backward[scalar.Float64](nil)
	require.ErrorIs(t, err, echelon.ErrNilStage)
}

// TestBackward_Overflow reports a row that overflows while clearing above
// the diagonal.
func TestBackward_Overflow(t *testing.T) {
	t.Parallel()

	re, err := echelon.Forward(mustFloat(t, [][]float64{
		{1, 0, 1e300, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 1e300},
	}))
	require.NoError(t, err)
	sq, err := echelon.Square(re)
	require.NoError(t, err)

	var rr *echelon.ReducedRowEchelon[scalar.Float64]
	require.NotPanics(t, func() { rr, err = echelon.Backward(sq) })
	require.ErrorIs(t, err, echelon.ErrNonFinite)
	require.Nil(t, rr)
}
