package echelon_test

import (
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// Fixtures shared by the stage tests.
var (
	// solution (2, 3, -1)
	scenarioSolvable = [][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}
	// row 3 = 2·row 1 + row 2 after elimination
	scenarioUnderdetermined = [][]float64{
		{1, 3, 1, 9},
		{1, 1, -1, 1},
		{3, 11, 5, 35},
	}
)

// mustFloat builds a Float64 matrix or fails the test.
func mustFloat(t testing.TB, rows [][]float64) *matrix.Matrix[scalar.Float64] {
	t.Helper()
	data := make([][]scalar.Float64, len(rows))
	for i, row := range rows {
		data[i] = make([]scalar.Float64, len(row))
		for j, v := range row {
			data[i][j] = scalar.Float64(v)
		}
	}
	m, err := matrix.New(data)
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}

	return m
}

// mustRational builds a Rational matrix from integer rows or fails the test.
func mustRational(t testing.TB, rows [][]int64) *matrix.Matrix[scalar.Rational] {
	t.Helper()
	data := make([][]scalar.Rational, len(rows))
	for i, row := range rows {
		data[i] = make([]scalar.Rational, len(row))
		for j, v := range row {
			data[i][j] = scalar.RationalFromInt(v)
		}
	}
	m, err := matrix.New(data)
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}

	return m
}

// recorder is an Observer that keeps every event.
type recorder struct {
	pivots   [][2]int
	singular []int
}

func (r *recorder) PivotChosen(step, row int) { r.pivots = append(r.pivots, [2]int{step, row}) }
func (r *recorder) SingularColumn(col int)    { r.singular = append(r.singular, col) }

// floats converts a Float64 slice for InDelta comparisons.
func floats(x []scalar.Float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}
