// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructor and row-op tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// f64 converts plain float rows into scalar.Float64 rows.
func f64(rows [][]float64) [][]scalar.Float64 {
	out := make([][]scalar.Float64, len(rows))
	for i, row := range rows {
		out[i] = make([]scalar.Float64, len(row))
		for j, v := range row {
			out[i][j] = scalar.Float64(v)
		}
	}

	return out
}

// MustFloat builds a Float64 matrix or fails the test.
func MustFloat(t testing.TB, rows [][]float64) *matrix.Matrix[scalar.Float64] {
	t.Helper()
	m, err := matrix.New(f64(rows))
	if err != nil {
		t.Fatalf("matrix.New(%v): %v", rows, err)
	}

	return m
}

// scenarioSolvable is the 3×3 system with solution (2, 3, -1).
var scenarioSolvable = [][]float64{
	{2, 1, -1, 8},
	{-3, -1, 2, -11},
	{-2, 1, 2, -3},
}
