// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// FromGonum builds the augmented matrix [A | b].
// Errors: ErrNilInput, ErrDimensionMismatch when b.Len() != rows(A), and
// anything matrix.New rejects (ErrMalformedMatrix for a 0-column A,
// ErrNaNInf for non-finite entries).
func FromGonum(a mat.Matrix, b mat.Vector) (*matrix.Matrix[scalar.Float64], error) {
	if a == nil || b == nil {
		return nil, converterErrorf(opFromGonum, ErrNilInput)
	}
	r, c := a.Dims()
	if b.Len() != r {
		return nil, converterErrorf(opFromGonum, fmt.Errorf("len(b)=%d, rows(A)=%d: %w", b.Len(), r, ErrDimensionMismatch))
	}

	rows := make([][]scalar.Float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]scalar.Float64, c+1)
		for j := 0; j < c; j++ {
			rows[i][j] = scalar.Float64(a.At(i, j))
		}
		rows[i][c] = scalar.Float64(b.AtVec(i))
	}

	m, err := matrix.New(rows)
	if err != nil {
		return nil, converterErrorf(opFromGonum, err)
	}

	return m, nil
}

// FromGonumAugmented copies an already-augmented gonum matrix.
func FromGonumAugmented(ab mat.Matrix) (*matrix.Matrix[scalar.Float64], error) {
	if ab == nil {
		return nil, converterErrorf(opFromGonumAugmented, ErrNilInput)
	}
	r, c := ab.Dims()
	rows := make([][]scalar.Float64, r)
	for i := range rows {
		rows[i] = make([]scalar.Float64, c)
		for j := range rows[i] {
			rows[i][j] = scalar.Float64(ab.At(i, j))
		}
	}

	m, err := matrix.New(rows)
	if err != nil {
		return nil, converterErrorf(opFromGonumAugmented, err)
	}

	return m, nil
}

// ToGonum splits m into its coefficient block A and right-hand side b.
func ToGonum(m *matrix.Matrix[scalar.Float64]) (*mat.Dense, *mat.VecDense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, converterErrorf(opToGonum, err)
	}
	r, n := m.Rows(), m.Unknowns()
	a := mat.NewDense(r, n, nil)
	b := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		row, _ := m.Row(i) // safe: i < Rows()
		for j := 0; j < n; j++ {
			a.Set(i, j, float64(row[j]))
		}
		b.SetVec(i, float64(row[n]))
	}

	return a, b, nil
}

// ToVecDense copies x into a new gonum column vector.
// A nil or empty x yields nil because gonum has no zero-length vectors.
func ToVecDense(x []scalar.Float64) *mat.VecDense {
	if len(x) == 0 {
		return nil
	}
	data := make([]float64, len(x))
	for i, v := range x {
		data[i] = float64(v)
	}

	return mat.NewVecDense(len(data), data)
}

// Residual returns ‖A·x − b‖∞.
// Errors: ErrNilInput, ErrDimensionMismatch when len(x) != cols(A) or
// b.Len() != rows(A).
func Residual(a mat.Matrix, b mat.Vector, x []scalar.Float64) (float64, error) {
	if a == nil || b == nil {
		return 0, converterErrorf(opResidual, ErrNilInput)
	}
	r, c := a.Dims()
	if len(x) != c || b.Len() != r {
		return 0, converterErrorf(opResidual,
			fmt.Errorf("A is %d×%d, len(b)=%d, len(x)=%d: %w", r, c, b.Len(), len(x), ErrDimensionMismatch))
	}

	var res mat.VecDense
	res.MulVec(a, ToVecDense(x))
	res.SubVec(&res, b)

	return mat.Norm(&res, math.Inf(1)), nil
}
