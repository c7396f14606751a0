// SPDX-License-Identifier: MIT

package echelon

// Observer receives diagnostic events from the pipeline. Implementations must
// not retain or mutate the matrix; they only see indices.
type Observer interface {
	// PivotChosen is called once per Forward step with the step (column)
	// and the original index of the row swapped into place (row == step
	// when no swap happened).
	PivotChosen(step, row int)

	// SingularColumn is called when Forward finds no usable pivot for col,
	// or when Square rejects because row col is zero in its coefficients.
	SingularColumn(col int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	OnPivot    func(step, row int)
	OnSingular func(col int)
}

// PivotChosen implements Observer.
func (f ObserverFuncs) PivotChosen(step, row int) {
	if f.OnPivot != nil {
		f.OnPivot(step, row)
	}
}

// SingularColumn implements Observer.
func (f ObserverFuncs) SingularColumn(col int) {
	if f.OnSingular != nil {
		f.OnSingular(col)
	}
}

// nopObserver is the default.
type nopObserver struct{}

func (nopObserver) PivotChosen(int, int) {}
func (nopObserver) SingularColumn(int)   {}
