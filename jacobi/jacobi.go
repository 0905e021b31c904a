// SPDX-License-Identifier: MIT

package jacobi

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numlab/numeric"
)

// Solve runs Jacobi sweeps on a x = b starting from the constant vector
// Options.Start.
//
// Implementation:
//   - Stage 1: validate options and shapes.
//   - Stage 2: per sweep, copy y into x, recompute every y[j] from x, and keep
//     the largest |x[j]-y[j]| as the sweep norm (a strictly larger value by
//     E's ordering replaces the running maximum, which starts at zero).
//   - Stage 3: stop on a zero norm first, then on norm < tolerance, else
//     continue up to MaxIter sweeps.
//
// ctx is checked once per sweep.
//
// Complexity:
//   - Time O(MaxIter*n^2), Space O(n).
func Solve[E numeric.Number[E]](ctx context.Context, f numeric.Field[E], a [][]E, b []E, opts ...Option[E]) (*Result[E], error) {
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Tolerance > 0) {
		return nil, ErrBadTolerance
	}
	if o.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	n, err := validate(a, b)
	if err != nil {
		return nil, err
	}

	eps, zero := f.Const(o.Tolerance), f.Const(0)
	x, y := make([]E, n), make([]E, n)
	for j := range y {
		y[j] = f.Const(o.Start)
	}

	res := &Result[E]{Stop: StopMaxIterations}
	var aux, d E
	for it := 1; it <= o.MaxIter; it++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("jacobi: sweep %d: %w", it, err)
		}
		norm := zero
		copy(x, y)
		for j := 0; j < n; j++ {
			aux = b[j]
			for k := 0; k < n; k++ {
				if k != j {
					aux = aux.Sub(a[j][k].Mul(x[k]))
				}
			}
			y[j] = aux.Div(a[j][j])
			if d = x[j].Sub(y[j]).Abs(); numeric.Gt(d, norm) {
				norm = d
			}
		}

		res.Iterations, res.Norm = it, norm
		if o.OnSweep != nil {
			o.OnSweep(it, norm)
		}
		if norm.IsZero() {
			res.Stop = StopPrecisionLimit
			break
		}
		if norm.Lt(eps) {
			res.Stop = StopConverged
			break
		}
	}
	res.X = y

	return res, nil
}

// RHS computes a*x in E arithmetic, accumulating each row left to right from
// zero.
func RHS[E numeric.Number[E]](f numeric.Field[E], a [][]E, x []E) ([]E, error) {
	n, err := validate(a, x)
	if err != nil {
		return nil, err
	}
	out := make([]E, n)
	for i := 0; i < n; i++ {
		aux := f.Const(0)
		for j := 0; j < n; j++ {
			aux = aux.Add(a[i][j].Mul(x[j]))
		}
		out[i] = aux
	}

	return out, nil
}

// Residual returns a*x - b, row by row, accumulated as -b[i] + sum_j a[i][j]*x[j].
func Residual[E numeric.Number[E]](a [][]E, b, x []E) ([]E, error) {
	n, err := validate(a, b)
	if err != nil {
		return nil, err
	}
	if len(x) != n {
		return nil, fmt.Errorf("jacobi: Residual: len(x)=%d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}
	out := make([]E, n)
	for i := 0; i < n; i++ {
		aux := b[i].Neg()
		for j := 0; j < n; j++ {
			aux = aux.Add(a[i][j].Mul(x[j]))
		}
		out[i] = aux
	}

	return out, nil
}

// validate checks that a is n x n and len(v) == n, and returns n.
func validate[E any](a [][]E, v []E) (int, error) {
	n := len(a)
	if n == 0 {
		return 0, ErrEmptySystem
	}
	for i, row := range a {
		if len(row) != n {
			return 0, fmt.Errorf("jacobi: row %d has %d entries, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}
	if len(v) != n {
		return 0, fmt.Errorf("jacobi: vector has %d entries, want %d: %w", len(v), n, ErrDimensionMismatch)
	}

	return n, nil
}
