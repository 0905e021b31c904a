// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/numlab/numeric"
)

// Solve solves the n x (n+1) augmented system a by Gaussian elimination with
// partial pivoting. The input is copied; a is never modified.
//
// Implementation:
//   - Stage 1: validate the shape and copy a into a working grid.
//   - Stage 2: forward elimination with the pivot search described in the
//     package documentation; pmax starts at f.Const(0) and only a strictly
//     larger |a[j][i]| (by E's ordering) moves the pivot.
//   - Stage 3: back substitution in place on column n.
//
// Behavior highlights:
//   - The pivot row is scaled right of the diagonal only; a[i][i] keeps the
//     pivot and the sub-diagonal entries keep their last values.
//   - Under stochastic arithmetic the pivot comparison itself may be counted
//     as an unstable branching.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve[E numeric.Number[E]](f numeric.Field[E], a [][]E, opts ...Option[E]) (*Result[E], error) {
	var o Options[E]
	for _, opt := range opts {
		opt(&o)
	}

	n := len(a)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	for i, row := range a {
		if len(row) != n+1 {
			return nil, fmt.Errorf("gauss: row %d has %d entries: %w", i, len(row), ErrNotAugmented)
		}
	}

	w := numeric.CloneGrid(a)
	res := &Result[E]{Pivots: make([]E, 0, n)}

	var i, j, k, ll int
	var pmax, aux E
	for i = 0; i < n-1; i++ {
		// Pivot search: strictly greater than the running maximum.
		pmax, ll = f.Const(0), -1
		for j = i; j < n; j++ {
			if v := w[j][i].Abs(); numeric.Gt(v, pmax) {
				pmax, ll = v, j
			}
		}
		if ll < 0 {
			return nil, fmt.Errorf("gauss: column %d: %w", i, ErrSingular)
		}
		if o.OnPivot != nil {
			o.OnPivot(i, ll, pmax)
		}

		if ll != i {
			if o.OnSwap != nil {
				o.OnSwap(i, ll)
			}
			for j = i; j <= n; j++ {
				w[i][j], w[ll][j] = w[ll][j], w[i][j]
			}
			res.Swaps++
		}

		// Normalize the pivot row.
		aux = w[i][i]
		res.Pivots = append(res.Pivots, aux)
		if o.OnNormalize != nil {
			o.OnNormalize(i, aux)
		}
		for j = i + 1; j <= n; j++ {
			w[i][j] = w[i][j].Div(aux)
		}

		// Eliminate below the pivot.
		for k = i + 1; k < n; k++ {
			aux = w[k][i]
			if o.OnMultiplier != nil {
				o.OnMultiplier(k, aux)
			}
			for j = i + 1; j <= n; j++ {
				w[k][j] = w[k][j].Sub(aux.Mul(w[i][j]))
			}
		}

		if o.OnStep != nil {
			o.OnStep(i, w)
		}
	}

	backSubstitute(w, &o)

	res.X = make([]E, n)
	for i = 0; i < n; i++ {
		res.X[i] = w[i][n]
	}
	res.Reduced = w

	return res, nil
}

// backSubstitute overwrites column n of the reduced matrix with the solution.
func backSubstitute[E numeric.Number[E]](w [][]E, o *Options[E]) {
	n := len(w)
	num, den := w[n-1][n], w[n-1][n-1]
	w[n-1][n] = num.Div(den)
	if o.OnLast != nil {
		o.OnLast(n-1, num, den, w[n-1][n])
	}

	for i := n - 2; i >= 0; i-- {
		if o.OnBackStart != nil {
			o.OnBackStart(i, w[i][n])
		}
		for j := i + 1; j < n; j++ {
			if o.OnBackSubstitution != nil {
				o.OnBackSubstitution(i, j, w[i][j], w[j][n])
			}
			w[i][n] = w[i][n].Sub(w[i][j].Mul(w[j][n]))
		}
		if o.OnSolved != nil {
			o.OnSolved(i, w[i][n])
		}
	}
}
