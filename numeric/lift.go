// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/numlab/matrix"
)

// Vector lifts float64 literals into E.
func Vector[E any](f Field[E], xs []float64) []E {
	return lo.Map(xs, func(v float64, _ int) E { return f.Const(v) })
}

// Grid lifts a literal table into E, row by row.
func Grid[E any](f Field[E], rows [][]float64) [][]E {
	return lo.Map(rows, func(row []float64, _ int) []E { return Vector(f, row) })
}

// LiftDense lifts any matrix.Matrix into an [][]E working copy.
func LiftDense[E any](f Field[E], m matrix.Matrix) ([][]E, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("LiftDense: %w", err)
	}
	out := make([][]E, m.Rows())
	var v float64
	var err error
	for i := range out {
		out[i] = make([]E, m.Cols())
		for j := range out[i] {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("LiftDense: %w", err)
			}
			out[i][j] = f.Const(v)
		}
	}

	return out, nil
}

// CloneGrid copies the row slices of a so kernels can work in place.
func CloneGrid[E any](a [][]E) [][]E {
	out := make([][]E, len(a))
	for i, row := range a {
		out[i] = append([]E(nil), row...)
	}

	return out
}

// Float64s projects a vector onto float64 (the mean, for stochastic numbers).
func Float64s[E Number[E]](xs []E) []float64 {
	return lo.Map(xs, func(x E, _ int) float64 { return x.Float64() })
}

// MaxAbs returns the largest |x| by E's ordering, or the zero E for empty input.
func MaxAbs[E Number[E]](xs []E) E {
	var best E
	for i, x := range xs {
		if a := x.Abs(); i == 0 || best.Lt(a) {
			best = a
		}
	}

	return best
}

// GridFloat64s projects a table onto float64, row by row.
func GridFloat64s[E Number[E]](a [][]E) [][]float64 {
	return lo.Map(a, func(row []E, _ int) []float64 { return Float64s(row) })
}
