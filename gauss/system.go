// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numlab/matrix"
)

// System returns the 4x5 textbook augmented system. Each call returns a
// fresh copy.
func System() [][]float64 {
	return [][]float64{
		{21.0, 130.0, 0.0, 2.1, 153.1},
		{13.0, 80.0, 4.74e+8, 752.0, 849.74},
		{0.0, -0.4, 3.9816e+8, 4.2, 7.7816},
		{0.0, 0.0, 1.7, 9.0e-9, 2.6e-8},
	}
}

// ExactSolution returns the exact solution of System.
func ExactSolution() []float64 {
	return []float64{1, 1, 1e-8, 1}
}

// Reference solves the float64 augmented system a with gonum's LU solver.
// An ill-conditioning warning from gonum is not an error; the solution is
// returned as computed.
func Reference(a [][]float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	aug, err := matrix.NewDenseFrom(a)
	if err != nil {
		return nil, fmt.Errorf("gauss: Reference: %w", err)
	}
	if aug.Cols() != n+1 {
		return nil, fmt.Errorf("gauss: Reference: %w", ErrNotAugmented)
	}

	g, err := matrix.ToGonum(aug)
	if err != nil {
		return nil, fmt.Errorf("gauss: Reference: %w", err)
	}
	A := g.Slice(0, n, 0, n)
	b := mat.NewVecDense(n, mat.Col(nil, n, g))

	var x mat.VecDense
	if err = x.SolveVec(A, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("gauss: Reference: %w", ErrSingular)
		}
	}

	return x.RawVector().Data, nil
}

// Condition returns the 1-norm condition number of the coefficient block of
// the augmented system a.
func Condition(a [][]float64) (float64, error) {
	aug, err := matrix.NewDenseFrom(a)
	if err != nil {
		return 0, fmt.Errorf("gauss: Condition: %w", err)
	}
	n := aug.Rows()
	if aug.Cols() != n+1 {
		return 0, fmt.Errorf("gauss: Condition: %w", ErrNotAugmented)
	}
	g, err := matrix.ToGonum(aug)
	if err != nil {
		return 0, fmt.Errorf("gauss: Condition: %w", err)
	}

	return mat.Cond(g.Slice(0, n, 0, n), 1), nil
}
