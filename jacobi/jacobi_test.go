// SPDX-License-Identifier: MIT

package jacobi_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/jacobi"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numeric"
	"github.com/katalvlaran/numlab/stochastic"
)

type f64 = numeric.Plain[float64]
type f32 = numeric.Plain[float32]

// textbook lifts the generated system into E and forms b = A*xsol in E.
func textbook[E numeric.Number[E]](t *testing.T, f numeric.Field[E]) ([][]E, []E) {
	t.Helper()
	d, _, err := jacobi.Generate(jacobi.DefaultSeed, jacobi.Solution())
	require.NoError(t, err)
	a, err := numeric.LiftDense(f, d)
	require.NoError(t, err)
	b, err := jacobi.RHS(f, a, numeric.Vector(f, jacobi.Solution()))
	require.NoError(t, err)

	return a, b
}

func maxAbsErr(x []float64, want []float64) float64 {
	var m float64
	for i := range x {
		m = math.Max(m, math.Abs(x[i]-want[i]))
	}

	return m
}

// ------------------------------------------------------------------------
// 1. Generator
// ------------------------------------------------------------------------

func TestLCG_Sequence(t *testing.T) {
	g := jacobi.NewLCG(jacobi.DefaultSeed)
	var states []int
	for i := 0; i < 5; i++ {
		g.Next()
		states = append(states, g.State())
	}
	require.Equal(t, []int{49, 787, 183, 963, 911}, states)

	g = jacobi.NewLCG(jacobi.DefaultSeed)
	require.Equal(t, float32(2.0*49.0/1387.0-1.0), g.Next())
}

func TestGenerate_Shape(t *testing.T) {
	a, b, err := jacobi.Generate(jacobi.DefaultSeed, jacobi.Solution())
	require.NoError(t, err)
	require.Equal(t, 20, a.Rows())
	require.Equal(t, 20, a.Cols())
	require.Len(t, b, 20)

	a00, err := a.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, -0.9293438792228699+jacobi.DiagonalShift, a00, 1e-12)

	// Off-diagonal entries stay in [-1, 1).
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			if i == j {
				continue
			}
			v, _ := a.At(i, j)
			require.GreaterOrEqual(t, v, -1.0)
			require.Less(t, v, 1.0)
		}
	}

	y, err := matrix.MatVec(a, jacobi.Solution())
	require.NoError(t, err)
	require.Equal(t, y, b)
}

func TestGenerate_Empty(t *testing.T) {
	_, _, err := jacobi.Generate(jacobi.DefaultSeed, nil)
	require.ErrorIs(t, err, jacobi.ErrEmptySystem)
}

// ------------------------------------------------------------------------
// 2. Validation
// ------------------------------------------------------------------------

func TestSolve_Validation(t *testing.T) {
	f := numeric.PlainField[float64]{}
	ctx := context.Background()
	a := numeric.Grid[f64](f, [][]float64{{4, 1}, {1, 3}})
	b := numeric.Vector[f64](f, []float64{1, 2})

	_, err := jacobi.Solve[f64](ctx, f, nil, nil)
	require.ErrorIs(t, err, jacobi.ErrEmptySystem)

	_, err = jacobi.Solve[f64](ctx, f, a, b[:1])
	require.ErrorIs(t, err, jacobi.ErrDimensionMismatch)

	_, err = jacobi.Solve[f64](ctx, f, [][]f64{a[0], a[1][:1]}, b)
	require.ErrorIs(t, err, jacobi.ErrDimensionMismatch)

	_, err = jacobi.Solve(ctx, f, a, b, jacobi.WithTolerance[f64](0))
	require.ErrorIs(t, err, jacobi.ErrBadTolerance)

	_, err = jacobi.Solve(ctx, f, a, b, jacobi.WithTolerance[f64](math.NaN()))
	require.ErrorIs(t, err, jacobi.ErrBadTolerance)

	_, err = jacobi.Solve(ctx, f, a, b, jacobi.WithMaxIter[f64](0))
	require.ErrorIs(t, err, jacobi.ErrBadMaxIter)

	_, err = jacobi.Residual(a, b, b[:1])
	require.ErrorIs(t, err, jacobi.ErrDimensionMismatch)
}

func TestSolve_Cancelled(t *testing.T) {
	f := numeric.PlainField[float64]{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, b := textbook[f64](t, f)
	_, err := jacobi.Solve(ctx, f, a, b)
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 3. Convergence behavior
// ------------------------------------------------------------------------

func TestSolve_SmallSystem(t *testing.T) {
	f := numeric.PlainField[float64]{}
	a := numeric.Grid[f64](f, [][]float64{{4, 1}, {1, 3}})
	b := numeric.Vector[f64](f, []float64{1, 2})

	var sweeps int
	res, err := jacobi.Solve(context.Background(), f, a, b,
		jacobi.WithTolerance[f64](1e-12),
		jacobi.WithStart[f64](0),
		jacobi.WithOnSweep(func(int, f64) { sweeps++ }),
	)
	require.NoError(t, err)
	require.Equal(t, jacobi.StopConverged, res.Stop)
	require.Equal(t, res.Iterations, sweeps)
	require.InDelta(t, 1.0/11, res.X[0].Float64(), 1e-10)
	require.InDelta(t, 7.0/11, res.X[1].Float64(), 1e-10)
}

func TestSolve_SingleConvergesAtDefaultTolerance(t *testing.T) {
	f := numeric.PlainField[float32]{}
	a, b := textbook[f32](t, f)
	res, err := jacobi.Solve(context.Background(), f, a, b)
	require.NoError(t, err)
	require.Equal(t, jacobi.StopConverged, res.Stop)
	require.Less(t, res.Iterations, 100)
	require.Less(t, maxAbsErr(numeric.Float64s(res.X), jacobi.Solution()), 0.1)
}

func TestSolve_SingleNeverReachesTightTolerance(t *testing.T) {
	f := numeric.PlainField[float32]{}
	a, b := textbook[f32](t, f)
	res, err := jacobi.Solve(context.Background(), f, a, b, jacobi.WithTolerance[f32](1e-4))
	require.NoError(t, err)
	require.Equal(t, jacobi.StopMaxIterations, res.Stop)
	require.Equal(t, jacobi.DefaultMaxIter, res.Iterations)
}

func TestSolve_DoubleConvergesTightly(t *testing.T) {
	f := numeric.PlainField[float64]{}
	a, b := textbook[f64](t, f)
	res, err := jacobi.Solve(context.Background(), f, a, b, jacobi.WithTolerance[f64](1e-12))
	require.NoError(t, err)
	require.Equal(t, jacobi.StopConverged, res.Stop)
	require.Less(t, maxAbsErr(numeric.Float64s(res.X), jacobi.Solution()), 1e-6)

	r, err := jacobi.Residual(a, b, res.X)
	require.NoError(t, err)
	require.Less(t, numeric.MaxAbs(r).Float64(), 1e-6)
}

func TestSolve_StochasticStopsAtPrecisionLimit(t *testing.T) {
	sc := stochastic.Init(stochastic.WithSeed(11))
	f := stochastic.NewField[float32](sc)
	a, b := textbook[stochastic.Float[float32]](t, f)
	res, err := jacobi.Solve(context.Background(), f, a, b,
		jacobi.WithTolerance[stochastic.Float[float32]](1e-4))
	require.NoError(t, err)
	require.Equal(t, jacobi.StopPrecisionLimit, res.Stop)
	require.Less(t, res.Iterations, jacobi.DefaultMaxIter)
	require.True(t, res.Norm.IsZero())
}

func TestStopReason_String(t *testing.T) {
	require.Equal(t, "converged", jacobi.StopConverged.String())
	require.Equal(t, "precision limit", jacobi.StopPrecisionLimit.String())
	require.Equal(t, "max iterations", jacobi.StopMaxIterations.String())
	require.Equal(t, "StopReason(9)", jacobi.StopReason(9).String())
}
