// SPDX-License-Identifier: MIT

package rump_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/numeric"
	"github.com/katalvlaran/numlab/rump"
	"github.com/katalvlaran/numlab/stochastic"
)

func evalAtPoint[E numeric.Number[E]](f numeric.Field[E]) E {
	x, y := rump.Point()
	return rump.Evaluate(f, f.Const(x), f.Const(y))
}

func TestExactAtPoint(t *testing.T) {
	got := rump.ExactAtPoint()
	require.Zero(t, got.Cmp(big.NewRat(-54767, 66192)))
	v, _ := got.Float64()
	require.InDelta(t, -0.827396059946821, v, 1e-15)
}

func TestExact_SmallArguments(t *testing.T) {
	// f(1, 1) = 333.75 + (11 - 1 - 121 - 2) + 5.5 + 0.5 = 226.75
	got := rump.Exact(big.NewRat(1, 1), big.NewRat(1, 1))
	require.Zero(t, got.Cmp(big.NewRat(907, 4)))

	f := numeric.PlainField[float64]{}
	require.Equal(t, 226.75, rump.Evaluate(f, f.Const(1), f.Const(1)).Float64())
}

func TestEvaluate_DoubleIsConfidentlyWrong(t *testing.T) {
	got := evalAtPoint[numeric.Plain[float64]](numeric.PlainField[float64]{}).Float64()
	require.InDelta(t, 1.1726039400531787, got, 1e-12)
	require.Greater(t, math.Abs(got-(-0.827396059946821)), 1.0)
}

func TestEvaluate_SingleIsWildlyWrong(t *testing.T) {
	got := evalAtPoint[numeric.Plain[float32]](numeric.PlainField[float32]{}).Float64()
	require.Greater(t, math.Abs(got), 1e20)
}

func TestEvaluate_StochasticReportsNoSignificantDigit(t *testing.T) {
	zeros := 0
	const runs = 10
	for seed := uint64(1); seed <= runs; seed++ {
		sc := stochastic.Init(stochastic.WithSeed(seed))
		res := evalAtPoint[stochastic.Float[float32]](stochastic.NewField[float32](sc))
		if res.IsZero() {
			zeros++
			require.Equal(t, stochastic.ZeroString, res.String())
		}
		sc.End()
	}
	require.GreaterOrEqual(t, zeros, runs/2)
}
