// SPDX-License-Identifier: MIT

package hilbert_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/hilbert"
	"github.com/katalvlaran/numlab/numeric"
	"github.com/katalvlaran/numlab/stochastic"
)

type f64 = numeric.Plain[float64]

// exactByElimination computes det(H_n) with exact rational elimination.
func exactByElimination(n int) *big.Rat {
	a := make([][]*big.Rat, n)
	for i := range a {
		a[i] = make([]*big.Rat, n)
		for j := range a[i] {
			a[i][j] = big.NewRat(1, int64(i+j+1))
		}
	}
	det := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		det.Mul(det, a[i][i])
		for j := i + 1; j < n; j++ {
			m := new(big.Rat).Quo(a[j][i], a[i][i])
			for k := i; k < n; k++ {
				a[j][k].Sub(a[j][k], new(big.Rat).Mul(m, a[i][k]))
			}
		}
	}

	return det
}

func TestExact_ClosedFormMatchesElimination(t *testing.T) {
	require.Zero(t, hilbert.Exact(4).Cmp(big.NewRat(1, 6048000)))
	for n := 1; n <= 8; n++ {
		require.Zero(t, hilbert.Exact(n).Cmp(exactByElimination(n)), "n=%d", n)
	}
	require.Nil(t, hilbert.Exact(0))
}

func TestDeterminant_Validation(t *testing.T) {
	_, err := hilbert.Determinant[f64](numeric.PlainField[float64]{}, 0)
	require.ErrorIs(t, err, hilbert.ErrBadOrder)
	_, err = hilbert.Reference(-1)
	require.ErrorIs(t, err, hilbert.ErrBadOrder)
	_, err = hilbert.LUDeterminant(0)
	require.ErrorIs(t, err, hilbert.ErrBadOrder)
}

func TestDeterminant_Order4(t *testing.T) {
	res, err := hilbert.Determinant[f64](numeric.PlainField[float64]{}, 4)
	require.NoError(t, err)
	require.InEpsilon(t, 1.0/6048000, res.Det.Float64(), 1e-10)
	require.Len(t, res.Pivots, 4)
	require.Equal(t, 1.0, res.Pivots[0].Float64())
}

// Every pivot reaches the hook in order and folds into Det.
func TestDeterminant_PivotHookAndProduct(t *testing.T) {
	f := numeric.PlainField[float64]{}
	var seen []int
	res, err := hilbert.Determinant(f, 5, hilbert.WithOnPivot(func(i int, _ f64) {
		seen = append(seen, i)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, seen)

	prod := f.Const(1)
	for _, p := range res.Pivots {
		prod = prod.Mul(p)
	}
	require.Equal(t, prod.Float64(), res.Det.Float64())
}

func TestDeterminant_Order11(t *testing.T) {
	var seen []int
	res, err := hilbert.Determinant(numeric.PlainField[float64]{}, hilbert.DefaultOrder,
		hilbert.WithOnPivot(func(i int, _ f64) { seen = append(seen, i) }))
	require.NoError(t, err)
	require.Len(t, seen, hilbert.DefaultOrder)
	require.Equal(t, 0, seen[0])
	require.Equal(t, hilbert.DefaultOrder-1, seen[len(seen)-1])

	exact, _ := hilbert.Exact(hilbert.DefaultOrder).Float64()
	got := res.Det.Float64()
	require.Greater(t, got, 0.0)
	require.InEpsilon(t, exact, got, 1e-2)
	// ... but far from the 15 digits a well-conditioned product would keep.
	require.NotEqual(t, exact, got)
}

func TestReferences(t *testing.T) {
	exact, _ := hilbert.Exact(4).Float64()

	g, err := hilbert.Reference(4)
	require.NoError(t, err)
	require.InEpsilon(t, exact, g, 1e-9)

	lu, err := hilbert.LUDeterminant(4)
	require.NoError(t, err)
	require.InEpsilon(t, exact, lu, 1e-9)
}

func TestDeterminant_StochasticEstimatesFewDigits(t *testing.T) {
	sc := stochastic.Init(stochastic.WithSeed(4))
	f := stochastic.NewField[float64](sc)
	res, err := hilbert.Determinant[stochastic.Float[float64]](f, hilbert.DefaultOrder)
	require.NoError(t, err)

	d := res.Det.Digits()
	require.Greater(t, d, 0)
	require.Less(t, d, 10)
	require.Equal(t, numeric.DoubleDigits, res.Pivots[0].Digits())

	exact, _ := hilbert.Exact(hilbert.DefaultOrder).Float64()
	require.InEpsilon(t, exact, res.Det.Float64(), 1e-1)
}
