// SPDX-License-Identifier: MIT

package stochastic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/stochastic"
)

// TestExactOperationsKeepAllDigits checks that exact results never scatter.
func TestExactOperationsKeepAllDigits(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(7))
	f := stochastic.NewField[float64](ctx)

	x := f.Const(0.5).Add(f.Const(0.25)).Mul(f.Const(4))
	require.Equal(t, [3]float64{3, 3, 3}, x.Samples())
	require.Equal(t, 15, x.Digits())
	require.Equal(t, "+3.00000000000000e+00", x.String())
	require.Zero(t, ctx.End().Total())
}

// TestRandomRoundingBracketsTheExactResult checks each sample is RD or RU of 1/3.
func TestRandomRoundingBracketsTheExactResult(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(11))
	f := stochastic.NewField[float64](ctx)

	third := f.Const(1).Div(f.Const(3))
	down := 1.0 / 3.0 // nearest rounding of 1/3 lies below it
	up := math.Nextafter(down, 1)
	for _, s := range third.Samples() {
		require.Contains(t, []float64{down, up}, s)
	}
	require.GreaterOrEqual(t, third.Digits(), 14)
}

// TestSinglePrecisionSamplesStayWithinOneUlp covers the float32 path.
func TestSinglePrecisionSamplesStayWithinOneUlp(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(3))
	f := stochastic.NewField[float32](ctx)

	sum := f.Const(0.1).Add(f.Const(0.2))
	nearest := float32(0.1) + float32(0.2)
	for _, s := range sum.Samples() {
		require.LessOrEqual(t, math.Abs(float64(s-nearest)), float64(math.Nextafter32(nearest, 1)-nearest))
	}
	require.Equal(t, "float32_st", f.Name())
	require.LessOrEqual(t, sum.Digits(), 7)
}

// TestCancellationToComputationalZero checks that 1/3*3-1 has no significant digit.
func TestCancellationToComputationalZero(t *testing.T) {
	zeros := 0
	for seed := uint64(1); seed <= 20; seed++ {
		ctx := stochastic.Init(stochastic.WithSeed(seed))
		f := stochastic.NewField[float64](ctx)
		r := f.Const(1).Div(f.Const(3)).Mul(f.Const(3)).Sub(f.Const(1))
		if r.IsZero() {
			zeros++
		}
	}
	// A run is misjudged only when all three samples land on the same
	// non-zero neighbour, which has probability 1/32.
	require.GreaterOrEqual(t, zeros, 15)
}

func TestDigitsFromExplicitSamples(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(1))

	same := stochastic.FromSamples(ctx, [3]float64{1, 1, 1})
	require.Equal(t, 15, same.Digits())

	spread := stochastic.FromSamples(ctx, [3]float64{1, 1 + 1e-10, 1 - 1e-10})
	require.Equal(t, 9, spread.Digits())
	require.Equal(t, "+1.00000000e+00", spread.String())

	// Less than one exact digit (0 < C < 1) already counts as a zero.
	fuzzy := stochastic.FromSamples(ctx, [3]float64{0.8, 1, 1.2})
	require.Zero(t, fuzzy.Digits())
	require.True(t, fuzzy.IsZero())

	oneDigit := stochastic.FromSamples(ctx, [3]float64{0.99, 1, 1.01})
	require.Equal(t, 1, oneDigit.Digits())
	require.False(t, oneDigit.IsZero())

	noise := stochastic.FromSamples(ctx, [3]float64{1, -1, 0})
	require.True(t, noise.IsZero())
	require.Equal(t, stochastic.ZeroString, noise.String())
}

// TestCancellationIsCounted subtracts 1 from a value known to about 8 digits:
// every one of them is lost.
func TestCancellationIsCounted(t *testing.T) {
	samples := [3]float64{1.000000001, 1.000000002, 1.000000003}

	ctx := stochastic.Init(stochastic.WithSeed(5))
	x := stochastic.FromSamples(ctx, samples)
	require.Equal(t, 8, x.Digits())
	d := x.Sub(stochastic.NewField[float64](ctx).Const(1))
	require.True(t, d.IsZero())
	rep := ctx.End()
	require.EqualValues(t, 1, rep.Count(stochastic.Cancellation))
	require.EqualValues(t, 1, rep.Total())

	// A level above the loss stays silent.
	ctx = stochastic.Init(stochastic.WithSeed(5), stochastic.WithCancellationLevel(9))
	x = stochastic.FromSamples(ctx, samples)
	x.Sub(stochastic.NewField[float64](ctx).Const(1))
	require.Zero(t, ctx.End().Count(stochastic.Cancellation))
}

func TestComparisons(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(5))
	f := stochastic.NewField[float64](ctx)

	one, two := f.Const(1), f.Const(2)
	require.True(t, one.Lt(two))
	require.False(t, two.Lt(one))
	require.False(t, one.Eq(two))
	require.True(t, one.Eq(f.Const(1)))
	require.Zero(t, ctx.Report().Count(stochastic.UnstableBranching))

	// Operands that differ only in noise compare equal, and the branch is unstable.
	fuzzy := stochastic.FromSamples(ctx, [3]float64{1, 1 + 0x1p-52, 1})
	require.True(t, fuzzy.Eq(one))
	require.False(t, fuzzy.Lt(one))
	require.Equal(t, uint64(2), ctx.Report().Count(stochastic.UnstableBranching))
}

func TestInstabilityReport(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(9))
	f := stochastic.NewField[float64](ctx)
	noise := stochastic.FromSamples(ctx, [3]float64{1e-20, -1e-20, 0})

	_ = f.Const(1).Div(noise)
	_ = noise.Mul(noise)
	_ = noise.PowInt(2)

	rep := ctx.End()
	require.Equal(t, uint64(1), rep.Count(stochastic.UnstableDivision))
	require.Equal(t, uint64(1), rep.Count(stochastic.UnstableMultiplication))
	require.Equal(t, uint64(1), rep.Count(stochastic.UnstablePower))
	require.Equal(t, uint64(3), rep.Total())
	require.Contains(t, rep.String(), "There are 3 numerical instabilities")
	require.Contains(t, rep.String(), "1 unstable division(s)")

	// Detection stops once the run has ended.
	_ = f.Const(1).Div(noise)
	require.Equal(t, uint64(3), ctx.Report().Total())
}

func TestWithoutInstabilityDetection(t *testing.T) {
	ctx := stochastic.Init(stochastic.WithSeed(2), stochastic.WithoutInstabilityDetection())
	f := stochastic.NewField[float64](ctx)
	noise := stochastic.FromSamples(ctx, [3]float64{1e-20, -1e-20, 0})

	_ = f.Const(1).Div(noise)
	require.Zero(t, ctx.End().Total())
	require.Contains(t, ctx.End().String(), "No instability detected")
}

func TestSeedIsReplayable(t *testing.T) {
	run := func() [3]float64 {
		ctx := stochastic.Init(stochastic.WithSeed(1234))
		f := stochastic.NewField[float64](ctx)
		x := f.Const(0.1)
		for i := 0; i < 10; i++ {
			x = x.Mul(f.Const(1.1)).Add(f.Const(0.3))
		}
		return x.Samples()
	}
	require.Equal(t, run(), run())
	require.Equal(t, uint64(1234), stochastic.Init(stochastic.WithSeed(1234)).Seed())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "unstable division(s)", stochastic.UnstableDivision.String())
	require.Equal(t, "Kind(42)", stochastic.Kind(42).String())
	require.Panics(t, func() { stochastic.WithCancellationLevel(0) })
}
