// Package stochastic implements discrete stochastic arithmetic for the
// numlab exercises.
//
// 🚀 What is it?
//
//	Every stochastic number carries three samples of the same computation.
//	After each arithmetic operation every sample is rounded up or down at
//	random (the exact rounding error is recovered with error-free
//	transformations, so the choice is a true directed rounding). Where the
//	samples agree the digits are exact; where they scatter they are noise.
//	Student's t-test over the samples gives the number of exact significant
//	decimal digits of each result (CESTAC method).
//
// ✨ Surface:
//   - Init(opts...) creates a Context (random source + instability counters).
//   - NewField[T](ctx).Const(v) creates constants; Float[T] implements
//     numeric.Number[Float[T]], so any numlab exercise runs on it unchanged.
//   - Float.String prints only the significant digits, or "@.0" for a
//     computational zero (a value without any significant digit).
//   - Context.End() returns the Report of numerical instabilities detected
//     during the run: unstable divisions, multiplications, powers and
//     branchings, and sudden cancellations.
//
// ⚙️ Usage:
//
//	ctx := stochastic.Init(stochastic.WithSeed(42))
//	f := stochastic.NewField[float64](ctx)
//	x := f.Const(1).Div(f.Const(3)).Mul(f.Const(3)).Sub(f.Const(1))
//	fmt.Println(x)            // @.0
//	fmt.Println(ctx.End())    // instability summary
//
// A Context is not safe for concurrent use; give each goroutine its own.
package stochastic
