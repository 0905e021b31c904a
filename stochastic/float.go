// SPDX-License-Identifier: MIT

package stochastic

import (
	"fmt"

	"github.com/katalvlaran/numlab/numeric"
)

// ZeroString is how a computational zero prints.
const ZeroString = "@.0"

// Float is a stochastic number: Samples randomly rounded copies of one
// computation in precision T, bound to the Context that rounds them.
// The zero value is an exact zero with no context; operations on it round to
// nearest and count nothing.
type Float[T numeric.Float] struct {
	x   [Samples]T
	ctx *Context
}

// Compile-time conformance.
var (
	_ numeric.Number[Float[float32]] = Float[float32]{}
	_ numeric.Number[Float[float64]] = Float[float64]{}
	_ numeric.Field[Float[float64]]  = Field[float64]{}
)

// Field builds constants bound to one Context.
type Field[T numeric.Float] struct {
	ctx *Context
}

// NewField returns the constant factory of precision T for ctx.
func NewField[T numeric.Float](ctx *Context) Field[T] { return Field[T]{ctx: ctx} }

// Const rounds v to T once; all samples start equal.
func (f Field[T]) Const(v float64) Float[T] {
	t := T(v)

	return Float[T]{x: [Samples]T{t, t, t}, ctx: f.ctx}
}

// Name is "float32_st" or "float64_st".
func (f Field[T]) Name() string {
	if numeric.IsDouble[T]() {
		return "float64_st"
	}

	return "float32_st"
}

// FromSamples builds a Float from explicit samples; mostly for tests.
func FromSamples[T numeric.Float](ctx *Context, s [Samples]T) Float[T] {
	return Float[T]{x: s, ctx: ctx}
}

// Samples returns a copy of the samples.
func (a Float[T]) Samples() [Samples]T { return a.x }

// context picks the context of whichever operand has one.
func (a Float[T]) context(b Float[T]) *Context {
	if a.ctx != nil {
		return a.ctx
	}

	return b.ctx
}

func (a Float[T]) Add(b Float[T]) Float[T] {
	c := a.context(b)
	out := Float[T]{ctx: c}
	for i := range out.x {
		r := T(a.x[i] + b.x[i])
		out.x[i] = randomRound(c, r, errSignAdd(a.x[i], b.x[i], r))
	}
	if c.detecting() {
		checkCancellation(c, a, b, out)
	}

	return out
}

func (a Float[T]) Sub(b Float[T]) Float[T] {
	return a.Add(b.Neg())
}

func (a Float[T]) Mul(b Float[T]) Float[T] {
	c := a.context(b)
	if c.detecting() && a.IsZero() && b.IsZero() && !a.exactZero() && !b.exactZero() {
		c.note(UnstableMultiplication)
	}
	out := Float[T]{ctx: c}
	for i := range out.x {
		r := T(a.x[i] * b.x[i])
		out.x[i] = randomRound(c, r, errSignMul(a.x[i], b.x[i], r))
	}

	return out
}

func (a Float[T]) Div(b Float[T]) Float[T] {
	c := a.context(b)
	if c.detecting() && b.IsZero() {
		c.note(UnstableDivision)
	}
	out := Float[T]{ctx: c}
	for i := range out.x {
		r := T(a.x[i] / b.x[i])
		out.x[i] = randomRound(c, r, errSignDiv(a.x[i], b.x[i], r))
	}

	return out
}

// Neg is exact.
func (a Float[T]) Neg() Float[T] {
	out := Float[T]{ctx: a.ctx}
	for i, v := range a.x {
		out.x[i] = -v
	}

	return out
}

// Abs is exact and applied per sample.
func (a Float[T]) Abs() Float[T] {
	out := Float[T]{ctx: a.ctx}
	for i, v := range a.x {
		if v < 0 {
			v = -v
		}
		out.x[i] = v
	}

	return out
}

// PowInt multiplies left to right; a non-significant base is reported once.
func (a Float[T]) PowInt(n int) Float[T] {
	if a.ctx.detecting() && n > 0 && a.IsZero() && !a.exactZero() {
		a.ctx.note(UnstablePower)
	}
	out := Float[T]{x: [Samples]T{1, 1, 1}, ctx: a.ctx}
	if n <= 0 {
		return out
	}
	out = a
	for i := 1; i < n; i++ {
		out = out.mulQuiet(a)
	}

	return out
}

// mulQuiet multiplies without instability bookkeeping (used inside PowInt).
func (a Float[T]) mulQuiet(b Float[T]) Float[T] {
	c := a.context(b)
	out := Float[T]{ctx: c}
	for i := range out.x {
		r := T(a.x[i] * b.x[i])
		out.x[i] = randomRound(c, r, errSignMul(a.x[i], b.x[i], r))
	}

	return out
}

// diff subtracts sample-wise with round-to-nearest and no bookkeeping.
func (a Float[T]) diff(b Float[T]) Float[T] {
	out := Float[T]{}
	for i := range out.x {
		out.x[i] = T(a.x[i] - b.x[i])
	}

	return out
}

// Eq reports whether a-b is a computational zero.
func (a Float[T]) Eq(b Float[T]) bool {
	d := a.diff(b)
	if d.exactZero() {
		return true
	}
	if d.IsZero() {
		a.context(b).note(UnstableBranching)
		return true
	}

	return false
}

// Lt reports mean(a) < mean(b) when a-b is significant.
func (a Float[T]) Lt(b Float[T]) bool {
	d := a.diff(b)
	if d.exactZero() {
		return false
	}
	if d.IsZero() {
		a.context(b).note(UnstableBranching)
		return false
	}

	return d.Float64() < 0
}

// IsZero reports a computational zero: no significant digit left.
func (a Float[T]) IsZero() bool { return a.Digits() == 0 }

func (a Float[T]) exactZero() bool {
	for _, v := range a.x {
		if v != 0 {
			return false
		}
	}

	return true
}

// Digits is the estimated number of exact significant decimal digits.
func (a Float[T]) Digits() int {
	limit := numeric.SingleDigits
	if numeric.IsDouble[T]() {
		limit = numeric.DoubleDigits
	}
	xs := a.float64s()

	return significantDigits(xs[:], limit)
}

// Float64 returns the sample mean.
func (a Float[T]) Float64() float64 {
	var s float64
	for _, v := range a.x {
		s += float64(v)
	}

	return s / Samples
}

// String prints the mean with its significant digits only, or "@.0".
func (a Float[T]) String() string {
	d := a.Digits()
	if d == 0 {
		return ZeroString
	}

	return fmt.Sprintf("%+.*e", d-1, a.Float64())
}

func (a Float[T]) float64s() [Samples]float64 {
	var out [Samples]float64
	for i, v := range a.x {
		out[i] = float64(v)
	}

	return out
}

// checkCancellation reports a sum that lost at least the context's
// cancellation level of digits relative to its less accurate operand.
func checkCancellation[T numeric.Float](c *Context, a, b, sum Float[T]) {
	if sum.exactZero() || a.exactZero() || b.exactZero() {
		return
	}
	da, db := a.Digits(), b.Digits()
	in := da
	if db < in {
		in = db
	}
	if in-sum.Digits() >= c.cancelLevel {
		c.note(Cancellation)
	}
}
