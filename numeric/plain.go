// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"unsafe"
)

// Decimal precision of the native types, in significant digits.
const (
	SingleDigits = 7
	DoubleDigits = 15
)

// Plain is a native float32 or float64 behind the Number surface.
// Every operation converts its result back to T explicitly, which forces one
// rounding per operation and forbids fused multiply-add contraction.
type Plain[T Float] struct {
	v T
}

// Compile-time conformance.
var (
	_ Number[Plain[float32]] = Plain[float32]{}
	_ Number[Plain[float64]] = Plain[float64]{}
	_ Field[Plain[float64]]  = PlainField[float64]{}
)

// Of wraps a native value.
func Of[T Float](v T) Plain[T] { return Plain[T]{v: v} }

// Value returns the native value.
func (p Plain[T]) Value() T { return p.v }

func (p Plain[T]) Add(q Plain[T]) Plain[T] { return Plain[T]{v: T(p.v + q.v)} }
func (p Plain[T]) Sub(q Plain[T]) Plain[T] { return Plain[T]{v: T(p.v - q.v)} }
func (p Plain[T]) Mul(q Plain[T]) Plain[T] { return Plain[T]{v: T(p.v * q.v)} }
func (p Plain[T]) Div(q Plain[T]) Plain[T] { return Plain[T]{v: T(p.v / q.v)} }
func (p Plain[T]) Neg() Plain[T]           { return Plain[T]{v: -p.v} }

// Abs clears the sign bit.
func (p Plain[T]) Abs() Plain[T] {
	if p.v < 0 {
		return Plain[T]{v: -p.v}
	}

	return p
}

// PowInt multiplies left to right: x^3 == (x*x)*x.
func (p Plain[T]) PowInt(n int) Plain[T] {
	out := Plain[T]{v: 1}
	for i := 0; i < n; i++ {
		out = out.Mul(p)
	}

	return out
}

func (p Plain[T]) Eq(q Plain[T]) bool { return p.v == q.v }
func (p Plain[T]) Lt(q Plain[T]) bool { return p.v < q.v }
func (p Plain[T]) IsZero() bool       { return p.v == 0 }
func (p Plain[T]) Float64() float64   { return float64(p.v) }

// Digits is the nominal precision of T; native arithmetic cannot tell how many
// of those digits are still exact.
func (p Plain[T]) Digits() int {
	if IsDouble[T]() {
		return DoubleDigits
	}

	return SingleDigits
}

// String prints every nominal digit with a sign: %+.6e for float32,
// %+.15e for float64.
func (p Plain[T]) String() string {
	if IsDouble[T]() {
		return fmt.Sprintf("%+.15e", float64(p.v))
	}

	return fmt.Sprintf("%+.6e", float64(p.v))
}

// PlainField builds Plain constants. The zero value is ready to use.
type PlainField[T Float] struct{}

// Const rounds v to T.
func (PlainField[T]) Const(v float64) Plain[T] { return Plain[T]{v: T(v)} }

// Name is "float64" or "float32".
func (PlainField[T]) Name() string {
	if IsDouble[T]() {
		return "float64"
	}

	return "float32"
}

// IsDouble reports whether T is 64 bits wide.
func IsDouble[T Float]() bool {
	var z T

	return unsafe.Sizeof(z) == 8
}
