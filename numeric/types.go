// SPDX-License-Identifier: MIT

package numeric

// Float is the set of native floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the arithmetic surface of a scalar type E.
// Operations never mutate the receiver.
type Number[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Div(E) E
	Neg() E
	Abs() E

	// PowInt raises the value to a non-negative integer power by repeated
	// multiplication; PowInt(0) is one.
	PowInt(n int) E

	// Eq and Lt are the type's own comparison semantics: exact for Plain,
	// significance-aware for stochastic numbers.
	Eq(E) bool
	Lt(E) bool

	// IsZero reports an exact zero (Plain) or a computational zero
	// (stochastic: no significant digit left).
	IsZero() bool

	// Digits is the count of significant decimal digits the value carries.
	Digits() int

	Float64() float64
	String() string
}

// Field creates constants of E from float64 literals.
type Field[E any] interface {
	Const(v float64) E
	Name() string
}

// Gt reports b < a under E's comparison semantics.
func Gt[E Number[E]](a, b E) bool { return b.Lt(a) }
