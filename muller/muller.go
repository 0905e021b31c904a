// SPDX-License-Identifier: MIT

package muller

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/numlab/numeric"
)

// ErrBadLast indicates a last index below 2.
var ErrBadLast = errors.New("muller: last index must be >= 2")

// DefaultLast is the index of the last printed term.
const DefaultLast = 30

// Term is one computed element of the sequence.
type Term[E any] struct {
	N int // index n
	U E   // u(n)
}

// Options configures Sequence.
//
// Last   – index of the last computed term (>= 2). Default 30.
// OnTerm – optional hook called for every term as soon as it is computed.
type Options[E any] struct {
	Last   int
	OnTerm func(t Term[E])
}

// Option is a functional option for Sequence.
type Option[E any] func(*Options[E])

// WithLast sets the index of the last computed term.
func WithLast[E any](n int) Option[E] {
	return func(o *Options[E]) { o.Last = n }
}

// WithOnTerm registers a per-term hook.
func WithOnTerm[E any](fn func(t Term[E])) Option[E] {
	return func(o *Options[E]) { o.OnTerm = fn }
}

// Sequence returns the terms u(2)..u(Last) computed in E.
// u(0) and u(1) enter E as the float64 constants 5.5 and 61./11.
//
// Complexity: Time O(Last), Space O(Last).
func Sequence[E numeric.Number[E]](f numeric.Field[E], opts ...Option[E]) ([]Term[E], error) {
	o := Options[E]{Last: DefaultLast}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Last < 2 {
		return nil, ErrBadLast
	}

	c111, c1130, c3000 := f.Const(111), f.Const(1130), f.Const(3000)
	a := f.Const(5.5)
	b := f.Const(61.0 / 11.0)
	out := make([]Term[E], 0, o.Last-1)
	var c E
	for n := 2; n <= o.Last; n++ {
		c = b
		b = c111.Sub(c1130.Div(b)).Add(c3000.Div(a.Mul(b)))
		a = c

		t := Term[E]{N: n, U: b}
		out = append(out, t)
		if o.OnTerm != nil {
			o.OnTerm(t)
		}
	}

	return out, nil
}

// Exact returns u(n) = (6^(n+1) + 5^(n+1)) / (6^n + 5^n) for n >= 0.
func Exact(n int) *big.Rat {
	if n < 0 {
		return nil
	}
	six, five := big.NewInt(6), big.NewInt(5)
	pow := func(b *big.Int, e int) *big.Int { return new(big.Int).Exp(b, big.NewInt(int64(e)), nil) }

	num := new(big.Int).Add(pow(six, n+1), pow(five, n+1))
	den := new(big.Int).Add(pow(six, n), pow(five, n))

	return new(big.Rat).SetFrac(num, den)
}

// Limit is the exact limit of the sequence.
const Limit = 6.0

// FixedPoint is the limit every floating-point run reaches.
const FixedPoint = 100.0
