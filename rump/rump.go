// SPDX-License-Identifier: MIT

package rump

import (
	"math/big"

	"github.com/katalvlaran/numlab/numeric"
)

// Point returns the textbook evaluation point (77617, 33096).
func Point() (x, y float64) { return 77617, 33096 }

// Evaluate computes f(x, y) with every power written out as a left-to-right
// product, so c*y^6 is ((((c*y)*y)*y)*y)*y)*y, and the four terms summed left
// to right.
func Evaluate[E numeric.Number[E]](f numeric.Field[E], x, y E) E {
	t1 := chain(f.Const(333.75), y, 6)

	inner := chain(f.Const(11), x, 2).Mul(y).Mul(y)
	inner = inner.Sub(chain(y, y, 5))
	inner = inner.Sub(chain(f.Const(121), y, 4))
	inner = inner.Sub(f.Const(2))
	t2 := x.Mul(x).Mul(inner)

	t3 := chain(f.Const(5.5), y, 8)
	t4 := x.Div(f.Const(2).Mul(y))

	return t1.Add(t2).Add(t3).Add(t4)
}

// chain returns c*v*v*...*v with k factors of v, multiplied left to right.
func chain[E numeric.Number[E]](c, v E, k int) E {
	for i := 0; i < k; i++ {
		c = c.Mul(v)
	}

	return c
}

// Exact returns f(x, y) in exact rational arithmetic.
func Exact(x, y *big.Rat) *big.Rat {
	pow := func(v *big.Rat, k int) *big.Rat {
		out := big.NewRat(1, 1)
		for i := 0; i < k; i++ {
			out.Mul(out, v)
		}
		return out
	}
	mul := func(vs ...*big.Rat) *big.Rat {
		out := big.NewRat(1, 1)
		for _, v := range vs {
			out.Mul(out, v)
		}
		return out
	}
	x2, y2 := pow(x, 2), pow(y, 2)
	y4, y6, y8 := pow(y, 4), pow(y, 6), pow(y, 8)

	inner := mul(big.NewRat(11, 1), x2, y2)
	inner.Sub(inner, y6)
	inner.Sub(inner, mul(big.NewRat(121, 1), y4))
	inner.Sub(inner, big.NewRat(2, 1))

	out := mul(big.NewRat(1335, 4), y6)
	out.Add(out, mul(x2, inner))
	out.Add(out, mul(big.NewRat(11, 2), y8))
	out.Add(out, new(big.Rat).Quo(x, mul(big.NewRat(2, 1), y)))

	return out
}

// ExactAtPoint returns Exact at Point: -54767/66192.
func ExactAtPoint() *big.Rat {
	x, y := Point()
	return Exact(new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y))
}
