// SPDX-License-Identifier: MIT

package hilbert

import (
	"errors"
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numeric"
)

// ErrBadOrder indicates an order below one.
var ErrBadOrder = errors.New("hilbert: order must be >= 1")

// DefaultOrder is the textbook matrix size.
const DefaultOrder = 11

// Result holds the determinant and every pivot in elimination order.
type Result[E any] struct {
	Det    E
	Pivots []E
}

// Options configures Determinant.
type Options[E any] struct {
	OnPivot func(i int, pivot E) // called for every pivot, including the last
}

// Option is a functional option for Determinant.
type Option[E any] func(*Options[E])

// WithOnPivot registers a hook called with each pivot before it is used.
func WithOnPivot[E any](fn func(i int, pivot E)) Option[E] {
	return func(o *Options[E]) { o.OnPivot = fn }
}

// Determinant builds H_n in E and returns the product of its pivots.
//
// Implementation:
//   - Stage 1: lift matrix.NewHilbert(n) into E (each entry rounded once).
//   - Stage 2: for i < n-1: det *= a[i][i]; scale row i right of the diagonal
//     by the reciprocal 1/a[i][i]; subtract a[j][i] times row i from each
//     row j > i (columns i+1..n-1).
//   - Stage 3: det *= a[n-1][n-1].
//
// No pivoting is done: a zero pivot propagates as Inf/NaN in native
// arithmetic and as an unstable division under stochastic arithmetic.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant[E numeric.Number[E]](f numeric.Field[E], n int, opts ...Option[E]) (*Result[E], error) {
	var o Options[E]
	for _, opt := range opts {
		opt(&o)
	}
	if n < 1 {
		return nil, ErrBadOrder
	}
	h, err := matrix.NewHilbert(n)
	if err != nil {
		return nil, fmt.Errorf("hilbert: %w", err)
	}
	a, err := numeric.LiftDense(f, h)
	if err != nil {
		return nil, fmt.Errorf("hilbert: %w", err)
	}

	one := f.Const(1)
	res := &Result[E]{Det: one, Pivots: make([]E, 0, n)}
	var i, j, k int
	var aux E
	for i = 0; i < n-1; i++ {
		foldPivot(res, &o, i, a[i][i])
		aux = one.Div(a[i][i])
		for j = i + 1; j < n; j++ {
			a[i][j] = a[i][j].Mul(aux)
		}
		for j = i + 1; j < n; j++ {
			aux = a[j][i]
			for k = i + 1; k < n; k++ {
				a[j][k] = a[j][k].Sub(aux.Mul(a[i][k]))
			}
		}
	}
	foldPivot(res, &o, n-1, a[n-1][n-1])

	return res, nil
}

// foldPivot records p and folds it into the determinant.
func foldPivot[E numeric.Number[E]](r *Result[E], o *Options[E], i int, p E) {
	if o.OnPivot != nil {
		o.OnPivot(i, p)
	}
	r.Pivots = append(r.Pivots, p)
	r.Det = r.Det.Mul(p)
}

// Exact returns det(H_n) as an exact rational, or nil for n < 1.
func Exact(n int) *big.Rat {
	if n < 1 {
		return nil
	}
	cn := superfactorial(n)
	num := new(big.Int).Exp(cn, big.NewInt(4), nil)

	return new(big.Rat).SetFrac(num, superfactorial(2*n))
}

// superfactorial returns 1! * 2! * ... * (m-1)!.
func superfactorial(m int) *big.Int {
	out := big.NewInt(1)
	fact := big.NewInt(1)
	for i := int64(1); i < int64(m); i++ {
		fact.Mul(fact, big.NewInt(i))
		out.Mul(out, fact)
	}

	return out
}

// Reference returns det(H_n) computed by gonum (LU with partial pivoting).
func Reference(n int) (float64, error) {
	if n < 1 {
		return 0, ErrBadOrder
	}
	h, err := matrix.NewHilbert(n)
	if err != nil {
		return 0, fmt.Errorf("hilbert: Reference: %w", err)
	}
	g, err := matrix.ToGonum(h)
	if err != nil {
		return 0, fmt.Errorf("hilbert: Reference: %w", err)
	}

	return mat.Det(g), nil
}

// LUDeterminant returns det(H_n) from matrix.Det (Doolittle LU, no pivoting).
func LUDeterminant(n int) (float64, error) {
	if n < 1 {
		return 0, ErrBadOrder
	}
	h, err := matrix.NewHilbert(n)
	if err != nil {
		return 0, fmt.Errorf("hilbert: LUDeterminant: %w", err)
	}
	d, err := matrix.Det(h)
	if err != nil {
		return 0, fmt.Errorf("hilbert: LUDeterminant: %w", err)
	}

	return d, nil
}
