// SPDX-License-Identifier: MIT

package newton

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/numeric"
)

// Roots of the textbook polynomial.
const (
	DoubleRoot = 3.0 / 7.0
	SimpleRoot = -5.0 / 3.0
)

// Polynomial holds coefficients in ascending order: p[k] multiplies x^k.
type Polynomial []float64

// Textbook returns 1.47x^3 + 1.19x^2 - 1.83x + 0.45.
func Textbook() Polynomial { return Polynomial{0.45, -1.83, 1.19, 1.47} }

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for k := len(p) - 1; k >= 0; k-- {
		if p[k] != 0 {
			return k
		}
	}

	return -1
}

// Derivative returns p'.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return Polynomial{}
	}
	d := make(Polynomial, len(p)-1)
	for k := 1; k < len(p); k++ {
		d[k-1] = float64(k) * p[k]
	}

	return d
}

// String renders p from the highest degree down, e.g. "1.47x^3+1.19x^2-1.83x+0.45".
func (p Polynomial) String() string {
	var b strings.Builder
	for k := len(p) - 1; k >= 0; k-- {
		c := p[k]
		if c == 0 {
			continue
		}
		if b.Len() > 0 && c > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch {
		case k == 1:
			b.WriteByte('x')
		case k > 1:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(k))
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// Eval evaluates p at x term by term from the highest degree down:
// c_n*x^n + ... + c_1*x + c_0, each power formed by PowInt, and the terms
// summed left to right. Zero coefficients are skipped.
func Eval[E numeric.Number[E]](f numeric.Field[E], p Polynomial, x E) E {
	var acc, term E
	started := false
	for k := len(p) - 1; k >= 0; k-- {
		c := p[k]
		if c == 0 {
			continue
		}
		switch k {
		case 0:
			term = f.Const(c)
		case 1:
			term = f.Const(c).Mul(x)
		default:
			term = f.Const(c).Mul(x.PowInt(k))
		}
		if !started {
			acc, started = term, true
			continue
		}
		acc = acc.Add(term)
	}
	if !started {
		return f.Const(0)
	}

	return acc
}
