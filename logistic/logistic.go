// SPDX-License-Identifier: MIT

package logistic

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numlab/numeric"
)

// Step evaluates one application of the map with formula fm.
// Operations are evaluated left to right exactly as the formula is written.
func Step[E numeric.Number[E]](f numeric.Field[E], fm Formula, a, x E) (E, error) {
	switch fm {
	case Product:
		return a.Mul(x).Mul(f.Const(1).Sub(x)), nil
	case Centered:
		return a.Mul(f.Const(0.25)).Sub(a.Mul(x.Sub(f.Const(0.5)).PowInt(2))), nil
	default:
		var zero E
		return zero, fmt.Errorf("logistic: %v: %w", fm, ErrUnknownFormula)
	}
}

// Iterate applies the map up to MaxIter times starting from Options.Start.
//
// With StagnationStop (the default) the loop also ends as soon as x is a zero
// (StopLostDigits) or equals the previous iterate (StopStagnated) under E's
// comparison semantics. Native floats practically never trigger either stop
// on a chaotic orbit; stochastic numbers do once the digits are gone.
// ctx is checked once per iteration.
func Iterate[E numeric.Number[E]](ctx context.Context, f numeric.Field[E], fm Formula, opts ...Option[E]) (*Result[E], error) {
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	if o.ReportEvery < 0 {
		return nil, ErrBadReportEvery
	}
	if fm != Product && fm != Centered {
		return nil, fmt.Errorf("logistic: %v: %w", fm, ErrUnknownFormula)
	}

	a := f.Const(o.Rate)
	res := &Result[E]{X: f.Const(o.Start), Stop: StopMaxIterations}
	var prev E
	var err error
	for i := 1; i <= o.MaxIter; i++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("logistic: iteration %d: %w", i, err)
		}
		prev = res.X
		if res.X, err = Step(f, fm, a, prev); err != nil {
			return nil, err
		}
		res.Iterations = i

		if o.OnReport != nil && o.ReportEvery > 0 && i%o.ReportEvery == 0 {
			o.OnReport(i, res.X)
		}
		if !o.StagnationStop {
			continue
		}
		if res.X.IsZero() {
			res.Stop = StopLostDigits
			break
		}
		if res.X.Eq(prev) {
			res.Stop = StopStagnated
			break
		}
	}

	return res, nil
}
