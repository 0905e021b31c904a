// SPDX-License-Identifier: MIT

package newton

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/numeric"
)

// Sentinel errors.
var (
	// ErrBadTolerance indicates a tolerance that is not strictly positive.
	ErrBadTolerance = errors.New("newton: tolerance must be positive")

	// ErrBadMaxIter indicates an iteration cap below one.
	ErrBadMaxIter = errors.New("newton: max iterations must be >= 1")

	// ErrZeroPolynomial indicates a polynomial of degree < 1.
	ErrZeroPolynomial = errors.New("newton: polynomial must have degree >= 1")
)

// Defaults of the textbook run.
const (
	DefaultStart     = 0.5
	DefaultTolerance = 1e-12
	DefaultMaxIter   = 100
)

// StopReason tells why Solve returned.
type StopReason int

const (
	// StopMaxIterations: the iteration cap was reached.
	StopMaxIterations StopReason = iota
	// StopConverged: |x(i) - x(i-1)| fell below the tolerance.
	StopConverged
	// StopStationary: x(i) equals x(i-1) under E's comparison semantics.
	StopStationary
)

// String returns a short label for r.
func (r StopReason) String() string {
	switch r {
	case StopMaxIterations:
		return "max iterations"
	case StopConverged:
		return "converged"
	case StopStationary:
		return "stationary"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result is the outcome of Solve.
type Result[E any] struct {
	Root       E          // last iterate
	Diff       E          // |x(i) - x(i-1)| of the last step
	Iterations int        // steps performed
	Stop       StopReason // why the loop ended
}

// Options configures Solve.
//
// Start       – x0. Default 0.5.
// Tolerance   – stop when the step is below it (> 0). Default 1e-12.
// MaxIter     – step cap (>= 1). Default 100.
// StopOnEqual – stop when consecutive iterates compare equal. Default true.
// OnStep      – optional hook called after each step with the new iterate.
type Options[E any] struct {
	Start       float64
	Tolerance   float64
	MaxIter     int
	StopOnEqual bool
	OnStep      func(i int, x, diff E)
}

// Option is a functional option for Solve.
type Option[E any] func(*Options[E])

// DefaultOptions returns the textbook configuration.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Start:       DefaultStart,
		Tolerance:   DefaultTolerance,
		MaxIter:     DefaultMaxIter,
		StopOnEqual: true,
	}
}

// WithStart sets x0.
func WithStart[E any](x0 float64) Option[E] {
	return func(o *Options[E]) { o.Start = x0 }
}

// WithTolerance sets the step tolerance.
func WithTolerance[E any](eps float64) Option[E] {
	return func(o *Options[E]) { o.Tolerance = eps }
}

// WithMaxIter sets the step cap.
func WithMaxIter[E any](n int) Option[E] {
	return func(o *Options[E]) { o.MaxIter = n }
}

// WithStopOnEqual enables or disables the x == y stop.
func WithStopOnEqual[E any](on bool) Option[E] {
	return func(o *Options[E]) { o.StopOnEqual = on }
}

// WithOnStep registers the per-step hook.
func WithOnStep[E any](fn func(i int, x, diff E)) Option[E] {
	return func(o *Options[E]) { o.OnStep = fn }
}

// Solve runs Newton's method y = x - p(x)/p'(x) from Options.Start.
//
// Implementation:
//   - Stage 1: validate options and the polynomial, derive p'.
//   - Stage 2: per step, x = y, y = x - p(x)/p'(x), diff = |x - y|.
//   - Stage 3: stop on diff < tolerance, then on x == y when StopOnEqual is
//     set, else continue up to MaxIter steps.
//
// A vanishing derivative is not an error: the step becomes Inf or NaN in
// native arithmetic and is counted as an unstable division under stochastic
// arithmetic. ctx is checked once per step.
func Solve[E numeric.Number[E]](ctx context.Context, f numeric.Field[E], p Polynomial, opts ...Option[E]) (*Result[E], error) {
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Tolerance > 0) {
		return nil, ErrBadTolerance
	}
	if o.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	if p.Degree() < 1 {
		return nil, ErrZeroPolynomial
	}
	dp := p.Derivative()

	eps := f.Const(o.Tolerance)
	res := &Result[E]{Root: f.Const(o.Start), Stop: StopMaxIterations}
	var x E
	for i := 1; i <= o.MaxIter; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("newton: step %d: %w", i, err)
		}
		x = res.Root
		res.Root = x.Sub(Eval(f, p, x).Div(Eval(f, dp, x)))
		res.Diff = x.Sub(res.Root).Abs()
		res.Iterations = i
		if o.OnStep != nil {
			o.OnStep(i, res.Root, res.Diff)
		}

		if res.Diff.Lt(eps) {
			res.Stop = StopConverged
			break
		}
		if o.StopOnEqual && x.Eq(res.Root) {
			res.Stop = StopStationary
			break
		}
	}

	return res, nil
}
