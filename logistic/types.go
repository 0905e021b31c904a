// SPDX-License-Identifier: MIT

package logistic

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadMaxIter indicates an iteration cap below one.
	ErrBadMaxIter = errors.New("logistic: max iterations must be >= 1")

	// ErrBadReportEvery indicates a negative report period.
	ErrBadReportEvery = errors.New("logistic: report period must be >= 0")

	// ErrUnknownFormula indicates a Formula value outside the declared set.
	ErrUnknownFormula = errors.New("logistic: unknown formula")
)

// Defaults of the textbook run.
const (
	DefaultRate        = 3.6
	DefaultStart       = 0.6
	DefaultMaxIter     = 200
	DefaultReportEvery = 50
)

// Formula selects how one step of the map is evaluated.
type Formula int

const (
	// Product evaluates a*x*(1-x).
	Product Formula = iota
	// Centered evaluates a*0.25 - a*(x-0.5)^2.
	Centered
)

// Formulas lists every formula in presentation order.
func Formulas() []Formula { return []Formula{Product, Centered} }

// String returns the formula as written in the printed report.
func (fm Formula) String() string {
	switch fm {
	case Product:
		return "x = a*x*(1-x)"
	case Centered:
		return "x = a*0.25 - a*(x-0.5)^2"
	default:
		return fmt.Sprintf("Formula(%d)", int(fm))
	}
}

// StopReason tells why Iterate returned.
type StopReason int

const (
	// StopMaxIterations: the iteration cap was reached.
	StopMaxIterations StopReason = iota
	// StopLostDigits: the iterate has no significant digit left.
	StopLostDigits
	// StopStagnated: the iterate no longer changes significantly.
	StopStagnated
)

// String returns the reason as printed after a stop.
func (r StopReason) String() string {
	switch r {
	case StopMaxIterations:
		return "max iterations"
	case StopLostDigits:
		return "x lost all significant digits"
	case StopStagnated:
		return "x no longer changes (numerical stagnation)"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result is the outcome of Iterate.
type Result[E any] struct {
	X          E          // last iterate
	Iterations int        // iterations performed
	Stop       StopReason // why the loop ended
}

// Options configures Iterate.
//
// Rate           – the map parameter a. Default 3.6.
// Start          – x0. Default 0.6.
// MaxIter        – iteration cap (>= 1). Default 200.
// ReportEvery    – OnReport is called every ReportEvery iterations; 0 disables it. Default 50.
// StagnationStop – stop when x equals the previous iterate. Default true.
type Options[E any] struct {
	Rate           float64
	Start          float64
	MaxIter        int
	ReportEvery    int
	StagnationStop bool
	OnReport       func(i int, x E)
}

// Option is a functional option for Iterate.
type Option[E any] func(*Options[E])

// DefaultOptions returns the textbook configuration.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Rate:           DefaultRate,
		Start:          DefaultStart,
		MaxIter:        DefaultMaxIter,
		ReportEvery:    DefaultReportEvery,
		StagnationStop: true,
	}
}

// WithRate sets the map parameter a.
func WithRate[E any](a float64) Option[E] {
	return func(o *Options[E]) { o.Rate = a }
}

// WithStart sets x0.
func WithStart[E any](x0 float64) Option[E] {
	return func(o *Options[E]) { o.Start = x0 }
}

// WithMaxIter sets the iteration cap.
func WithMaxIter[E any](n int) Option[E] {
	return func(o *Options[E]) { o.MaxIter = n }
}

// WithReportEvery sets the report period; 0 disables periodic reports.
func WithReportEvery[E any](n int) Option[E] {
	return func(o *Options[E]) { o.ReportEvery = n }
}

// WithStagnationStop enables or disables the zero and stagnation stops.
func WithStagnationStop[E any](on bool) Option[E] {
	return func(o *Options[E]) { o.StagnationStop = on }
}

// WithOnReport registers the periodic report hook.
func WithOnReport[E any](fn func(i int, x E)) Option[E] {
	return func(o *Options[E]) { o.OnReport = fn }
}
