// SPDX-License-Identifier: MIT

package jacobi

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrEmptySystem indicates a system with no equations.
	ErrEmptySystem = errors.New("jacobi: empty system")

	// ErrDimensionMismatch indicates a non-square matrix or a right-hand side
	// of the wrong length.
	ErrDimensionMismatch = errors.New("jacobi: dimension mismatch")

	// ErrBadTolerance indicates a tolerance that is not strictly positive.
	ErrBadTolerance = errors.New("jacobi: tolerance must be positive")

	// ErrBadMaxIter indicates a sweep cap below one.
	ErrBadMaxIter = errors.New("jacobi: max iterations must be >= 1")
)

// Defaults of the textbook run.
const (
	DefaultTolerance = 1e-2
	DefaultMaxIter   = 1000
	DefaultStart     = 10.0
)

// StopReason tells why Solve returned.
type StopReason int

const (
	// StopMaxIterations: the sweep cap was reached.
	StopMaxIterations StopReason = iota
	// StopConverged: the sweep norm fell below the tolerance.
	StopConverged
	// StopPrecisionLimit: the sweep norm is a (computational) zero.
	StopPrecisionLimit
)

// String returns a short label for r.
func (r StopReason) String() string {
	switch r {
	case StopMaxIterations:
		return "max iterations"
	case StopConverged:
		return "converged"
	case StopPrecisionLimit:
		return "precision limit"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result is the outcome of Solve.
type Result[E any] struct {
	X          []E        // last iterate
	Iterations int        // sweeps actually performed
	Norm       E          // sweep norm of the last sweep
	Stop       StopReason // why the loop ended
}

// Options configures Solve.
//
// Tolerance – stop when the sweep norm is below it. Must be > 0. Default 1e-2.
// MaxIter   – sweep cap. Must be >= 1. Default 1000.
// Start     – value of every component of the initial iterate. Default 10.
// OnSweep   – optional hook called after each sweep.
type Options[E any] struct {
	Tolerance float64
	MaxIter   int
	Start     float64
	OnSweep   func(iter int, norm E)
}

// Option is a functional option for Solve.
type Option[E any] func(*Options[E])

// DefaultOptions returns the textbook configuration.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Start:     DefaultStart,
	}
}

// WithTolerance sets the convergence threshold on the sweep norm.
func WithTolerance[E any](eps float64) Option[E] {
	return func(o *Options[E]) { o.Tolerance = eps }
}

// WithMaxIter sets the sweep cap.
func WithMaxIter[E any](n int) Option[E] {
	return func(o *Options[E]) { o.MaxIter = n }
}

// WithStart sets the value of every component of the initial iterate.
func WithStart[E any](v float64) Option[E] {
	return func(o *Options[E]) { o.Start = v }
}

// WithOnSweep registers a hook called after every sweep.
func WithOnSweep[E any](fn func(iter int, norm E)) Option[E] {
	return func(o *Options[E]) { o.OnSweep = fn }
}
