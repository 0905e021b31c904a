// SPDX-License-Identifier: MIT

package gauss

import "errors"

// Sentinel errors returned by Solve and Reference.
var (
	// ErrEmptySystem indicates a system with no equations.
	ErrEmptySystem = errors.New("gauss: empty system")

	// ErrNotAugmented indicates a row whose length is not n+1.
	ErrNotAugmented = errors.New("gauss: matrix is not n x (n+1)")

	// ErrSingular indicates a column with no non-zero candidate pivot.
	ErrSingular = errors.New("gauss: no pivot beats zero")
)

// Result holds the solution and the elimination by-products.
type Result[E any] struct {
	X       []E   // solution vector, len n
	Swaps   int   // number of row exchanges performed
	Pivots  []E   // pivot element a[i][i] after the swap, for i < n-1
	Reduced [][]E // working matrix after forward elimination
}

// Options carries the trace hooks. Every hook is optional.
type Options[E any] struct {
	OnPivot            func(step, row int, pmax E) // pivot chosen for column step
	OnSwap             func(i, j int)              // rows i and j exchanged
	OnNormalize        func(step int, pivot E)     // row step is about to be divided by pivot
	OnMultiplier       func(row int, m E)          // row is about to lose m times the pivot row
	OnStep             func(step int, a [][]E)     // matrix after elimination step; read only
	OnLast             func(i int, num, den, x E)  // x[n-1] = num / den
	OnBackStart        func(i int, start E)        // back substitution of x[i] begins
	OnBackSubstitution func(i, j int, aij, xj E)   // a[i][j]*x[j] is about to be subtracted
	OnSolved           func(i int, x E)            // x[i] is final
}

// Option configures Solve.
type Option[E any] func(*Options[E])

// WithOnPivot registers a hook called once per column with the winning row
// and the absolute value that won.
func WithOnPivot[E any](fn func(step, row int, pmax E)) Option[E] {
	return func(o *Options[E]) { o.OnPivot = fn }
}

// WithOnSwap registers a hook called when two rows are exchanged.
func WithOnSwap[E any](fn func(i, j int)) Option[E] {
	return func(o *Options[E]) { o.OnSwap = fn }
}

// WithOnNormalize registers a hook called before the pivot row is scaled.
func WithOnNormalize[E any](fn func(step int, pivot E)) Option[E] {
	return func(o *Options[E]) { o.OnNormalize = fn }
}

// WithOnMultiplier registers a hook called before each row update.
func WithOnMultiplier[E any](fn func(row int, m E)) Option[E] {
	return func(o *Options[E]) { o.OnMultiplier = fn }
}

// WithOnStep registers a hook called after each elimination step.
// The matrix passed in is the live working copy and must not be modified.
func WithOnStep[E any](fn func(step int, a [][]E)) Option[E] {
	return func(o *Options[E]) { o.OnStep = fn }
}

// WithOnLast registers a hook called when the last unknown is computed.
func WithOnLast[E any](fn func(i int, num, den, x E)) Option[E] {
	return func(o *Options[E]) { o.OnLast = fn }
}

// WithOnBackStart registers a hook called when back substitution of x[i] starts.
func WithOnBackStart[E any](fn func(i int, start E)) Option[E] {
	return func(o *Options[E]) { o.OnBackStart = fn }
}

// WithOnBackSubstitution registers a hook called for every subtracted term.
func WithOnBackSubstitution[E any](fn func(i, j int, aij, xj E)) Option[E] {
	return func(o *Options[E]) { o.OnBackSubstitution = fn }
}

// WithOnSolved registers a hook called when x[i] is final, for i = n-2..0.
func WithOnSolved[E any](fn func(i int, x E)) Option[E] {
	return func(o *Options[E]) { o.OnSolved = fn }
}
