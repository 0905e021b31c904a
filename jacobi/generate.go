// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// Constants of the textbook system.
const (
	DefaultSeed   = 23       // initial LCG state
	DiagonalShift = 4.500002 // added to every diagonal entry
	lcgMul        = 5363
	lcgInc        = 143
	lcgMod        = 1387
)

// LCG is the linear congruential generator state -> (state*5363 + 143) mod 1387,
// mapped onto [-1, 1) in single precision.
type LCG struct {
	state int
}

// NewLCG returns a generator with the given initial state.
func NewLCG(seed int) *LCG { return &LCG{state: seed} }

// Next advances the generator and returns 2*state/1387 - 1 rounded to float32.
func (g *LCG) Next() float32 {
	g.state = (g.state*lcgMul + lcgInc) % lcgMod

	return float32(2.0*float64(g.state)/lcgMod - 1.0)
}

// State returns the current generator state.
func (g *LCG) State() int { return g.state }

// Solution returns the exact solution of the textbook system.
func Solution() []float64 {
	return []float64{
		1.7, -4746.89, 50.23, -245.32,
		4778.29, -75.73, 3495.43, 4.35,
		452.98, -2.76, 8239.24, 3.46,
		1000.0, -5.0, 3642.4, 735.36,
		1.7, -2349.17, -8247.52, 9843.57,
	}
}

// Generate builds the len(xsol) x len(xsol) system whose entries are drawn
// row by row from NewLCG(seed), with DiagonalShift added to the diagonal,
// and returns it with b = A*xsol computed in float64.
//
// Entries are single-precision generator outputs; the diagonal sum is formed
// in float64, so lifting A into float32 rounds it exactly once.
func Generate(seed int, xsol []float64) (*matrix.Dense, []float64, error) {
	n := len(xsol)
	if n == 0 {
		return nil, nil, ErrEmptySystem
	}
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("jacobi: Generate: %w", err)
	}

	g := NewLCG(seed)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = a.Set(i, j, float64(g.Next())); err != nil {
				return nil, nil, fmt.Errorf("jacobi: Generate: %w", err)
			}
		}
		d, _ := a.At(i, i)
		if err = a.Set(i, i, d+DiagonalShift); err != nil {
			return nil, nil, fmt.Errorf("jacobi: Generate: %w", err)
		}
	}

	b, err := matrix.MatVec(a, xsol)
	if err != nil {
		return nil, nil, fmt.Errorf("jacobi: Generate: %w", err)
	}

	return a, b, nil
}
