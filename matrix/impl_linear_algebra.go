// SPDX-License-Identifier: MIT
// Package matrix provides the float64 kernels the labs need on any Matrix
// implementation: matrix-vector product, Doolittle LU without pivoting and the
// pivot-product determinant. All functions validate first and return wrapped
// sentinels.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; other implementations fall
//     back to At/Set with the same loop order, so both paths agree bitwise.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opLU     = "LU"
	opDet    = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order on both paths.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j] // accumulate a(i,j)*x(j)
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) with m = L*U.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: for each i compute row i of U (j ≥ i), then column i of L (j > i).
//   - Stage 3: fail with ErrSingular as soon as U[i][i] == 0.
//
// Behavior highlights:
//   - No pivoting: the factorization follows the matrix order exactly, which
//     is what the Hilbert lab demonstrates.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0 // unit diagonal
	}

	// Materialize the input once so both Dense and foreign matrices share one loop.
	src, ok := m.(*Dense)
	if !ok {
		if src, err = denseCopy(m); err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = src.data[i*n+j] - sum
		}

		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (src.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Det returns the determinant of m as the product of the LU pivots.
// A zero pivot yields ErrSingular rather than a silent zero.
// Complexity: O(n^3).
func Det(m Matrix) (float64, error) {
	_, U, err := LU(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := 1.0
	n := U.r
	for i := 0; i < n; i++ {
		det *= U.data[i*n+i]
	}

	return det, nil
}

// denseCopy materializes any Matrix as *Dense through At.
func denseCopy(m Matrix) (*Dense, error) {
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
