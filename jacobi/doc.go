// SPDX-License-Identifier: MIT

// Package jacobi implements Jacobi iteration for a square linear system and
// the pseudo-random, diagonally dominant 20x20 system used to exercise it.
//
// Overview:
//
//   - Solve runs sweeps y[j] = (b[j] - sum_{k!=j} a[j][k]*x[k]) / a[j][j]
//     until the sweep norm max_j |x[j]-y[j]| drops below the tolerance, becomes
//     a computational zero, or the sweep cap is reached.
//   - Under stochastic arithmetic the computational-zero stop detects the point
//     where further sweeps only shuffle rounding noise; in native arithmetic
//     a tolerance below that noise floor never triggers and the cap is hit.
//   - Generate rebuilds the textbook system from the linear congruential
//     generator LCG with the original constants.
//
// Complexity:
//
//   - Time O(k*n^2) for k sweeps, Space O(n).
//
// Errors (sentinel):
//
//   - ErrEmptySystem, ErrDimensionMismatch for malformed input.
//   - ErrBadTolerance, ErrBadMaxIter for invalid options.
//
// Non-convergence is not an error: it is reported as StopMaxIterations.
package jacobi
