// SPDX-License-Identifier: MIT

// Package gauss solves a square linear system given as an augmented matrix by
// Gaussian elimination with partial pivoting followed by back substitution.
//
// Overview:
//
//   - Solve is generic over the scalar type, so the same kernel runs on native
//     float32/float64 and on stochastic numbers that track significant digits.
//   - The textbook system returned by System is badly scaled on purpose: in
//     single precision the computed first component is far from the exact
//     solution returned by ExactSolution.
//   - Reference solves the float64 system with gonum as an independent check.
//
// Algorithm (n equations, augmented column n):
//
//  1. For each column i < n-1, pick the row j >= i whose |a[j][i]| is the
//     largest strictly above a running maximum that starts at zero.
//  2. Swap that row into position i (columns i..n).
//  3. Divide row i, columns i+1..n, by the pivot a[i][i].
//  4. Subtract a[k][i] times row i from every row k > i (columns i+1..n).
//  5. Back substitution: x[n-1] = a[n-1][n]/a[n-1][n-1], then
//     x[i] = a[i][n] - sum_{j>i} a[i][j]*x[j].
//
// Trace hooks (WithOnPivot, WithOnSwap, ...) observe every stage without
// changing the arithmetic; the console runner uses them to print each step.
//
// Complexity:
//
//   - Time O(n^3), Space O(n^2) for the private working copy.
//
// Errors (sentinel):
//
//   - ErrEmptySystem   if the matrix has no rows.
//   - ErrNotAugmented  if some row does not have exactly n+1 entries.
//   - ErrSingular      if no entry of an active column beats zero.
package gauss
