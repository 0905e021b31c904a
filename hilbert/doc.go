// SPDX-License-Identifier: MIT

// Package hilbert computes the determinant of the n x n Hilbert matrix
// H[i][j] = 1/(i+j+1) as the product of the pivots of an elimination
// without pivoting, generic over the scalar type.
//
// Hilbert matrices are the classic ill-conditioned family: det(H_11) is about
// 3.0e-65 while its entries are of order one, and the last pivots are formed
// by cancellations that consume most of the available digits. Exact returns
// the determinant as an exact rational through the closed form
//
//	det(H_n) = c(n)^4 / c(2n),  c(m) = 1! * 2! * ... * (m-1)!,
//
// and Reference and LUDeterminant give independent float64 answers from gonum
// and from the matrix package.
package hilbert
