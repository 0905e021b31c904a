// SPDX-License-Identifier: MIT

// Package rump evaluates Rump's polynomial
//
//	f(x, y) = 333.75y^6 + x^2(11x^2y^2 - y^6 - 121y^4 - 2) + 5.5y^8 + x/(2y)
//
// at (77617, 33096). The terms are of order 1e36 and cancel exactly, leaving
// -2 + x/(2y) = -54767/66192 ~ -0.8273960599. Native single and double
// precision both print confident but wrong values (double gives about
// 1.1726); the stochastic evaluation reports that no digit of the result is
// significant. Exact returns the exact rational value.
package rump
