// SPDX-License-Identifier: MIT

// Package muller computes Muller's second order recurrence
//
//	u(0) = 11/2, u(1) = 61/11,
//	u(n) = 111 - 1130/u(n-1) + 3000/(u(n-1)*u(n-2)),
//
// whose exact terms (6^(n+1) + 5^(n+1)) / (6^n + 5^n) increase towards 6.
// The recurrence has a repelling fixed point at 6 and an attracting one at
// 100: any rounding error in u(1) excites the 100^n mode, so every
// floating-point run ends at 100 whatever the precision. Exact returns the
// exact rational terms for comparison.
package muller
