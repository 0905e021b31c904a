// SPDX-License-Identifier: MIT

// Package newton finds a root of a real polynomial by Newton's method,
// generic over the scalar type.
//
// The textbook polynomial 1.47x^3 + 1.19x^2 - 1.83x + 0.45 factors as
// 1.47(x - 3/7)^2 (x + 5/3). Started from 0.5 the iteration approaches the
// double root 3/7, where convergence is only linear and p and p' both vanish:
// in native arithmetic the iterates stall around 1e-8 away from the root while
// the step keeps shrinking; under stochastic arithmetic the stop on x == y
// fires as soon as the step is no longer significant.
package newton
