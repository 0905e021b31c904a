// SPDX-License-Identifier: MIT

// Package logistic iterates the logistic map x <- a*x*(1-x) at the chaotic
// rate a = 3.6 using two algebraically equal formulas:
//
//	Product:  a*x*(1-x)
//	Centered: a*0.25 - a*(x-0.5)^2
//
// In exact arithmetic both produce the same orbit. In floating point the
// orbits separate after a few dozen iterations because every rounding error
// is amplified by the map's positive Lyapunov exponent; after 200 iterations
// the two results share no digit. Under stochastic arithmetic the loss is
// visible directly: the iterate becomes a computational zero (StopLostDigits)
// or stops changing significantly (StopStagnated) well before the cap.
package logistic
