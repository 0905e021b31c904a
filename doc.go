// Package numlab is a set of small numerical-analysis programs that show how
// floating-point round-off spoils textbook computations, and how stochastic
// arithmetic exposes the damage by estimating the significant digits of every
// result.
//
// What is inside?
//
//	• gauss/     - Gaussian elimination with partial pivoting on an ill-conditioned 4x4 system
//	• jacobi/    - Jacobi iteration on a generated 20x20 diagonally dominant system
//	• logistic/  - the logistic map written with two algebraically equal formulas
//	• muller/    - Muller's recurrence, which converges to the wrong fixed point
//	• newton/    - Newton's method on a cubic with a double root
//	• hilbert/   - the determinant of the 11x11 Hilbert matrix
//	• rump/      - Rump's polynomial at (77617, 33096)
//
// Every kernel is generic over numeric.Number, so the same code runs on
//
//	numeric.Plain[float32|float64]     - native IEEE-754 arithmetic
//	stochastic.Float[float32|float64]  - three randomly rounded samples per value
//
// and the lab package plus cmd/numlab wire them to configuration, logging and
// a command-line front end:
//
//	numlab gauss --arith stochastic
//	numlab all --precision double --seed 42
//
// Supporting packages:
//
//	matrix/           - float64 Dense storage, Hilbert builder, LU and gonum bridge
//	numeric/          - the Number and Field contracts, Plain floats, lifting helpers
//	stochastic/       - random-rounding arithmetic and the instability report
//	internal/config/  - viper-backed configuration (defaults, YAML, NUMLAB_* env, flags)
//	internal/logging/ - logrus logger construction
package numlab
