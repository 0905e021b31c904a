// Package matrix is the dense float64 storage shared by the numlab exercises.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by one flat slice.
//   - Builders for the classic test matrices used in the labs (NewHilbert,
//     NewDenseFrom for literal systems).
//   - Small kernels over float64: MatVec, Doolittle LU without pivoting and the
//     pivot-product determinant Det.
//   - ToGonum, a copy into gonum's mat.Dense for LAPACK-backed reference answers.
//
// Exercises that run under stochastic arithmetic lift a Dense into their own
// element type through numeric.LiftDense; Dense itself is always float64.
//
// All public functions return sentinel errors from errors.go; nothing panics on
// user input.
package matrix
