// SPDX-License-Identifier: MIT

package lab

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numlab/gauss"
	"github.com/katalvlaran/numlab/numeric"
)

// runGauss solves the textbook 4x4 system, tracing every elimination step when
// gauss.trace is set, and compares against the exact and gonum solutions.
func runGauss[E numeric.Number[E]](_ context.Context, s *session, f numeric.Field[E]) error {
	sys := gauss.System()
	n := len(sys)

	var opts []gauss.Option[E]
	if s.cfg.Gauss.Trace {
		opts = append(opts,
			gauss.WithOnPivot(func(step, row int, pmax E) {
				s.printf("\n=== Step %d: Pivot selection ===\n", step)
				s.printf("Pivot max = %s at row %d\n", pmax, row)
			}),
			gauss.WithOnSwap[E](func(i, j int) {
				s.printf("Swapping rows %d and %d\n", i, j)
			}),
			gauss.WithOnNormalize(func(step int, pivot E) {
				s.printf("Pivot element a[%d][%d] = %s\n", step, step, pivot)
			}),
			gauss.WithOnMultiplier(func(row int, m E) {
				s.printf("Multiplier for row %d: %s\n", row, m)
			}),
			gauss.WithOnStep(func(step int, a [][]E) {
				s.printf("\nMatrix after step %d:\n", step)
				for _, row := range a {
					cells := lo.Map(row, func(v E, _ int) string { return v.String() })
					s.printf("%s\n", strings.Join(cells, " "))
				}
			}),
			gauss.WithOnLast(func(i int, num, den, x E) {
				s.printf("\n=== Back substitution ===\n")
				s.printf("x[%d] = %s / %s = %s\n", i, num, den, x)
			}),
			gauss.WithOnBackStart(func(i int, start E) {
				s.printf("\nComputing x[%d]:\n", i)
				s.printf("Starting value: %s\n", start)
			}),
			gauss.WithOnBackSubstitution(func(i, j int, aij, xj E) {
				s.printf("  Subtracting a[%d][%d] * x[%d] = %s * %s\n", i, j, j, aij, xj)
			}),
			gauss.WithOnSolved(func(i int, x E) {
				s.printf("Final x[%d] = %s\n", i, x)
			}),
		)
	}

	res, err := gauss.Solve(f, numeric.Grid(f, sys), opts...)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"swaps":   res.Swaps,
		"reduced": numeric.GridFloat64s(res.Reduced),
	}).Debug("elimination done")

	exact := numeric.Vector(f, gauss.ExactSolution())
	s.printf("\n=== Final results ===\n")
	for i := 0; i < n; i++ {
		s.printf("xsol(%d) = %s (exact solution: xsol(%d)= %s)\n", i, res.X[i], i, exact[i])
	}

	ref, err := gauss.Reference(sys)
	if err != nil {
		s.log.WithError(err).Warn("reference solve failed")
	} else {
		s.printf("\n=== Reference (LU, float64) ===\n")
		for i, v := range ref {
			s.printf("xref(%d) = %+.15e\n", i, v)
		}
	}
	if c, err := gauss.Condition(sys); err == nil {
		s.printf("cond1(A) = %.6e\n", c)
	}

	return nil
}
