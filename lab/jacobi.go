// SPDX-License-Identifier: MIT

package lab

import (
	"context"
	"math"

	"github.com/katalvlaran/numlab/jacobi"
	"github.com/katalvlaran/numlab/numeric"
)

// runJacobi iterates on the generated 20x20 diagonally dominant system. The
// stochastic run uses its own, tighter tolerance so that the precision limit
// becomes visible.
func runJacobi[E numeric.Number[E]](ctx context.Context, s *session, f numeric.Field[E]) error {
	c := s.cfg.Jacobi
	eps := c.Tolerance
	if s.sc != nil {
		eps = c.StochasticTolerance
	}

	xsol := jacobi.Solution()
	m, b64, err := jacobi.Generate(c.Seed, xsol)
	if err != nil {
		return err
	}
	a, err := numeric.LiftDense(f, m)
	if err != nil {
		return err
	}
	exact := numeric.Vector(f, xsol)
	b, err := jacobi.RHS(f, a, exact)
	if err != nil {
		return err
	}
	var gap float64
	for i, v := range numeric.Float64s(b) {
		gap = math.Max(gap, math.Abs(v-b64[i]))
	}
	s.printf("max |b - b(float64)| = %.3e\n", gap)

	res, err := jacobi.Solve(ctx, f, a, b,
		jacobi.WithTolerance[E](eps),
		jacobi.WithMaxIter[E](c.MaxIter),
		jacobi.WithStart[E](c.Start),
		jacobi.WithOnSweep(func(iter int, norm E) {
			s.log.WithField("iter", iter).WithField("anorm", norm.String()).Trace("sweep")
		}),
	)
	if err != nil {
		return err
	}

	switch res.Stop {
	case jacobi.StopPrecisionLimit:
		s.printf("WARNING: Reached numerical precision limit at iter %d\n", res.Iterations)
	case jacobi.StopConverged:
		s.printf("Converged to tolerance at iter %d\n", res.Iterations)
	}
	s.printf("\nniter = %d\n", res.Iterations)
	s.printf("Final anorm = %s\n", res.Norm)
	s.printf("eps = %.1e\n\n", eps)

	r, err := jacobi.Residual(a, b, res.X)
	if err != nil {
		return err
	}
	for i := range res.X {
		s.printf("x_sol(%2d) = %s (correct value: %s), error(%2d) = %s\n", i, res.X[i], exact[i], i, r[i])
	}

	return nil
}
