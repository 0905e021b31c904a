// SPDX-License-Identifier: MIT

package lab

import (
	"context"
	"math/big"

	"github.com/katalvlaran/numlab/hilbert"
	"github.com/katalvlaran/numlab/muller"
	"github.com/katalvlaran/numlab/newton"
	"github.com/katalvlaran/numlab/numeric"
	"github.com/katalvlaran/numlab/rump"
)

// exactDigits is the precision of exact rational values in reports.
const exactDigits = 15

func runMuller[E numeric.Number[E]](_ context.Context, s *session, f numeric.Field[E]) error {
	terms, err := muller.Sequence(f,
		muller.WithLast[E](s.cfg.Muller.Last),
		muller.WithOnTerm(func(t muller.Term[E]) {
			s.printf("U(%d) = %s\n", t.N, t.U)
		}),
	)
	if err != nil {
		return err
	}
	last := terms[len(terms)-1]
	s.printf("exact U(%d) = %s (limit %g)\n", last.N, muller.Exact(last.N).FloatString(exactDigits), muller.Limit)

	return nil
}

func runNewton[E numeric.Number[E]](ctx context.Context, s *session, f numeric.Field[E]) error {
	c := s.cfg.Newton
	p := newton.Textbook()
	s.printf("p(x) = %s\n", p)

	res, err := newton.Solve(ctx, f, p,
		newton.WithStart[E](c.Start),
		newton.WithTolerance[E](c.Tolerance),
		newton.WithMaxIter[E](c.MaxIter),
		newton.WithStopOnEqual[E](c.StopOnEqual),
		newton.WithOnStep(func(i int, x, diff E) {
			s.printf("x(%3d) = %s, diff = %s\n", i, x, diff)
		}),
	)
	if err != nil {
		return err
	}
	s.log.WithField("stop", res.Stop.String()).WithField("iterations", res.Iterations).Debug("newton done")
	s.printf("root = %s after %d steps (%s)\n", res.Root, res.Iterations, res.Stop)
	s.printf("exact double root = %+.15e\n", newton.DoubleRoot)

	return nil
}

// runHilbert prints every pivot of the elimination, the determinant and the
// exact, gonum and LU values for comparison.
func runHilbert[E numeric.Number[E]](_ context.Context, s *session, f numeric.Field[E]) error {
	n := s.cfg.Hilbert.Order
	res, err := hilbert.Determinant(f, n,
		hilbert.WithOnPivot(func(i int, pivot E) {
			s.printf("Pivot %3d   = %s\n", i, pivot)
		}),
	)
	if err != nil {
		return err
	}
	s.printf("Determinant = %s\n", res.Det)

	exact, _ := hilbert.Exact(n).Float64()
	s.printf("Exact       = %+.15e (%s)\n", exact, hilbert.Exact(n).RatString())
	if ref, err := hilbert.Reference(n); err == nil {
		s.printf("gonum       = %+.15e\n", ref)
	} else {
		s.log.WithError(err).Warn("gonum determinant failed")
	}
	if lu, err := hilbert.LUDeterminant(n); err == nil {
		s.printf("LU          = %+.15e\n", lu)
	} else {
		s.log.WithError(err).Warn("LU determinant failed")
	}

	return nil
}

func runRump[E numeric.Number[E]](_ context.Context, s *session, f numeric.Field[E]) error {
	x, y := s.cfg.Rump.X, s.cfg.Rump.Y
	res := rump.Evaluate(f, f.Const(x), f.Const(y))
	s.printf("res=%s\n", res)

	exact := rump.Exact(new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y))
	s.printf("exact=%s (%s)\n", exact.RatString(), exact.FloatString(exactDigits))

	return nil
}
