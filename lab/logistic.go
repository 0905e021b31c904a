// SPDX-License-Identifier: MIT

package lab

import (
	"context"

	"github.com/katalvlaran/numlab/logistic"
	"github.com/katalvlaran/numlab/numeric"
)

// runLogistic iterates both algebraically equivalent formulas of the map
// from the same start and reports how each run ended.
func runLogistic[E numeric.Number[E]](ctx context.Context, s *session, f numeric.Field[E]) error {
	c := s.cfg.Logistic
	for _, fm := range logistic.Formulas() {
		if fm == logistic.Product {
			s.printf("\n=== First formula: %s ===\n", fm)
		} else {
			s.printf("\n=== Second formula: %s ===\n", fm)
		}

		res, err := logistic.Iterate(ctx, f, fm,
			logistic.WithRate[E](c.Rate),
			logistic.WithStart[E](c.Start),
			logistic.WithMaxIter[E](c.MaxIter),
			logistic.WithReportEvery[E](c.ReportEvery),
			logistic.WithStagnationStop[E](c.StagnationStop),
			logistic.WithOnReport(func(i int, x E) {
				s.printf("i=%3d x=%s\n", i, x)
			}),
		)
		if err != nil {
			return err
		}
		s.log.WithField("formula", fm.String()).WithField("stop", res.Stop.String()).Debug("orbit done")

		if res.Stop == logistic.StopMaxIterations {
			s.printf("Reached max iterations. Last x=%s\n", res.X)
			continue
		}
		s.printf("STOPPED at iteration %d: x=%s\n", res.Iterations, res.X)
		s.printf("  Reason: %s\n", res.Stop)
	}

	return nil
}
