// SPDX-License-Identifier: MIT

package lab

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/stochastic"
)

// session carries the per-run state shared by the exercise runners.
type session struct {
	w   io.Writer
	err error // first write error; later writes are skipped
	cfg config.Config
	log logrus.FieldLogger
	sc  *stochastic.Context // nil under plain arithmetic
}

func (s *session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// banner prints title inside a dashed box.
func (s *session) banner(title string) {
	text := cases.Title(language.English).String(title)
	rule := strings.Repeat("-", len(text)+4)
	s.printf("%s\n| %s |\n%s\n", rule, text, rule)
}

// Run executes the exercise name under env and writes its report to env.Out.
//
// Implementation:
//   - Stage 1: look the exercise up and resolve Auto to its default precision.
//   - Stage 2: under stochastic arithmetic, open a stochastic.Context seeded
//     from env.Seed with the configured cancellation level.
//   - Stage 3: print the banner, run the instantiation, and close the
//     stochastic run with its instability report.
//
// The first error from the kernel or from writing the report is returned.
func Run(ctx context.Context, env Env, name string) error {
	e, err := Lookup(name)
	if err != nil {
		return err
	}
	p := env.Precision
	if p == Auto {
		p = e.Default
	}
	log := env.logger().WithFields(logrus.Fields{
		"exercise":  e.Name,
		"arith":     env.Arith.String(),
		"precision": p.String(),
	})

	s := &session{w: env.Out, cfg: env.Config, log: log}
	if env.Arith == Stochastic {
		opts := []stochastic.Option{stochastic.WithSeed(env.Seed)}
		if lvl := env.Config.CancellationLevel; lvl >= 1 {
			opts = append(opts, stochastic.WithCancellationLevel(lvl))
		}
		s.sc = stochastic.Init(opts...)
		log = log.WithField("seed", s.sc.Seed())
		s.log = log
	}

	start := time.Now()
	log.Debug("exercise started")
	s.banner(e.Title)

	if err = e.variant(env.Arith, p)(ctx, s); err != nil {
		log.WithError(err).Error("exercise failed")
		return fmt.Errorf("%s: %w", e.Name, err)
	}

	if s.sc != nil {
		rep := s.sc.End()
		s.printf("%s", rep)
		if rep.Total() > 0 {
			log.WithField("instabilities", rep.Total()).Warn("numerical instabilities detected")
		}
	}
	if s.err != nil {
		return fmt.Errorf("%s: write report: %w", e.Name, s.err)
	}
	log.WithField("elapsed", time.Since(start)).Info("exercise finished")

	return nil
}

// RunAll runs the named exercises concurrently, each into its own buffer, and
// writes the reports to env.Out in the order given. No names means every
// registered exercise. The first failure cancels the remaining runs.
func RunAll(ctx context.Context, env Env, names []string) error {
	if len(names) == 0 {
		names = Names()
	}
	for _, n := range names {
		if _, err := Lookup(n); err != nil {
			return err
		}
	}

	bufs := make([]bytes.Buffer, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range names {
		g.Go(func() error {
			sub := env
			sub.Out = &bufs[i]
			return Run(gctx, sub, n)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(env.Out); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}
