// SPDX-License-Identifier: MIT

package lab

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/numlab/numeric"
	"github.com/katalvlaran/numlab/stochastic"
)

// runFunc runs one instantiation of an exercise inside a session.
type runFunc func(ctx context.Context, s *session) error

// Exercise describes one registered lab program.
type Exercise struct {
	Name    string    // command name, e.g. "gauss"
	Title   string    // banner text, title-cased when printed
	Default Precision // precision used when the run asks for Auto

	plain [2]runFunc // single, double
	stoch [2]runFunc // single, double
}

// variant returns the instantiation for a and p; p must not be Auto.
func (e Exercise) variant(a Arith, p Precision) runFunc {
	i := 0
	if p == Double {
		i = 1
	}
	if a == Stochastic {
		return e.stoch[i]
	}

	return e.plain[i]
}

// bindPlain instantiates fn on native floats of width T.
func bindPlain[T numeric.Float](fn func(context.Context, *session, numeric.Field[numeric.Plain[T]]) error) runFunc {
	return func(ctx context.Context, s *session) error {
		f := numeric.PlainField[T]{}
		s.printf("arithmetic: %s\n", f.Name())

		return fn(ctx, s, f)
	}
}

// bindStochastic instantiates fn on stochastic numbers of width T bound to
// the session's context.
func bindStochastic[T numeric.Float](fn func(context.Context, *session, numeric.Field[stochastic.Float[T]]) error) runFunc {
	return func(ctx context.Context, s *session) error {
		f := stochastic.NewField[T](s.sc)
		s.printf("arithmetic: %s\n", f.Name())

		return fn(ctx, s, f)
	}
}

type (
	p32 = numeric.Plain[float32]
	p64 = numeric.Plain[float64]
	s32 = stochastic.Float[float32]
	s64 = stochastic.Float[float64]
)

// registry lists the exercises in presentation order.
var registry = []Exercise{
	{
		Name:    "gauss",
		Title:   "solving a linear system using gaussian elimination with partial pivoting",
		Default: Single,
		plain:   [2]runFunc{bindPlain[float32](runGauss[p32]), bindPlain[float64](runGauss[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runGauss[s32]), bindStochastic[float64](runGauss[s64])},
	},
	{
		Name:    "jacobi",
		Title:   "jacobi iteration",
		Default: Single,
		plain:   [2]runFunc{bindPlain[float32](runJacobi[p32]), bindPlain[float64](runJacobi[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runJacobi[s32]), bindStochastic[float64](runJacobi[s64])},
	},
	{
		Name:    "logistic",
		Title:   "logistic iteration",
		Default: Double,
		plain:   [2]runFunc{bindPlain[float32](runLogistic[p32]), bindPlain[float64](runLogistic[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runLogistic[s32]), bindStochastic[float64](runLogistic[s64])},
	},
	{
		Name:    "muller",
		Title:   "a second order recurrent sequence",
		Default: Double,
		plain:   [2]runFunc{bindPlain[float32](runMuller[p32]), bindPlain[float64](runMuller[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runMuller[s32]), bindStochastic[float64](runMuller[s64])},
	},
	{
		Name:    "newton",
		Title:   "computation of a root of a polynomial by newton's method",
		Default: Double,
		plain:   [2]runFunc{bindPlain[float32](runNewton[p32]), bindPlain[float64](runNewton[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runNewton[s32]), bindStochastic[float64](runNewton[s64])},
	},
	{
		Name:    "hilbert",
		Title:   "determinant of hilbert's matrix",
		Default: Double,
		plain:   [2]runFunc{bindPlain[float32](runHilbert[p32]), bindPlain[float64](runHilbert[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runHilbert[s32]), bindStochastic[float64](runHilbert[s64])},
	},
	{
		Name:    "rump",
		Title:   "polynomial function of two variables",
		Default: Single,
		plain:   [2]runFunc{bindPlain[float32](runRump[p32]), bindPlain[float64](runRump[p64])},
		stoch:   [2]runFunc{bindStochastic[float32](runRump[s32]), bindStochastic[float64](runRump[s64])},
	},
}

// Registry returns a copy of the registered exercises in presentation order.
func Registry() []Exercise {
	return append([]Exercise(nil), registry...)
}

// Names returns the registered exercise names in presentation order.
func Names() []string {
	return lo.Map(registry, func(e Exercise, _ int) string { return e.Name })
}

// Lookup finds an exercise by name.
func Lookup(name string) (Exercise, error) {
	e, ok := lo.Find(registry, func(e Exercise) bool { return e.Name == name })
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}

	return e, nil
}
