// SPDX-License-Identifier: MIT

package lab

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/logging"
)

// Sentinel errors.
var (
	// ErrUnknownExercise indicates a name that is not registered.
	ErrUnknownExercise = errors.New("lab: unknown exercise")

	// ErrUnknownArith indicates an arithmetic name other than plain/stochastic.
	ErrUnknownArith = errors.New("lab: unknown arithmetic")

	// ErrUnknownPrecision indicates a precision name other than auto/single/double.
	ErrUnknownPrecision = errors.New("lab: unknown precision")
)

// Arith selects the scalar arithmetic.
type Arith int

const (
	// Plain is native IEEE-754 arithmetic.
	Plain Arith = iota
	// Stochastic is random-rounding arithmetic with significant-digit estimates.
	Stochastic
)

// ParseArith parses "plain" or "stochastic" (case-insensitive).
func ParseArith(s string) (Arith, error) {
	switch strings.ToLower(s) {
	case "plain":
		return Plain, nil
	case "stochastic":
		return Stochastic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownArith, s)
	}
}

// String returns the configuration name of a.
func (a Arith) String() string {
	switch a {
	case Plain:
		return "plain"
	case Stochastic:
		return "stochastic"
	default:
		return fmt.Sprintf("Arith(%d)", int(a))
	}
}

// Precision selects the floating-point width.
type Precision int

const (
	// Auto uses the exercise's own default precision.
	Auto Precision = iota
	// Single is float32.
	Single
	// Double is float64.
	Double
)

// ParsePrecision parses "auto", "single" or "double" (case-insensitive).
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, nil
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrecision, s)
	}
}

// String returns the configuration name of p.
func (p Precision) String() string {
	switch p {
	case Auto:
		return "auto"
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// Env is everything a run needs from the outside world.
type Env struct {
	Out       io.Writer          // report destination
	Log       logrus.FieldLogger // structured log; nil discards
	Config    config.Config      // exercise parameters
	Arith     Arith              // arithmetic of the run
	Precision Precision          // Auto picks each exercise's default
	Seed      uint64             // stochastic seed; 0 seeds from the clock
}

// NewEnv builds an Env from a validated configuration.
func NewEnv(out io.Writer, log logrus.FieldLogger, cfg config.Config) (Env, error) {
	a, err := ParseArith(cfg.Arith)
	if err != nil {
		return Env{}, err
	}
	p, err := ParsePrecision(cfg.Precision)
	if err != nil {
		return Env{}, err
	}

	return Env{Out: out, Log: log, Config: cfg, Arith: a, Precision: p, Seed: cfg.Seed}, nil
}

func (e Env) logger() logrus.FieldLogger {
	if e.Log == nil {
		return logging.Discard()
	}

	return e.Log
}
