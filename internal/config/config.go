// SPDX-License-Identifier: MIT

// Package config loads the numlab configuration from defaults, an optional
// YAML file, NUMLAB_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override, e.g.
// NUMLAB_JACOBI_TOLERANCE overrides jacobi.tolerance.
const EnvPrefix = "NUMLAB"

// DefaultFile is the configuration file searched in the working directory
// when no explicit path is given. Its absence is not an error.
const DefaultFile = "numlab.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Accepted values of the enumerated settings.
var (
	Ariths     = []string{"plain", "stochastic"}
	Precisions = []string{"auto", "single", "double"}
	LogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
)

// Config is the effective configuration of a run.
type Config struct {
	Arith             string `mapstructure:"arith" yaml:"arith"`
	Precision         string `mapstructure:"precision" yaml:"precision"`
	Seed              uint64 `mapstructure:"seed" yaml:"seed"`
	CancellationLevel int    `mapstructure:"cancellation_level" yaml:"cancellation_level"`
	LogLevel          string `mapstructure:"log_level" yaml:"log_level"`

	Gauss    GaussConfig    `mapstructure:"gauss" yaml:"gauss"`
	Jacobi   JacobiConfig   `mapstructure:"jacobi" yaml:"jacobi"`
	Logistic LogisticConfig `mapstructure:"logistic" yaml:"logistic"`
	Muller   MullerConfig   `mapstructure:"muller" yaml:"muller"`
	Newton   NewtonConfig   `mapstructure:"newton" yaml:"newton"`
	Hilbert  HilbertConfig  `mapstructure:"hilbert" yaml:"hilbert"`
	Rump     RumpConfig     `mapstructure:"rump" yaml:"rump"`
}

// GaussConfig controls the elimination trace.
type GaussConfig struct {
	Trace bool `mapstructure:"trace" yaml:"trace"`
}

// JacobiConfig holds the Jacobi iteration settings. The stochastic run uses
// its own tolerance: the point of that run is to reach the precision limit.
type JacobiConfig struct {
	Seed                int     `mapstructure:"seed" yaml:"seed"`
	Tolerance           float64 `mapstructure:"tolerance" yaml:"tolerance"`
	StochasticTolerance float64 `mapstructure:"stochastic_tolerance" yaml:"stochastic_tolerance"`
	MaxIter             int     `mapstructure:"max_iter" yaml:"max_iter"`
	Start               float64 `mapstructure:"start" yaml:"start"`
}

// LogisticConfig holds the logistic map settings.
type LogisticConfig struct {
	Rate           float64 `mapstructure:"rate" yaml:"rate"`
	Start          float64 `mapstructure:"start" yaml:"start"`
	MaxIter        int     `mapstructure:"max_iter" yaml:"max_iter"`
	ReportEvery    int     `mapstructure:"report_every" yaml:"report_every"`
	StagnationStop bool    `mapstructure:"stagnation_stop" yaml:"stagnation_stop"`
}

// MullerConfig holds the recurrence length.
type MullerConfig struct {
	Last int `mapstructure:"last" yaml:"last"`
}

// NewtonConfig holds the Newton iteration settings.
type NewtonConfig struct {
	Start       float64 `mapstructure:"start" yaml:"start"`
	Tolerance   float64 `mapstructure:"tolerance" yaml:"tolerance"`
	MaxIter     int     `mapstructure:"max_iter" yaml:"max_iter"`
	StopOnEqual bool    `mapstructure:"stop_on_equal" yaml:"stop_on_equal"`
}

// HilbertConfig holds the matrix order.
type HilbertConfig struct {
	Order int `mapstructure:"order" yaml:"order"`
}

// RumpConfig holds the evaluation point.
type RumpConfig struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
}

// Default returns the textbook configuration.
func Default() Config {
	return Config{
		Arith:             "plain",
		Precision:         "auto",
		Seed:              0,
		CancellationLevel: 4,
		LogLevel:          "info",
		Gauss:             GaussConfig{Trace: true},
		Jacobi: JacobiConfig{
			Seed:                23,
			Tolerance:           1e-2,
			StochasticTolerance: 1e-4,
			MaxIter:             1000,
			Start:               10,
		},
		Logistic: LogisticConfig{Rate: 3.6, Start: 0.6, MaxIter: 200, ReportEvery: 50, StagnationStop: true},
		Muller:   MullerConfig{Last: 30},
		Newton:   NewtonConfig{Start: 0.5, Tolerance: 1e-12, MaxIter: 100, StopOnEqual: true},
		Hilbert:  HilbertConfig{Order: 11},
		Rump:     RumpConfig{X: 77617, Y: 33096},
	}
}

// SetDefaults registers every key of Default on v, so that environment
// variables are honored for all of them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("arith", d.Arith)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("cancellation_level", d.CancellationLevel)
	v.SetDefault("log_level", d.LogLevel)

	v.SetDefault("gauss.trace", d.Gauss.Trace)

	v.SetDefault("jacobi.seed", d.Jacobi.Seed)
	v.SetDefault("jacobi.tolerance", d.Jacobi.Tolerance)
	v.SetDefault("jacobi.stochastic_tolerance", d.Jacobi.StochasticTolerance)
	v.SetDefault("jacobi.max_iter", d.Jacobi.MaxIter)
	v.SetDefault("jacobi.start", d.Jacobi.Start)

	v.SetDefault("logistic.rate", d.Logistic.Rate)
	v.SetDefault("logistic.start", d.Logistic.Start)
	v.SetDefault("logistic.max_iter", d.Logistic.MaxIter)
	v.SetDefault("logistic.report_every", d.Logistic.ReportEvery)
	v.SetDefault("logistic.stagnation_stop", d.Logistic.StagnationStop)

	v.SetDefault("muller.last", d.Muller.Last)

	v.SetDefault("newton.start", d.Newton.Start)
	v.SetDefault("newton.tolerance", d.Newton.Tolerance)
	v.SetDefault("newton.max_iter", d.Newton.MaxIter)
	v.SetDefault("newton.stop_on_equal", d.Newton.StopOnEqual)

	v.SetDefault("hilbert.order", d.Hilbert.Order)

	v.SetDefault("rump.x", d.Rump.X)
	v.SetDefault("rump.y", d.Rump.Y)
}

// Load reads the configuration into a Config.
//
// path selects the YAML file; an empty path searches DefaultFile in the
// working directory and silently skips it when missing. Flags bound on v
// before the call take precedence over everything else.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		// Only the exact file name counts; an extensionless "numlab" (the
		// built binary) must not be picked up by a name search.
		switch _, err := os.Stat(DefaultFile); {
		case err == nil:
			v.SetConfigFile(DefaultFile)
			if err = v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("config: read %s: %w", DefaultFile, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("config: stat %s: %w", DefaultFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting and reports the first invalid one.
func (c Config) Validate() error {
	switch {
	case !lo.Contains(Ariths, c.Arith):
		return invalid("arith", c.Arith)
	case !lo.Contains(Precisions, c.Precision):
		return invalid("precision", c.Precision)
	case !lo.Contains(LogLevels, strings.ToLower(c.LogLevel)):
		return invalid("log_level", c.LogLevel)
	case c.CancellationLevel < 1:
		return invalid("cancellation_level", c.CancellationLevel)
	case !(c.Jacobi.Tolerance > 0):
		return invalid("jacobi.tolerance", c.Jacobi.Tolerance)
	case !(c.Jacobi.StochasticTolerance > 0):
		return invalid("jacobi.stochastic_tolerance", c.Jacobi.StochasticTolerance)
	case c.Jacobi.MaxIter < 1:
		return invalid("jacobi.max_iter", c.Jacobi.MaxIter)
	case c.Logistic.MaxIter < 1:
		return invalid("logistic.max_iter", c.Logistic.MaxIter)
	case c.Logistic.ReportEvery < 0:
		return invalid("logistic.report_every", c.Logistic.ReportEvery)
	case c.Muller.Last < 2:
		return invalid("muller.last", c.Muller.Last)
	case !(c.Newton.Tolerance > 0):
		return invalid("newton.tolerance", c.Newton.Tolerance)
	case c.Newton.MaxIter < 1:
		return invalid("newton.max_iter", c.Newton.MaxIter)
	case c.Hilbert.Order < 1:
		return invalid("hilbert.order", c.Hilbert.Order)
	case c.Rump.Y == 0:
		return invalid("rump.y", c.Rump.Y)
	}

	return nil
}

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, key, v)
}

// YAML renders c as a YAML document.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return out, nil
}
