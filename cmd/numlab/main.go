// SPDX-License-Identifier: MIT

// Command numlab runs the numerical-analysis lab programs under plain or
// stochastic arithmetic.
//
//	numlab gauss --arith stochastic
//	numlab all --precision double --seed 42
//	numlab config > numlab.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/lab"
)

// app holds what the subcommands share once the root pre-run has loaded the
// configuration.
type app struct {
	v          *viper.Viper
	configPath string
	logOut     io.Writer

	cfg config.Config
	log *logrus.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "numlab",
		Short:         "Numerical analysis lab programs with plain and stochastic arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "configuration file (default: ./"+config.DefaultFile+" when present)")
	pf.String("arith", "plain", "arithmetic: plain or stochastic")
	pf.String("precision", "auto", "precision: auto, single or double")
	pf.Uint64("seed", 0, "stochastic rounding seed (0 seeds from the clock)")
	pf.Int("cancellation-level", 4, "digit loss reported as a cancellation")
	pf.String("log-level", "info", "log level")
	for key, flag := range map[string]string{
		"arith":              "arith",
		"precision":          "precision",
		"seed":               "seed",
		"cancellation_level": "cancellation-level",
		"log_level":          "log-level",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("numlab: bind flag %q to %q: %v", flag, key, err))
		}
	}

	for _, e := range lab.Registry() {
		root.AddCommand(&cobra.Command{
			Use:   e.Name,
			Short: "Run the " + e.Name + " exercise",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, []string{e.Name})
			},
		})
	}
	root.AddCommand(
		&cobra.Command{
			Use:       "all [exercise...]",
			Short:     "Run several exercises concurrently, printing reports in order",
			ValidArgs: lab.Names(),
			Args:      cobra.OnlyValidArgs,
			RunE:      a.run,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the exercises",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				for _, e := range lab.Registry() {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-7s %s\n", e.Name, e.Default, e.Title); err != nil {
						return err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out, err := a.cfg.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
	)

	return root
}

// load builds the effective configuration and the logger.
func (a *app) load() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, a.logOut)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}

func (a *app) run(cmd *cobra.Command, names []string) error {
	env, err := lab.NewEnv(cmd.OutOrStdout(), a.log, a.cfg)
	if err != nil {
		return err
	}
	if len(names) == 1 {
		return lab.Run(cmd.Context(), env, names[0])
	}

	return lab.RunAll(cmd.Context(), env, names)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{v: viper.New(), logOut: os.Stderr, log: logging.Discard()}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		logrus.New().WithError(err).Error("numlab failed")
		stop()
		os.Exit(1)
	}
}
