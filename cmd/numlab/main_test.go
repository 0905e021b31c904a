// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd(&app{v: viper.New(), logOut: io.Discard})
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "gauss     single  solving a linear system")
	require.Contains(t, out, "rump      single  polynomial function of two variables")
}

func TestConfigDump(t *testing.T) {
	out, err := execute(t, "config", "--arith", "stochastic", "--seed", "9")
	require.NoError(t, err)
	require.Contains(t, out, "arith: stochastic")
	require.Contains(t, out, "seed: 9")
	require.Contains(t, out, "order: 11")
}

// Every persistent flag reaches its configuration key.
func TestFlagsBindToConfigKeys(t *testing.T) {
	out, err := execute(t, "config",
		"--precision", "single",
		"--cancellation-level", "6",
		"--log-level", "debug",
	)
	require.NoError(t, err)
	require.Contains(t, out, "precision: single")
	require.Contains(t, out, "cancellation_level: 6")
	require.Contains(t, out, "log_level: debug")
}

func TestRunExercise(t *testing.T) {
	out, err := execute(t, "rump", "--arith", "stochastic", "--seed", "3", "--precision", "double")
	require.NoError(t, err)
	require.Contains(t, out, "arithmetic: float64_st")
	require.Contains(t, out, "res=")
}

func TestRunAllSubset(t *testing.T) {
	out, err := execute(t, "all", "muller", "rump")
	require.NoError(t, err)
	require.Contains(t, out, "U(30) = ")
	require.Contains(t, out, "res=")
}

func TestBadFlags(t *testing.T) {
	_, err := execute(t, "gauss", "--arith", "interval")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "all", "lorenz")
	require.Error(t, err)

	_, err = execute(t, "gauss", "--config", "missing.yaml")
	require.Error(t, err)
}
