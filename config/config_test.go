// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"testing"

	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runConfig runs a command with the given args and returns the config it built.
func runConfig(t *testing.T, mode ArgumentMode, args *utils.ArgsBuilder) (*Config, error) {
	t.Helper()
	var cfg *Config
	cmd := cli.Command{
		Name: "draw",
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = NewConfig(ctx, mode)
			return err
		},
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
			&utils.NumbersFlag,
			&utils.ProbabilitiesFlag,
			&utils.IterationsFlag,
			&utils.RandomSeedFlag,
			&utils.WorkersFlag,
			&utils.AlphaFlag,
			&utils.TraceFileFlag,
			&utils.OutputFlag,
			&utils.ReportDbFlag,
			&utils.ChartFlag,
			&utils.QuietFlag,
		},
	}
	app := cli.NewApp()
	app.Commands = []*cli.Command{&cmd}
	err := app.Run(args.Build())
	return cfg, err
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := runConfig(t, NoArgs, utils.NewArgs("test").Arg("draw"))
	require.NoError(t, err)
	assert.Equal(t, "draw", cfg.CommandName)
	assert.Equal(t, []int{-1, 0, 1, 2, 3}, cfg.Numbers)
	assert.Equal(t, []float64{0.01, 0.3, 0.58, 0.1, 0.01}, cfg.Probabilities)
	assert.Equal(t, 10000, cfg.Iterations)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 0.05, cfg.Alpha)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.False(t, cfg.Quiet)
}

func TestNewConfig_UserValues(t *testing.T) {
	args := utils.NewArgs("test").
		Arg("draw").
		Flag(utils.NumbersFlag.Name, "1 2 3").
		Flag(utils.ProbabilitiesFlag.Name, "0.2,0.3,0.5").
		Flag(utils.IterationsFlag.Name, 50).
		Flag(utils.RandomSeedFlag.Name, int64(999)).
		Flag(utils.WorkersFlag.Name, 4).
		Flag(utils.AlphaFlag.Name, 0.01).
		Flag(utils.OutputFlag.Name, "report.txt").
		Flag(utils.QuietFlag.Name, true).
		Flag(logger.LogLevelFlag.Name, "debug")

	cfg, err := runConfig(t, NoArgs, args)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, cfg.Numbers)
	assert.Equal(t, []float64{0.2, 0.3, 0.5}, cfg.Probabilities)
	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, int64(999), cfg.RandomSeed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0.01, cfg.Alpha)
	assert.Equal(t, "report.txt", cfg.Output)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		args    *utils.ArgsBuilder
		wantErr string
	}{
		{
			name:    "unparsable numbers",
			args:    utils.NewArgs("test").Arg("draw").Flag(utils.NumbersFlag.Name, "1,x"),
			wantErr: "cannot parse --numbers",
		},
		{
			name:    "unparsable probabilities",
			args:    utils.NewArgs("test").Arg("draw").Flag(utils.ProbabilitiesFlag.Name, "0.5,y"),
			wantErr: "cannot parse --probabilities",
		},
		{
			name:    "zero iterations",
			args:    utils.NewArgs("test").Arg("draw").Flag(utils.IterationsFlag.Name, 0),
			wantErr: "number of iterations must be positive",
		},
		{
			name:    "zero workers",
			args:    utils.NewArgs("test").Arg("draw").Flag(utils.WorkersFlag.Name, 0),
			wantErr: "number of workers must be at least 1",
		},
		{
			name:    "alpha out of range",
			args:    utils.NewArgs("test").Arg("draw").Flag(utils.AlphaFlag.Name, 1.5),
			wantErr: "significance level must be in (0, 1)",
		},
		{
			name: "trace file with many workers",
			args: utils.NewArgs("test").Arg("draw").
				Flag(utils.TraceFileFlag.Name, "trace.gz").
				Flag(utils.WorkersFlag.Name, 2),
			wantErr: "trace file requires a single worker",
		},
		{
			name:    "unexpected argument",
			args:    utils.NewArgs("test").Arg("draw").Arg("extra"),
			wantErr: "command requires no arguments",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runConfig(t, NoArgs, test.args)
			assert.ErrorContains(t, err, test.wantErr)
		})
	}
}

func TestNewConfig_TraceFileArg(t *testing.T) {
	cfg, err := runConfig(t, TraceFileArg, utils.NewArgs("test").Arg("draw").Arg("trace.gz"))
	require.NoError(t, err)
	assert.Equal(t, "trace.gz", cfg.TraceFile)

	cfg, err = runConfig(t, TraceFileArg, utils.NewArgs("test").Arg("draw").Flag(utils.TraceFileFlag.Name, "flag.gz"))
	require.NoError(t, err)
	assert.Equal(t, "flag.gz", cfg.TraceFile)

	_, err = runConfig(t, TraceFileArg, utils.NewArgs("test").Arg("draw"))
	assert.ErrorContains(t, err, "trace file is required")

	_, err = runConfig(t, TraceFileArg, utils.NewArgs("test").Arg("draw").Arg("a.gz").Arg("b.gz"))
	assert.ErrorContains(t, err, "at most one trace file argument")
}
