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

package generator

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/distgen/config"
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/stochastic/distribution"
	"github.com/0xsoniclabs/distgen/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/distgen/stochastic/trace"
	"github.com/0xsoniclabs/distgen/utils"
	"github.com/urfave/cli/v2"
)

// StatsCommand reports the occurrences of numbers recorded in a trace file.
var StatsCommand = cli.Command{
	Action:    statsAction,
	Name:      "stats",
	Usage:     "reports occurrences of the numbers recorded in a trace file",
	ArgsUsage: "[<trace-file>]",
	Flags: []cli.Flag{
		&utils.NumbersFlag,
		&utils.ProbabilitiesFlag,
		&utils.AlphaFlag,
		&utils.TraceFileFlag,
		&utils.OutputFlag,
		&utils.ReportDbFlag,
		&utils.ChartFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The stats command reads the numbers recorded by draw --trace-file and reports
their occurrences. If --numbers or --probabilities is given, the recorded
numbers are tested against that distribution.`,
}

func statsAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx, config.TraceFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Stats")

	var expected distribution.Distribution
	if ctx.IsSet(utils.NumbersFlag.Name) || ctx.IsSet(utils.ProbabilitiesFlag.Name) {
		expected, err = newDistribution(cfg.Numbers, cfg.Probabilities)
		if err != nil {
			return err
		}
	}

	h, err := readTrace(cfg.TraceFile)
	if err != nil {
		return err
	}
	log.Noticef("Read %d numbers from %v", h.Total(), cfg.TraceFile)

	return report(ctx.App.Writer, cfg, log, cfg.RandomSeed, h, expected)
}

// readTrace counts the numbers recorded in a trace file.
func readTrace(filename string) (h *discrete.Histogram, err error) {
	r, err := trace.NewFileReader(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, r.Close())
	}()

	h = discrete.NewHistogram()
	if err = trace.ForEach(r, h.Add); err != nil {
		return nil, fmt.Errorf("cannot read trace file %v; %w", filename, err)
	}
	return h, nil
}
