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
	"fmt"

	"github.com/0xsoniclabs/distgen/config"
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/utils"
	"github.com/urfave/cli/v2"
)

// generationFlags are shared by the commands generating numbers.
var generationFlags = []cli.Flag{
	&utils.IterationsFlag,
	&utils.RandomSeedFlag,
	&utils.WorkersFlag,
	&utils.AlphaFlag,
	&utils.TraceFileFlag,
	&utils.OutputFlag,
	&utils.ReportDbFlag,
	&utils.ChartFlag,
	&utils.QuietFlag,
	&logger.LogLevelFlag,
}

// DrawCommand generates random numbers following a distribution given on the command line.
var DrawCommand = cli.Command{
	Action: drawAction,
	Name:   "draw",
	Usage:  "generates random numbers following a discrete distribution",
	Flags: append([]cli.Flag{
		&utils.NumbersFlag,
		&utils.ProbabilitiesFlag,
	}, generationFlags...),
	Description: `
The draw command generates --iterations random numbers. Each number is one of
--numbers, drawn with the probability given at the same position in
--probabilities. Probabilities must lie strictly between 0 and 1 and sum to 1.
The number of occurrences of each number is reported when done.`,
}

func drawAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Draw")
	return run(ctx, cfg, log)
}

// run generates the numbers and reports their occurrences.
func run(ctx *cli.Context, cfg *config.Config, log logger.Logger) error {
	if !cfg.Quiet {
		_, err := fmt.Fprintf(ctx.App.Writer, "Generating %d random numbers using the provided numbers distribution...\n", cfg.Iterations)
		if err != nil {
			return err
		}
	}
	res, err := Generate(ctx.Context, cfg, log)
	if err != nil {
		return err
	}
	return report(ctx.App.Writer, cfg, log, res.Seed, res.Histogram, res.Expected)
}
