// Copyright 2024 Fantom Foundation
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
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/utils"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Alpha:      getFlagValue(ctx, utils.AlphaFlag).(float64),
		Chart:      getFlagValue(ctx, utils.ChartFlag).(string),
		Iterations: getFlagValue(ctx, utils.IterationsFlag).(int),
		LogLevel:   getFlagValue(ctx, logger.LogLevelFlag).(string),
		Output:     getFlagValue(ctx, utils.OutputFlag).(string),
		Quiet:      getFlagValue(ctx, utils.QuietFlag).(bool),
		RandomSeed: getFlagValue(ctx, utils.RandomSeedFlag).(int64),
		ReportDb:   getFlagValue(ctx, utils.ReportDbFlag).(string),
		TraceFile:  getFlagValue(ctx, utils.TraceFileFlag).(string),
		Workers:    getFlagValue(ctx, utils.WorkersFlag).(int),

		rawNumbers:       getFlagValue(ctx, utils.NumbersFlag).(string),
		rawProbabilities: getFlagValue(ctx, utils.ProbabilitiesFlag).(string),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	var cmdFlags []cli.Flag
	if ctx.Command != nil {
		cmdFlags = ctx.Command.Flags
	}
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}

	return nil
}
