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
	"fmt"

	"github.com/0xsoniclabs/distgen/utils"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// An enums of argument modes used by distgen commands
const (
	NoArgs ArgumentMode = iota
	TraceFileArg
)

// Config represents execution configuration for distgen commands.
type Config struct {
	AppName     string
	CommandName string

	Numbers       []int     // allowed outcomes of the distribution
	Probabilities []float64 // probability of each outcome

	Alpha      float64 // significance level of the goodness-of-fit test
	Chart      string  // html chart of the frequencies
	Iterations int     // number of generated numbers
	LogLevel   string  // level of the logger
	Output     string  // file the report is appended to
	Quiet      bool    // disable console report
	RandomSeed int64   // seed of the random generator
	ReportDb   string  // sqlite3 database the report is inserted into
	TraceFile  string  // gzip trace of generated numbers
	Workers    int     // number of drawing goroutines

	rawNumbers       string
	rawProbabilities string
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	if err := cfg.parseArguments(ctx, mode); err != nil {
		return nil, err
	}

	if err := cfg.parseDistribution(); err != nil {
		return nil, err
	}

	if err := cfg.validate(mode); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseArguments reads positional arguments required by the mode.
func (cfg *Config) parseArguments(ctx *cli.Context, mode ArgumentMode) error {
	argv := ctx.Args()
	switch mode {
	case NoArgs:
		if argv.Len() != 0 {
			return fmt.Errorf("command requires no arguments, got %d", argv.Len())
		}
	case TraceFileArg:
		if argv.Len() > 1 {
			return fmt.Errorf("command requires at most one trace file argument, got %d", argv.Len())
		}
		if argv.Len() == 1 {
			cfg.TraceFile = argv.Get(0)
		}
		if cfg.TraceFile == "" {
			return fmt.Errorf("trace file is required; specify it as an argument or with --%v", utils.TraceFileFlag.Name)
		}
	default:
		return fmt.Errorf("unknown argument mode %d", mode)
	}
	return nil
}

// parseDistribution turns the textual lists of outcomes and probabilities into slices.
func (cfg *Config) parseDistribution() error {
	var err error
	cfg.Numbers, err = utils.ParseNumbers(cfg.rawNumbers)
	if err != nil {
		return fmt.Errorf("cannot parse --%v; %w", utils.NumbersFlag.Name, err)
	}
	cfg.Probabilities, err = utils.ParseProbabilities(cfg.rawProbabilities)
	if err != nil {
		return fmt.Errorf("cannot parse --%v; %w", utils.ProbabilitiesFlag.Name, err)
	}
	return nil
}

func (cfg *Config) validate(mode ArgumentMode) error {
	if cfg.Iterations <= 0 {
		return fmt.Errorf("number of iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("number of workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return fmt.Errorf("significance level must be in (0, 1), got %v", cfg.Alpha)
	}
	if cfg.TraceFile != "" && cfg.Workers > 1 && mode == NoArgs {
		return fmt.Errorf("trace file requires a single worker, got %d workers", cfg.Workers)
	}
	return nil
}
