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
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/stochastic/distribution"
	"github.com/0xsoniclabs/distgen/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp(out *bytes.Buffer, in string) *cli.App {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&DrawCommand, &PromptCommand, &StatsCommand}
	app.Writer = out
	app.Reader = strings.NewReader(in)
	return app
}

func TestCmd_RunDrawCommand(t *testing.T) {
	// given
	var out bytes.Buffer
	app := newTestApp(&out, "")
	args := utils.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(utils.NumbersFlag.Name, "1 2 3").
		Flag(utils.ProbabilitiesFlag.Name, "0.2 0.3 0.5").
		Flag(utils.IterationsFlag.Name, 1000).
		Flag(utils.RandomSeedFlag.Name, int64(7)).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Generating 1000 random numbers using the provided numbers distribution...\n"))
	for _, v := range []string{"1", "2", "3"} {
		assert.Contains(t, text, "Number of occurrences for "+v+": ")
	}
	assert.Contains(t, text, "OUTCOME")
	assert.Contains(t, text, "1000")
}

func TestCmd_RunDrawCommandWithDefaults(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(&out, "")
	args := utils.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()

	require.NoError(t, app.Run(args))
	assert.Contains(t, out.String(), "Generating 10000 random numbers")
	assert.Contains(t, out.String(), "Number of occurrences for 1: ")
}

func TestCmd_DrawCommandRejectsInvalidDistribution(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(&out, "")
	args := utils.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(utils.NumbersFlag.Name, "1,2").
		Flag(utils.ProbabilitiesFlag.Name, "0.5,0.6").
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()

	err := app.Run(args)
	assert.ErrorIs(t, err, distribution.ErrProbabilitySum)
	assert.NotContains(t, out.String(), "Number of occurrences")
}

func TestCmd_StatsReplaysDrawnNumbers(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "trace.gz")

	var drawOut bytes.Buffer
	drawArgs := utils.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(utils.NumbersFlag.Name, "-1 0 1").
		Flag(utils.ProbabilitiesFlag.Name, "0.25 0.25 0.5").
		Flag(utils.IterationsFlag.Name, 2000).
		Flag(utils.RandomSeedFlag.Name, int64(3)).
		Flag(utils.TraceFileFlag.Name, traceFile).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()
	require.NoError(t, newTestApp(&drawOut, "").Run(drawArgs))

	var statsOut bytes.Buffer
	statsArgs := utils.NewArgs("test").
		Arg(StatsCommand.Name).
		Flag(utils.NumbersFlag.Name, "-1 0 1").
		Flag(utils.ProbabilitiesFlag.Name, "0.25 0.25 0.5").
		Flag(logger.LogLevelFlag.Name, "critical").
		Arg(traceFile).
		Build()
	require.NoError(t, newTestApp(&statsOut, "").Run(statsArgs))

	report := strings.TrimPrefix(drawOut.String(), "Generating 2000 random numbers using the provided numbers distribution...\n")
	assert.Equal(t, report, statsOut.String())
}

func TestCmd_StatsCommandWithoutDistribution(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "trace.gz")
	drawArgs := utils.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(utils.IterationsFlag.Name, 100).
		Flag(utils.TraceFileFlag.Name, traceFile).
		Flag(utils.QuietFlag.Name, true).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()
	var drawOut bytes.Buffer
	require.NoError(t, newTestApp(&drawOut, "").Run(drawArgs))
	assert.Empty(t, drawOut.String())

	var statsOut bytes.Buffer
	statsArgs := utils.NewArgs("test").
		Arg(StatsCommand.Name).
		Flag(utils.TraceFileFlag.Name, traceFile).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()
	require.NoError(t, newTestApp(&statsOut, "").Run(statsArgs))
	assert.Contains(t, statsOut.String(), "Number of occurrences for ")
	assert.Contains(t, statsOut.String(), "TOTAL")
}

func TestCmd_StatsCommandRequiresTraceFile(t *testing.T) {
	var out bytes.Buffer
	args := utils.NewArgs("test").
		Arg(StatsCommand.Name).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()

	err := newTestApp(&out, "").Run(args)
	assert.ErrorContains(t, err, "trace file is required")
}

func TestCmd_RunPromptCommand(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(&out, "1 2 3\n0.2 0.3 0.5\n")
	args := utils.NewArgs("test").
		Arg(PromptCommand.Name).
		Flag(utils.IterationsFlag.Name, 500).
		Flag(logger.LogLevelFlag.Name, "critical").
		Build()

	require.NoError(t, app.Run(args))
	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "Enter a list of integers separated by spaces:", lines[0])
	assert.Equal(t, "Enter a list of doubles separated by spaces:", lines[1])
	assert.Equal(t, "Generating 500 random numbers using the provided numbers distribution...", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Number of occurrences for 1: "))
}

func TestCmd_PromptCommandInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "no input", input: "", wantErr: "cannot read input"},
		{name: "missing probabilities", input: "1 2\n", wantErr: "cannot read input"},
		{name: "not a number", input: "1 x\n0.5 0.5\n", wantErr: `invalid number "x"`},
		{name: "not a probability", input: "1 2\n0.5 y\n", wantErr: `invalid probability "y"`},
		{name: "invalid distribution", input: "1 2\n0.5 0.4\n", wantErr: distribution.ErrProbabilitySum.Error()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			args := utils.NewArgs("test").
				Arg(PromptCommand.Name).
				Flag(logger.LogLevelFlag.Name, "critical").
				Build()
			err := newTestApp(&out, test.input).Run(args)
			assert.ErrorContains(t, err, test.wantErr)
		})
	}
}

func TestPromptLine_AcceptsLastLineWithoutBreak(t *testing.T) {
	var out bytes.Buffer
	line, err := promptLine(&out, bufio.NewReader(strings.NewReader(" 0.5 0.5 ")), "prompt:")
	require.NoError(t, err)
	assert.Equal(t, "0.5 0.5", line)
	assert.Equal(t, "prompt:\n", out.String())
}
