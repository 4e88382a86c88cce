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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xsoniclabs/distgen/config"
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/utils"
	"github.com/urfave/cli/v2"
)

// PromptCommand generates random numbers following a distribution read from standard input.
var PromptCommand = cli.Command{
	Action: promptAction,
	Name:   "prompt",
	Usage:  "reads a discrete distribution from standard input and generates random numbers following it",
	Flags:  generationFlags,
	Description: `
The prompt command asks for a line of integers and a line of probabilities,
each separated by spaces, and then behaves like the draw command.`,
}

func promptAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Prompt")

	in := bufio.NewReader(ctx.App.Reader)
	line, err := promptLine(ctx.App.Writer, in, "Enter a list of integers separated by spaces:")
	if err != nil {
		return err
	}
	if cfg.Numbers, err = utils.ParseNumbers(line); err != nil {
		return err
	}

	line, err = promptLine(ctx.App.Writer, in, "Enter a list of doubles separated by spaces:")
	if err != nil {
		return err
	}
	if cfg.Probabilities, err = utils.ParseProbabilities(line); err != nil {
		return err
	}

	return run(ctx, cfg, log)
}

// promptLine prints the prompt and reads one line of input. A last line without
// a line break is accepted.
func promptLine(w io.Writer, r *bufio.Reader, prompt string) (string, error) {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("cannot read input; %w", err)
	}
	return strings.TrimSpace(line), nil
}
