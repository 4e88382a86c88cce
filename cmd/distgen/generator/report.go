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
	"io"

	"github.com/0xsoniclabs/distgen/config"
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/distgen/stochastic/visualizer"
	"github.com/0xsoniclabs/distgen/utils"
)

const (
	createOccurrencesTable = `CREATE TABLE IF NOT EXISTS occurrences (
	seed INTEGER,
	iterations INTEGER,
	outcome INTEGER,
	count INTEGER,
	frequency FLOAT,
	expected FLOAT
)`
	insertOccurrence = `INSERT INTO occurrences (seed, iterations, outcome, count, frequency, expected) VALUES (?, ?, ?, ?, ?, ?)`
)

// report outputs the occurrences of the drawn numbers to the console, the output file,
// the report database and the chart, whichever is configured. The goodness of fit is
// logged if an expected distribution is known.
func report(w io.Writer, cfg *config.Config, log logger.Logger, seed int64, h *discrete.Histogram, expected map[int]float64) (err error) {
	text := func() string {
		return discrete.Summary(h) + discrete.Table(h, expected)
	}

	printers := utils.NewPrinters()
	if !cfg.Quiet {
		printers.AddPrinterToWriter(w, text)
	}
	printers.AddPrinterToFile(cfg.Output, func() string {
		return text() + "\n"
	})
	_, err = printers.AddPrinterToSqlite3(cfg.ReportDb, createOccurrencesTable, insertOccurrence, func() [][]any {
		return occurrenceRows(seed, h, expected)
	})
	if err != nil {
		return errors.Join(err, printers.Close())
	}
	defer func() {
		err = errors.Join(err, printers.Close())
	}()

	if err = printers.Print(); err != nil {
		return fmt.Errorf("cannot print report; %w", err)
	}
	if cfg.Output != "" {
		log.Noticef("Report appended to %v", cfg.Output)
	}
	if cfg.ReportDb != "" {
		log.Noticef("Report inserted into %v", cfg.ReportDb)
	}

	if cfg.Chart != "" {
		if err = visualizer.WriteFrequencyChart(cfg.Chart, h, expected); err != nil {
			return err
		}
		log.Noticef("Chart written to %v", cfg.Chart)
	}

	logGoodnessOfFit(log, h, expected, cfg.Alpha)
	return nil
}

// occurrenceRows returns one row per outcome for the occurrences table.
func occurrenceRows(seed int64, h *discrete.Histogram, expected map[int]float64) [][]any {
	rows := discrete.Rows(h, expected)
	res := make([][]any, 0, len(rows))
	for _, row := range rows {
		res = append(res, append([]any{seed, h.Total()}, row...))
	}
	return res
}

func logGoodnessOfFit(log logger.Logger, h *discrete.Histogram, expected map[int]float64, alpha float64) {
	if len(expected) == 0 {
		return
	}
	fit, err := discrete.GoodnessOfFit(h, expected, alpha)
	if err != nil {
		log.Warningf("Goodness of fit not evaluated; %v", err)
		return
	}
	if fit.Passed() {
		log.Noticef("Generated numbers follow the distribution; %v", fit)
	} else {
		log.Warningf("Generated numbers deviate from the distribution; %v", fit)
	}
}
