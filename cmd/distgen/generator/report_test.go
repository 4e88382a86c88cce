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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/distgen/config"
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/stochastic/statistics/discrete"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHistogram(values ...int) *discrete.Histogram {
	h := discrete.NewHistogram()
	for _, v := range values {
		h.Add(v)
	}
	return h
}

func TestOccurrenceRows(t *testing.T) {
	h := newTestHistogram(1, 1, 2, 1)
	rows := occurrenceRows(9, h, map[int]float64{1: 0.5, 2: 0.25, 3: 0.25})
	assert.Equal(t, [][]any{
		{int64(9), uint64(4), 1, uint64(3), 0.75, 0.5},
		{int64(9), uint64(4), 2, uint64(1), 0.25, 0.25},
		{int64(9), uint64(4), 3, uint64(0), 0.0, 0.25},
	}, rows)
}

func TestLogGoodnessOfFit(t *testing.T) {
	expected := map[int]float64{1: 0.5, 2: 0.5}
	tests := []struct {
		name  string
		h     *discrete.Histogram
		setup func(*logger.MockLogger)
	}{
		{
			name: "fitting sample",
			h:    newTestHistogram(1, 2, 1, 2),
			setup: func(log *logger.MockLogger) {
				log.EXPECT().Noticef(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "deviating sample",
			h:    newTestHistogram(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
			setup: func(log *logger.MockLogger) {
				log.EXPECT().Warningf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "unexpected outcome",
			h:    newTestHistogram(1, 2, 5),
			setup: func(log *logger.MockLogger) {
				log.EXPECT().Warningf(gomock.Any(), gomock.Any())
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := logger.NewMockLogger(ctrl)
			test.setup(log)
			logGoodnessOfFit(log, test.h, expected, 0.05)
		})
	}
}

func TestLogGoodnessOfFit_SkipsWithoutDistribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no calls expected
	log := logger.NewMockLogger(ctrl)
	logGoodnessOfFit(log, newTestHistogram(1, 2), nil, 0.05)
}

func TestReport_WritesAllOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Alpha:    0.05,
		Output:   filepath.Join(dir, "report.txt"),
		ReportDb: filepath.Join(dir, "report.db"),
		Chart:    filepath.Join(dir, "chart.html"),
	}
	h := newTestHistogram(1, 2, 2, 3)
	expected := map[int]float64{1: 0.25, 2: 0.5, 3: 0.25}

	var buf bytes.Buffer
	require.NoError(t, report(&buf, cfg, logger.NewLogger("critical", "Test"), 11, h, expected))

	want := discrete.Summary(h) + discrete.Table(h, expected) + "\n"
	assert.Equal(t, want, buf.String())

	content, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, want, string(content))

	chart, err := os.ReadFile(cfg.Chart)
	require.NoError(t, err)
	assert.Contains(t, string(chart), "Expected")

	db, err := sqlx.Open("sqlite3", cfg.ReportDb)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, db.Close())
	}()
	var rows []struct {
		Seed       int64   `db:"seed"`
		Iterations int64   `db:"iterations"`
		Outcome    int     `db:"outcome"`
		Count      int64   `db:"count"`
		Frequency  float64 `db:"frequency"`
		Expected   float64 `db:"expected"`
	}
	require.NoError(t, db.Select(&rows, "SELECT seed, iterations, outcome, count, frequency, expected FROM occurrences ORDER BY outcome"))
	require.Len(t, rows, 3)
	assert.Equal(t, int64(11), rows[1].Seed)
	assert.Equal(t, int64(4), rows[1].Iterations)
	assert.Equal(t, 2, rows[1].Outcome)
	assert.Equal(t, int64(2), rows[1].Count)
	assert.Equal(t, 0.5, rows[1].Frequency)
	assert.Equal(t, 0.5, rows[1].Expected)
}

func TestReport_QuietSkipsConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Alpha: 0.05, Quiet: true}
	require.NoError(t, report(&buf, cfg, logger.NewLogger("critical", "Test"), 0, newTestHistogram(1), nil))
	assert.Empty(t, buf.String())
}

func TestReport_FailsOnBrokenReportDb(t *testing.T) {
	cfg := &config.Config{Alpha: 0.05, ReportDb: t.TempDir()}
	var buf bytes.Buffer
	err := report(&buf, cfg, logger.NewLogger("critical", "Test"), 0, newTestHistogram(1), nil)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
