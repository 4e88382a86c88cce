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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xsoniclabs/distgen/config"
	"github.com/0xsoniclabs/distgen/logger"
	"github.com/0xsoniclabs/distgen/stochastic/distribution"
	"github.com/0xsoniclabs/distgen/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/distgen/stochastic/trace"
	"golang.org/x/sync/errgroup"
)

// cancellation is checked once per this many draws
const checkInterval = 4096

// Result holds the outcome of a generation run.
type Result struct {
	Seed      int64                     // seed of the random source
	Expected  distribution.Distribution // distribution the numbers were drawn from
	Histogram *discrete.Histogram       // occurrences of the drawn numbers
}

// Generate validates the configured distribution and draws cfg.Iterations numbers from it.
// Drawn numbers are recorded in a trace file if one is configured.
func Generate(ctx context.Context, cfg *config.Config, log logger.Logger) (res *Result, err error) {
	expected, err := newDistribution(cfg.Numbers, cfg.Probabilities)
	if err != nil {
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("Using random seed %d", seed)

	var src distribution.Source = distribution.NewSource(seed)
	if cfg.Workers > 1 {
		src = distribution.NewSyncSource(src)
	}
	sampler, err := distribution.New(expected, src)
	if err != nil {
		return nil, fmt.Errorf("cannot create sampler; %w", err)
	}

	var sink trace.FileWriter
	if cfg.TraceFile != "" {
		sink, err = trace.NewFileWriter(cfg.TraceFile)
		if err != nil {
			return nil, err
		}
		defer func() {
			err = errors.Join(err, sink.Close())
		}()
		log.Noticef("Recording generated numbers to %v", cfg.TraceFile)
	}

	start := time.Now()
	h, err := draw(ctx, sampler, cfg.Iterations, cfg.Workers, sink)
	if err != nil {
		return nil, err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Generated %d numbers in %vh %vm %vs", h.Total(), hours, minutes, seconds)

	return &Result{Seed: seed, Expected: expected, Histogram: h}, nil
}

// newDistribution validates outcomes and probabilities and pairs them up.
func newDistribution(outcomes []int, probabilities []float64) (distribution.Distribution, error) {
	if err := distribution.Validate(outcomes, probabilities); err != nil {
		return nil, fmt.Errorf("invalid distribution; %w", err)
	}
	d, err := distribution.ToDistribution(outcomes, probabilities)
	if err != nil {
		return nil, fmt.Errorf("invalid distribution; %w", err)
	}
	return d, nil
}

// draw draws iterations numbers from the sampler using the given number of workers. A trace
// sink, if not nil, receives every drawn number in order and requires a single worker.
func draw(ctx context.Context, sampler *distribution.Sampler, iterations int, workers int, sink trace.FileWriter) (*discrete.Histogram, error) {
	if workers < 1 {
		return nil, fmt.Errorf("number of workers must be at least 1, got %d", workers)
	}
	if sink != nil && workers > 1 {
		return nil, fmt.Errorf("trace file requires a single worker, got %d workers", workers)
	}

	histograms := make([]*discrete.Histogram, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		// spread the remainder over the first workers
		n := iterations / workers
		if w < iterations%workers {
			n++
		}
		h := discrete.NewHistogram()
		histograms[w] = h
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%checkInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				v := sampler.Draw()
				h.Add(v)
				if sink != nil {
					if err := sink.WriteOutcome(v); err != nil {
						return fmt.Errorf("cannot record number %d; %w", v, err)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := discrete.NewHistogram()
	for _, h := range histograms {
		res.Merge(h)
	}
	return res, nil
}
