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

package distribution

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/floats"
)

// Sampler draws outcomes of a finite discrete distribution. The
// distribution is turned into a table of cumulative probabilities once;
// each draw is a binary search for the smallest threshold that is greater
// or equal to a uniform random value. A Sampler is immutable after
// construction.
type Sampler struct {
	thresholds []float64 // strictly increasing cumulative probabilities
	outcomes   []int     // outcomes[i] is drawn for values in (thresholds[i-1], thresholds[i]]
	src        Source
}

// New creates a sampler for the given distribution. The distribution is
// expected to have been validated; only unset entries are rejected.
// Outcomes with a non-positive probability can never be drawn and are
// left out of the table.
func New(dist Distribution, src Source) (*Sampler, error) {
	if dist == nil {
		return nil, errors.Wrap(ErrNullInput, "distribution")
	}
	if src == nil {
		return nil, errors.Wrap(ErrNullInput, "random source")
	}

	// iterate in ascending order of outcomes so that a seeded source
	// reproduces the same sequence of draws
	keys := maps.Keys(dist)
	sort.Ints(keys)

	outcomes := make([]int, 0, len(keys))
	probabilities := make([]float64, 0, len(keys))
	for _, k := range keys {
		p := dist[k]
		if math.IsNaN(p) {
			return nil, errors.Wrapf(ErrNullEntry, "outcome %d", k)
		}
		if p <= 0.0 {
			continue
		}
		outcomes = append(outcomes, k)
		probabilities = append(probabilities, p)
	}
	if len(outcomes) == 0 {
		return nil, ErrEmptyDistribution
	}

	return &Sampler{
		thresholds: floats.CumSum(make([]float64, len(probabilities)), probabilities),
		outcomes:   outcomes,
		src:        src,
	}, nil
}

// Draw returns a random outcome of the distribution.
func (s *Sampler) Draw() int {
	r := s.src.Float64()
	i := sort.SearchFloat64s(s.thresholds, r)
	// rounding may leave the last threshold slightly below one
	if i == len(s.thresholds) {
		i--
	}
	return s.outcomes[i]
}

// Outcomes returns the drawable outcomes in ascending order.
func (s *Sampler) Outcomes() []int {
	res := make([]int, len(s.outcomes))
	copy(res, s.outcomes)
	return res
}
