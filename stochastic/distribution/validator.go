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

	"github.com/cockroachdb/errors"
)

// SumTolerance is the maximal deviation of the probability sum from one.
const SumTolerance = 1e-9

// Distribution maps each outcome to the probability of drawing it.
type Distribution map[int]float64

// Validate checks whether the paired outcomes and probabilities form a
// valid distribution. Probabilities must be set, lie in the open interval
// (0,1) and sum up to one. An unset probability is represented by NaN.
func Validate(outcomes []int, probabilities []float64) error {
	if outcomes == nil {
		return errors.Wrap(ErrNullInput, "outcomes")
	}
	if probabilities == nil {
		return errors.Wrap(ErrNullInput, "probabilities")
	}
	if len(outcomes) != len(probabilities) {
		return errors.Wrapf(ErrSizeMismatch, "%d outcomes, %d probabilities", len(outcomes), len(probabilities))
	}
	for i, p := range probabilities {
		if math.IsNaN(p) {
			return errors.Wrapf(ErrNullElement, "probability at position %d", i)
		}
	}
	total := 0.0
	for i, p := range probabilities {
		if p <= 0.0 || p >= 1.0 {
			return errors.Wrapf(ErrProbabilityRange, "probability %v of outcome %d", p, outcomes[i])
		}
		total += p
	}
	if math.Abs(total-1.0) > SumTolerance {
		return errors.Wrapf(ErrProbabilitySum, "total is %v", total)
	}
	return nil
}

// ToDistribution zips outcomes and probabilities positionally. The input
// is expected to have passed Validate; pairings that cannot be represented
// as a distribution are refused.
func ToDistribution(outcomes []int, probabilities []float64) (Distribution, error) {
	if outcomes == nil || probabilities == nil {
		return nil, ErrNullInput
	}
	if len(outcomes) != len(probabilities) {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d outcomes, %d probabilities", len(outcomes), len(probabilities))
	}
	d := make(Distribution, len(outcomes))
	for i, v := range outcomes {
		if _, found := d[v]; found {
			return nil, errors.Wrapf(ErrDuplicateOutcome, "outcome %d", v)
		}
		d[v] = probabilities[i]
	}
	return d, nil
}
