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

import "github.com/cockroachdb/errors"

// Validation and construction errors. They are returned wrapped with
// context, so callers must test for them with errors.Is.
var (
	// ErrNullInput is returned when a required slice, map or source is nil.
	ErrNullInput = errors.New("input must not be nil")

	// ErrNullElement is returned when a probability sequence contains an unset (NaN) element.
	ErrNullElement = errors.New("sequence must not contain unset elements")

	// ErrNullEntry is returned when a distribution contains an unset (NaN) probability.
	ErrNullEntry = errors.New("distribution must not contain unset entries")

	// ErrSizeMismatch is returned when outcomes and probabilities differ in length.
	ErrSizeMismatch = errors.New("outcomes and probabilities must have equal size")

	// ErrProbabilityRange is returned when a probability is outside of (0,1).
	ErrProbabilityRange = errors.New("probability must be in the open interval (0,1)")

	// ErrProbabilitySum is returned when the probabilities do not sum up to one.
	ErrProbabilitySum = errors.New("probabilities must sum up to one")

	// ErrDuplicateOutcome is returned when an outcome occurs more than once.
	ErrDuplicateOutcome = errors.New("outcomes must be unique")

	// ErrEmptyDistribution is returned when a distribution has no drawable outcome.
	ErrEmptyDistribution = errors.New("distribution has no drawable outcome")
)
