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

package discrete

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat/distuv"
)

// FitResult is the outcome of a chi-squared goodness-of-fit test.
type FitResult struct {
	Chi2             float64 // chi-squared value of the observations
	Critical         float64 // critical value for the significance level
	DegreesOfFreedom float64
	Alpha            float64 // significance level
}

// Passed reports whether the observations are consistent with the
// expected distribution at the significance level of the test.
func (r FitResult) Passed() bool {
	return r.Chi2 <= r.Critical
}

// String summarizes the test result.
func (r FitResult) String() string {
	return fmt.Sprintf("chi^2 value %.4f, critical value %.4f (df=%v, alpha=%v)", r.Chi2, r.Critical, r.DegreesOfFreedom, r.Alpha)
}

// GoodnessOfFit performs Pearson's chi-squared test of the histogram
// against the expected probability mass function. Outcomes with a
// non-positive expected probability are ignored; observing one of them, or
// an outcome that is not expected at all, is an error.
func GoodnessOfFit(h *Histogram, expected map[int]float64, alpha float64) (FitResult, error) {
	if alpha <= 0.0 || alpha >= 1.0 {
		return FitResult{}, fmt.Errorf("significance level %v is not in (0,1)", alpha)
	}
	if h.Total() == 0 {
		return FitResult{}, fmt.Errorf("no observations")
	}
	for _, v := range h.Outcomes() {
		if p, found := expected[v]; !found || p <= 0.0 {
			return FitResult{}, fmt.Errorf("observed outcome %d is not expected", v)
		}
	}

	keys := maps.Keys(expected)
	sort.Ints(keys)
	n := float64(h.Total())
	chi2 := 0.0
	buckets := 0
	for _, v := range keys {
		p := expected[v]
		if p <= 0.0 {
			continue
		}
		e := n * p
		d := e - float64(h.Count(v))
		chi2 += (d * d) / e
		buckets++
	}
	if buckets < 2 {
		return FitResult{}, fmt.Errorf("at least two outcomes are required, got %d", buckets)
	}

	df := float64(buckets - 1)
	return FitResult{
		Chi2:             chi2,
		Critical:         distuv.ChiSquared{K: df, Src: nil}.Quantile(1.0 - alpha),
		DegreesOfFreedom: df,
		Alpha:            alpha,
	}, nil
}
