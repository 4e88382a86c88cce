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
	"sort"

	"golang.org/x/exp/maps"
)

// Histogram counts the occurrences of drawn outcomes.
type Histogram struct {
	counts map[int]uint64
	total  uint64
}

// NewHistogram creates an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{counts: map[int]uint64{}}
}

// Add records one occurrence of outcome v.
func (h *Histogram) Add(v int) {
	h.counts[v]++
	h.total++
}

// Count returns the number of occurrences of outcome v.
func (h *Histogram) Count(v int) uint64 {
	return h.counts[v]
}

// Total returns the number of recorded occurrences.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Frequency returns the empirical probability of outcome v. It is zero
// for an empty histogram.
func (h *Histogram) Frequency(v int) float64 {
	if h.total == 0 {
		return 0.0
	}
	return float64(h.counts[v]) / float64(h.total)
}

// Outcomes returns the observed outcomes in ascending order.
func (h *Histogram) Outcomes() []int {
	keys := maps.Keys(h.counts)
	sort.Ints(keys)
	return keys
}

// Merge adds all occurrences of other to h.
func (h *Histogram) Merge(other *Histogram) {
	for v, c := range other.counts {
		h.counts[v] += c
	}
	h.total += other.total
}
