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
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary lists the occurrences and the empirical probability of each
// observed outcome, one line per outcome in ascending order.
func Summary(h *Histogram) string {
	var b strings.Builder
	for _, v := range h.Outcomes() {
		fmt.Fprintf(&b, "Number of occurrences for %d: %d. Probability: ~%.5f\n", v, h.Count(v), h.Frequency(v))
	}
	return b.String()
}

// Table renders observed and expected frequencies as a text table. The
// expected distribution may be nil.
func Table(h *Histogram, expected map[int]float64) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Outcome", "Occurrences", "Frequency", "Expected"})
	for _, v := range outcomes(h, expected) {
		exp := "-"
		if p, found := expected[v]; found {
			exp = fmt.Sprintf("%.5f", p)
		}
		t.AppendRow(table.Row{v, h.Count(v), fmt.Sprintf("%.5f", h.Frequency(v)), exp})
	}
	t.AppendFooter(table.Row{"Total", h.Total(), "", ""})
	return t.Render()
}

// Rows returns one row (outcome, occurrences, frequency, expected) per
// outcome for insertion into a database. The expected probability is nil
// for outcomes without one.
func Rows(h *Histogram, expected map[int]float64) [][]any {
	var rows [][]any
	for _, v := range outcomes(h, expected) {
		var exp any
		if p, found := expected[v]; found {
			exp = p
		}
		rows = append(rows, []any{v, h.Count(v), h.Frequency(v), exp})
	}
	return rows
}

// outcomes returns the union of observed and expected outcomes in ascending order.
func outcomes(h *Histogram, expected map[int]float64) []int {
	res := h.Outcomes()
	for v := range expected {
		if h.Count(v) == 0 {
			res = append(res, v)
		}
	}
	sort.Ints(res)
	return res
}
