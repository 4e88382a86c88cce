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

package visualizer

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/0xsoniclabs/distgen/stochastic/statistics/discrete"
	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// frequencyDatum is a bar of the frequency chart.
type frequencyDatum struct {
	label    string
	observed float64
	expected float64
}

// convertFrequencyData collects observed and expected frequencies of all
// outcomes in ascending order.
func convertFrequencyData(h *discrete.Histogram, expected map[int]float64) []frequencyDatum {
	data := []frequencyDatum{}
	for _, row := range discrete.Rows(h, expected) {
		datum := frequencyDatum{
			label:    strconv.Itoa(row[0].(int)),
			observed: row[2].(float64),
		}
		if p, ok := row[3].(float64); ok {
			datum.expected = p
		}
		data = append(data, datum)
	}
	return data
}

// convertBarData extracts one series of bars.
func convertBarData(data []frequencyDatum, value func(frequencyDatum) float64) []opts.BarData {
	items := []opts.BarData{}
	for i := 0; i < len(data); i++ {
		items = append(items, opts.BarData{Value: value(data[i])})
	}
	return items
}

// convertFrequencyLabel produces the outcomes' labels.
func convertFrequencyLabel(data []frequencyDatum) []string {
	items := []string{}
	for i := 0; i < len(data); i++ {
		items = append(items, data[i].label)
	}
	return items
}

// NewFrequencyChart creates a bar chart comparing observed with expected
// frequencies. The expected distribution may be nil.
func NewFrequencyChart(h *discrete.Histogram, expected map[int]float64) *charts.Bar {
	title := fmt.Sprintf("Outcome Frequencies (%d draws)", h.Total())
	data := convertFrequencyData(h, expected)
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: title,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	bar.SetXAxis(convertFrequencyLabel(data)).
		AddSeries("Observed", convertBarData(data, func(d frequencyDatum) float64 { return d.observed }))
	if expected != nil {
		bar.AddSeries("Expected", convertBarData(data, func(d frequencyDatum) float64 { return d.expected }))
	}
	return bar
}

// RenderFrequencyChart renders the frequency chart as HTML page.
func RenderFrequencyChart(w io.Writer, h *discrete.Histogram, expected map[int]float64) error {
	return NewFrequencyChart(h, expected).Render(w)
}

// WriteFrequencyChart renders the frequency chart into a file.
func WriteFrequencyChart(filename string, h *discrete.Histogram, expected map[int]float64) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create chart file %v; %w", filename, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return RenderFrequencyChart(file, h, expected)
}
