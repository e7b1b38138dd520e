// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strconv"

	"github.com/unixdj/code128/split"

	"github.com/wcharczuk/go-chart/v2"
)

// costChart writes an SVG bar chart of candidate costs, followed by
// the cost of the returned split, to w.
func costChart(w io.Writer, cands []split.Candidate, seg split.Segmentation) error {
	bars := make([]chart.Value, 0, len(cands)+1)
	hi := seg.Cost()
	for i, c := range cands {
		label := strconv.Itoa(i)
		if c.Run >= 0 {
			label += " (run " + strconv.Itoa(c.Run) + ")"
		}
		bars = append(bars, chart.Value{Label: label, Value: float64(c.Cost)})
		hi = max(hi, c.Cost)
	}
	bars = append(bars, chart.Value{
		Label: "result",
		Value: float64(seg.Cost()),
		Style: chart.Style{FillColor: chart.ColorRed},
	})
	graph := chart.BarChart{
		Title:    "Candidate costs (half symbols)",
		Height:   384,
		BarWidth: 48,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(hi) + 2},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
