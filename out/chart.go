// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// Chart returns a line chart of the given keys of a profile. All keys are drawn on the
// same y-axis; e.g. "vsi" and "n", or "R1", "R2" and "R3"
func (o *Profile) Chart(keys ...string) (graph *chart.Chart, err error) {
	if len(keys) == 0 {
		keys = []string{"vsi"}
	}
	ymin, ymax := math.Inf(1), math.Inf(-1)
	series := make([]chart.Series, len(keys))
	for i, key := range keys {
		vals, ok := o.Vals[key]
		if !ok {
			return nil, chk.Err("profile does not have key %q. keys = %v", key, Keys)
		}
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, chk.Err("cannot chart %q: profile has non-finite values", key)
			}
		}
		ymin = math.Min(ymin, floats.Min(vals))
		ymax = math.Max(ymax, floats.Max(vals))
		series[i] = chart.ContinuousSeries{
			Name:    key,
			XValues: o.S,
			YValues: vals,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(i), StrokeWidth: 2.0},
		}
	}

	// constant values yield an empty range
	if ymax-ymin < 1e-12*math.Max(1, math.Abs(ymax)) {
		δ := math.Max(1e-3*math.Abs(ymax), 1e-3)
		ymin, ymax = ymin-δ, ymax+δ
	}

	graph = &chart.Chart{
		Title:  o.Title,
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  o.Slbl,
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: o.S[0], Max: o.S[len(o.S)-1]},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}
	return
}

// PlotProfile renders a chart of a profile as PNG into buf
func PlotProfile(buf *bytes.Buffer, p *Profile, keys ...string) (err error) {
	graph, err := p.Chart(keys...)
	if err != nil {
		return
	}
	if err = graph.Render(chart.PNG, buf); err != nil {
		return chk.Err("cannot render chart of %q:\n%v", p.Title, err)
	}
	return
}

// SavePlot renders a chart of a profile as PNG and saves it to dirout/fn. The directory is
// created if needed
func SavePlot(dirout, fn string, p *Profile, keys ...string) (err error) {
	var buf bytes.Buffer
	if err = PlotProfile(&buf, p, keys...); err != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot save chart of %q:\n%v", p.Title, r)
		}
	}()
	io.WriteBytesToFileD(dirout, fn, buf.Bytes())
	return
}
