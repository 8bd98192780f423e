/*
 * plot.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package diagnostics

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotTimeSeries renders a single time series (e.g. kinetic energy
// sampled once per step) as a line plot saved to path. The file format
// is taken from path's extension, per plot.Plot.Save.
//
// The teacher library's only plotting code (deleted; see DESIGN.md)
// imported the legacy code.google.com/p/plotinum package; this is
// written against gonum.org/v1/plot instead.
func PlotTimeSeries(path, title, xLabel, yLabel string, times, values []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// PlotHistogram renders h's bin counts as a bar chart saved to path.
func PlotHistogram(path, title string, h *Histogram) error {
	p := plot.New()
	p.Title.Text = title

	values := make(plotter.Values, len(h.counts))
	copy(values, h.counts)
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
