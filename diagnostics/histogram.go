/*
 * histogram.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package diagnostics offers a small set of analysis tools for a
// recorded run: binned distributions and autocorrelation spectra, used
// to check the thermostat against its expected equilibrium statistics
// (spec §8, "Testable Properties").
package diagnostics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Histogram accumulates scalar samples into fixed bins across any number
// of Add calls, so a long run can be binned incrementally instead of
// holding every sample in memory at once. Adapted from the accumulate/
// Normalize split of _examples/rmera-gochem/histo/histo.go's Data type,
// with the actual binning delegated to gonum.org/v1/gonum/stat.Histogram
// rather than the teacher's manual divider scan.
type Histogram struct {
	dividers []float64
	counts   []float64
	total    int
}

// NewHistogram returns an empty Histogram with len(dividers)-1 bins.
// dividers must be sorted ascending.
func NewHistogram(dividers []float64) *Histogram {
	return &Histogram{
		dividers: append([]float64(nil), dividers...),
		counts:   make([]float64, len(dividers)-1),
	}
}

// Add bins samples into the histogram's existing bin counts. samples must
// be sorted ascending and lie in [dividers[0], dividers[len(dividers)-1]);
// stat.Histogram panics otherwise.
func (h *Histogram) Add(samples []float64) {
	batch := stat.Histogram(nil, h.dividers, samples, nil)
	for i, v := range batch {
		h.counts[i] += v
	}
	h.total += len(samples)
}

// Counts returns the raw per-bin counts accumulated so far.
func (h *Histogram) Counts() []float64 {
	return append([]float64(nil), h.counts...)
}

// Total returns the number of samples added so far.
func (h *Histogram) Total() int {
	return h.total
}

// Normalized returns the per-bin counts divided by the total sample
// count, i.e. an empirical probability mass function.
func (h *Histogram) Normalized() []float64 {
	out := make([]float64, len(h.counts))
	if h.total == 0 {
		return out
	}
	for i, v := range h.counts {
		out[i] = v / float64(h.total)
	}
	return out
}

// String renders the histogram as divider ranges over their bin counts.
func (h *Histogram) String() string {
	ranges := make([]string, 0, len(h.counts))
	counts := make([]string, 0, len(h.counts))
	for i, v := range h.counts {
		ranges = append(ranges, fmt.Sprintf("%4.2f-%4.2f", h.dividers[i], h.dividers[i+1]))
		counts = append(counts, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("total:%d\n%s\n%s", h.total, strings.Join(ranges, " "), strings.Join(counts, " "))
}
