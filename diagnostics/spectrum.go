/*
 * spectrum.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package diagnostics

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Spectrum computes zero-mean, zero-padded cross- and autocorrelation
// functions of time series recorded over a run (e.g. a mode's velocity
// at every step), the same FFT-autocorrelation technique as
// _examples/rmera-gochem/chemstat/timecorr.go's CrossCorrMem, adapted
// from molecular observable trajectories to per-mode bead series and
// shorn of its chem.Traj/v3.Matrix dependency.
//
// Zero-padding to twice the sample count avoids the circular wraparound
// a same-length FFT-based correlation would otherwise introduce.
type Spectrum struct {
	fft *fourier.CmplxFFT
	n   int
}

// NewSpectrum returns a Spectrum sized for series of length numSamples.
func NewSpectrum(numSamples int) *Spectrum {
	return &Spectrum{fft: fourier.NewCmplxFFT(2 * numSamples), n: numSamples}
}

// Autocorrelation returns the normalized autocorrelation function of
// series, which must have length NumSamples.
func (s *Spectrum) Autocorrelation(series []float64) []float64 {
	return s.CrossCorrelation(series, series)
}

// NumSamples returns the series length this Spectrum was sized for.
func (s *Spectrum) NumSamples() int { return s.n }

// CrossCorrelation returns the normalized cross-correlation function of
// a and b, both of length NumSamples, by conjugate-multiplying their
// zero-padded Fourier coefficients and transforming back.
func (s *Spectrum) CrossCorrelation(a, b []float64) []float64 {
	n := s.n
	amean, bmean := stat.Mean(a, nil), stat.Mean(b, nil)
	astd, bstd := stat.StdDev(a, nil), stat.StdDev(b, nil)

	apad := make([]complex128, 2*n)
	bpad := make([]complex128, 2*n)
	for i := 0; i < n; i++ {
		apad[i] = complex(a[i]-amean, 0)
		bpad[i] = complex(b[i]-bmean, 0)
	}

	s.fft.Coefficients(apad, apad)
	s.fft.Coefficients(bpad, bpad)
	for i, v := range bpad {
		apad[i] *= cmplx.Conj(v)
	}
	s.fft.Sequence(apad, apad)

	out := make([]float64, 2*n)
	norm := 1.0 / float64(2*n) / (astd * bstd) / float64(n)
	for i, v := range apad {
		out[i] = real(v) * norm
	}
	return out
}
