/*
 * dft.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package transform implements the two 1-D transforms the kernel needs
// over the bead axis (spec §4.B): a complex DFT for the closed (ring) path
// and an orthonormal DCT-II/III pair for the open (chain) path.
package transform

import "gonum.org/v1/gonum/dsp/fourier"

// DFT computes forward and inverse complex discrete Fourier transforms of
// arbitrary length, caching one plan per length seen so a run that only
// ever sees numCopies and the occasional contraction length M pays the
// plan-construction cost once each (spec §9, "cache of plans keyed by
// length N"). Grounded on
// _examples/rmera-gochem/chemstat/timecorr.go's use of
// gonum.org/v1/gonum/dsp/fourier.CmplxFFT for the same unnormalized
// forward/backward convention this kernel relies on.
type DFT struct {
	plans map[int]*fourier.CmplxFFT
}

// NewDFT returns an empty DFT with no cached plans.
func NewDFT() *DFT {
	return &DFT{plans: make(map[int]*fourier.CmplxFFT)}
}

func (d *DFT) plan(n int) *fourier.CmplxFFT {
	p, ok := d.plans[n]
	if !ok {
		p = fourier.NewCmplxFFT(n)
		d.plans[n] = p
	}
	return p
}

// Forward computes the unnormalized forward DFT of src (length n) into
// dst, which may alias src, and returns it.
func (d *DFT) Forward(dst, src []complex128) []complex128 {
	return d.plan(len(src)).Coefficients(dst, src)
}

// Inverse computes the unnormalized inverse DFT of src (length n) into
// dst, which may alias src, and returns it. Neither Forward nor Inverse
// divides by n; callers apply whatever normalization the surrounding
// algorithm requires (spec §4.B: "forward with unit scale, inverse with
// unit scale").
func (d *DFT) Inverse(dst, src []complex128) []complex128 {
	return d.plan(len(src)).Sequence(dst, src)
}

// LoadReal copies a real-valued bead series into a complex buffer scaled
// by scale, the "symmetry factor applied outside the transform" of spec §4.B.
func LoadReal(dst []complex128, series []float64, scale float64) []complex128 {
	if cap(dst) < len(series) {
		dst = make([]complex128, len(series))
	}
	dst = dst[:len(series)]
	for k, x := range series {
		dst[k] = complex(scale*x, 0)
	}
	return dst
}

// StoreReal writes the real part of src, scaled by scale, back into a
// real-valued bead series.
func StoreReal(series []float64, src []complex128, scale float64) {
	for k, v := range src {
		series[k] = scale * real(v)
	}
}
