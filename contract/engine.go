/*
 * engine.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package contract implements ring-polymer contraction: evaluating a
// "slow" force group on fewer beads than the full ring, by spectral
// truncation of the bead positions and spectral zero-padding of the
// resulting forces (spec §4.F, "Contraction"). Only the closed (ring)
// path supports this; the open (LePIGS) path's contraction code is
// unreachable dead code in the reference kernel and is represented here
// only by its guard (spec §9, Open Question 2).
package contract

import (
	"log/slog"
	"sort"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
	"github.com/jacobchausse/openmm/hostapi"
	"github.com/jacobchausse/openmm/transform"
)

// Engine holds the DFT plan cache used for downsampling positions and
// upsampling forces.
type Engine struct {
	dft *transform.DFT
}

// New returns a contraction Engine backed by dft.
func New(dft *transform.DFT) *Engine {
	return &Engine{dft: dft}
}

// Contract downsamples series, a length-n real bead series, to a
// length-m series by keeping only the m lowest-frequency coefficients of
// its discrete Fourier transform (the first (m+1)/2 and the last
// m-(m+1)/2) and discarding the rest. m must not exceed
// n (hostapi.ErrContractionCopies is the caller's responsibility to
// enforce at configuration time, not here).
func (e *Engine) Contract(series []float64, m int) []float64 {
	n := len(series)
	if m == n {
		out := make([]float64, n)
		copy(out, series)
		return out
	}
	scale := 1.0 / float64(n)
	full := transform.LoadReal(nil, series, 1.0)
	full = e.dft.Forward(full, full)

	start := (m + 1) / 2
	truncated := make([]complex128, m)
	for k := 0; k < start; k++ {
		truncated[k] = full[k]
	}
	for k := start; k < m; k++ {
		truncated[k] = full[n-(m-k)]
	}

	truncated = e.dft.Inverse(truncated, truncated)
	out := make([]float64, m)
	transform.StoreReal(out, truncated, 1.0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// Expand upsamples series, a length-m force series produced on the
// contracted ring, back to a length-n series by zero-padding its Fourier
// coefficients above the m/2 cutoff (the inverse operation of Contract).
func (e *Engine) Expand(series []float64, n int) []float64 {
	m := len(series)
	if m == n {
		out := make([]float64, n)
		copy(out, series)
		return out
	}
	scale := 1.0 / float64(m)
	small := transform.LoadReal(nil, series, 1.0)
	small = e.dft.Forward(small, small)

	start := (m + 1) / 2
	padded := make([]complex128, n)
	for k := 0; k < start; k++ {
		padded[k] = small[k]
	}
	for k := start; k < m; k++ {
		padded[n-(m-k)] = small[k]
	}

	padded = e.dft.Inverse(padded, padded)
	out := make([]float64, n)
	transform.StoreReal(out, padded, 1.0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// EvaluateGroup evaluates one contracted force group: it downsamples
// store's positions from n to the m named by the group's entry in
// contractions, runs the group's forces on an m-bead context, and
// upsamples the resulting forces back onto store.Forces, accumulating
// into whatever forces are already present there.
//
// contractions maps force group -> contracted copy count and is walked
// in ascending group order so repeated runs with the same input are
// bit-reproducible (spec §5, "deterministic iteration order").
func EvaluateGroup(e *Engine, store *beadstate.Store, ctx hostapi.Context, useOpenPath bool, contractions map[int]int) error {
	if len(contractions) == 0 {
		return nil
	}
	if useOpenPath {
		return hostapi.ErrOpenPathContraction()
	}

	groups := make([]int, 0, len(contractions))
	for g := range contractions {
		groups = append(groups, g)
	}
	sort.Ints(groups)

	n := store.NumCopies()
	numParticles := store.NumParticles()
	var qSeries, qSmall, fSmall, fFull []float64

	for _, group := range groups {
		m := contractions[group]
		slog.Debug("evaluating contracted force group", "group", group, "contractedCopies", m, "fullCopies", n)
		contractedStore := beadstate.Store{}
		contractedStore.Init(m, numParticles, store.Mass)

		for particle := 0; particle < numParticles; particle++ {
			for component := 0; component < 3; component++ {
				qSeries = geom.ComponentSeries(store.Positions, particle, component, qSeries)
				qSmall = e.Contract(qSeries, m)
				geom.SetComponentSeries(contractedStore.Positions, particle, component, qSmall)
			}
		}

		for k := 0; k < m; k++ {
			ctx.SetPositions(contractedStore.Positions[k])
			ctx.ComputeVirtualSites()
			ctx.CalcForcesAndEnergy(true, false, int32(1)<<uint(group))
			copy(contractedStore.Forces[k], ctx.Forces())
		}

		for particle := 0; particle < numParticles; particle++ {
			if store.Mass[particle] == 0 {
				continue
			}
			for component := 0; component < 3; component++ {
				fSmall = geom.ComponentSeries(contractedStore.Forces, particle, component, fSmall)
				fFull = e.Expand(fSmall, n)
				for k := 0; k < n; k++ {
					v := store.Forces[k][particle]
					store.Forces[k][particle] = v.WithComponent(component, v.Component(component)+fFull[k])
				}
			}
		}
	}
	return nil
}
