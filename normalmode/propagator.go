/*
 * propagator.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package normalmode implements the analytic free-ring-polymer evolution
// in the mode basis (spec §4.C).
package normalmode

import (
	"math"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
	"github.com/jacobchausse/openmm/modes"
	"github.com/jacobchausse/openmm/transform"
)

// PropagateClosed advances every non-frozen particle's positions and
// velocities by one free-ring-polymer step of size dt, in place, for the
// closed (ring) path.
func PropagateClosed(store *beadstate.Store, dft *transform.DFT, dt, temperature float64) {
	numCopies := store.NumCopies()
	scale := 1.0 / math.Sqrt(float64(numCopies))
	var qSeries, vSeries []float64
	var qbuf, vbuf []complex128

	for particle := 0; particle < store.NumParticles(); particle++ {
		if store.Mass[particle] == 0 {
			continue
		}
		for component := 0; component < 3; component++ {
			qSeries = geom.ComponentSeries(store.Positions, particle, component, qSeries)
			vSeries = geom.ComponentSeries(store.Velocities, particle, component, vSeries)
			qbuf = transform.LoadReal(qbuf, qSeries, scale)
			vbuf = transform.LoadReal(vbuf, vSeries, scale)
			qbuf = dft.Forward(qbuf, qbuf)
			vbuf = dft.Forward(vbuf, vbuf)

			qbuf[0] += vbuf[0] * complex(dt, 0)
			for k := 1; k < numCopies; k++ {
				wk := modes.ClosedFrequency(k, numCopies, temperature)
				wt := wk * dt
				coswt, sinwt := math.Cos(wt), math.Sin(wt)
				vprime := vbuf[k]*complex(coswt, 0) - qbuf[k]*complex(wk*sinwt, 0)
				qbuf[k] = vbuf[k]*complex(sinwt/wk, 0) + qbuf[k]*complex(coswt, 0)
				vbuf[k] = vprime
			}

			qbuf = dft.Inverse(qbuf, qbuf)
			vbuf = dft.Inverse(vbuf, vbuf)
			transform.StoreReal(qSeries, qbuf, scale)
			transform.StoreReal(vSeries, vbuf, scale)
			geom.SetComponentSeries(store.Positions, particle, component, qSeries)
			geom.SetComponentSeries(store.Velocities, particle, component, vSeries)
		}
	}
}

// PropagateOpen advances every non-frozen particle's positions and
// velocities by one free-ring-polymer step of size dt, in place, for the
// open (chain) path.
func PropagateOpen(store *beadstate.Store, dct *transform.DCT, dt, temperature float64) {
	numCopies := store.NumCopies()
	var qSeries, vSeries []float64
	var qbuf, vbuf []float64

	for particle := 0; particle < store.NumParticles(); particle++ {
		if store.Mass[particle] == 0 {
			continue
		}
		for component := 0; component < 3; component++ {
			qSeries = geom.ComponentSeries(store.Positions, particle, component, qSeries)
			vSeries = geom.ComponentSeries(store.Velocities, particle, component, vSeries)
			qbuf = dct.Forward(qbuf, qSeries)
			vbuf = dct.Forward(vbuf, vSeries)

			qbuf[0] += vbuf[0] * dt
			for k := 1; k < numCopies; k++ {
				wk := modes.OpenFrequency(k, numCopies, temperature)
				wt := wk * dt
				coswt, sinwt := math.Cos(wt), math.Sin(wt)
				vprime := vbuf[k]*coswt - qbuf[k]*(wk*sinwt)
				qbuf[k] = vbuf[k]*(sinwt/wk) + qbuf[k]*coswt
				vbuf[k] = vprime
			}

			qbuf = dct.Inverse(qbuf, qbuf)
			vbuf = dct.Inverse(vbuf, vbuf)
			geom.SetComponentSeries(store.Positions, particle, component, qbuf)
			geom.SetComponentSeries(store.Velocities, particle, component, vbuf)
		}
	}
}
