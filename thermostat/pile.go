/*
 * pile.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package thermostat implements the PILE-L (Path-Integral Langevin
// Equation, Local) thermostat: a per-mode Ornstein-Uhlenbeck update with
// analytic damping and critical damping at the Nyquist mode (spec §4.D).
package thermostat

import (
	"math"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
	"github.com/jacobchausse/openmm/modes"
	"github.com/jacobchausse/openmm/transform"
	"github.com/jacobchausse/openmm/units"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// PILE holds the thermostat's own random number stream. Encapsulating the
// RNG here, rather than reaching for a process-wide generator, is the
// "Global RNG" redesign point of spec §9: two PILE values seeded
// identically and driven identically produce bit-identical noise,
// independent of what else in the process is consuming randomness.
//
// The Gaussian sampler is gonum.org/v1/gonum/stat/distuv.Normal, grounded
// on _examples/rmera-gochem/chemstat/timecorr.go and
// _examples/rmera-gochem/histo/histo.go's use of gonum.org/v1/gonum/stat
// for this kernel's statistics needs.
type PILE struct {
	rng    *rand.Rand
	normal distuv.Normal
}

// New returns a PILE-L thermostat whose noise stream is seeded from seed.
func New(seed uint32) *PILE {
	rng := rand.New(rand.NewSource(uint64(seed)))
	return &PILE{
		rng:    rng,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: rng},
	}
}

func (p *PILE) gauss() float64 {
	return p.normal.Rand()
}

// ApplyClosed applies one Ornstein-Uhlenbeck kick of duration dt to every
// non-frozen particle's velocity modes, for the closed (ring) path. The
// step driver calls this twice per integration step, each time with
// half the step size (spec §4.D, "A-O-A splitting").
func (p *PILE) ApplyClosed(store *beadstate.Store, dft *transform.DFT, dt, friction, temperature float64) {
	numCopies := store.NumCopies()
	scale := 1.0 / math.Sqrt(float64(numCopies))
	nkT := float64(numCopies) * units.BoltzmannKJPerMol * temperature
	c1Centroid := math.Exp(-dt * friction)
	c2Centroid := math.Sqrt(1.0 - c1Centroid*c1Centroid)

	var series []float64
	var vbuf []complex128

	for particle := 0; particle < store.NumParticles(); particle++ {
		mass := store.Mass[particle]
		if mass == 0 {
			continue
		}
		c3Centroid := c2Centroid * math.Sqrt(nkT/mass)
		for component := 0; component < 3; component++ {
			series = geom.ComponentSeries(store.Velocities, particle, component, series)
			vbuf = transform.LoadReal(vbuf, series, scale)
			vbuf = dft.Forward(vbuf, vbuf)

			v0 := real(vbuf[0])*c1Centroid + c3Centroid*p.gauss()
			vbuf[0] = complex(v0, 0)

			for k := 1; k <= numCopies/2; k++ {
				isNyquist := numCopies%2 == 0 && k == numCopies/2
				wk := modes.ClosedFrequency(k, numCopies, temperature)
				c1 := math.Exp(-2 * wk * dt)
				c2 := math.Sqrt((1.0 - c1*c1) / 2)
				if isNyquist {
					c2 *= math.Sqrt2
				}
				c3 := c2 * math.Sqrt(nkT/mass)
				rand1 := c3 * p.gauss()
				var rand2 float64
				if !isNyquist {
					rand2 = c3 * p.gauss()
				}
				updated := vbuf[k]*complex(c1, 0) + complex(rand1, rand2)
				if k < numCopies-k {
					vbuf[numCopies-k] = vbuf[numCopies-k]*complex(c1, 0) + complex(rand1, -rand2)
				}
				vbuf[k] = updated
			}

			vbuf = dft.Inverse(vbuf, vbuf)
			transform.StoreReal(series, vbuf, scale)
			geom.SetComponentSeries(store.Velocities, particle, component, series)
		}
	}
}

// ApplyOpen applies one Ornstein-Uhlenbeck kick of duration dt to every
// non-frozen particle's velocity modes, for the open (chain) path. The
// step driver calls this twice per integration step, each time with
// half the step size.
func (p *PILE) ApplyOpen(store *beadstate.Store, dct *transform.DCT, dt, friction, temperature float64) {
	numCopies := store.NumCopies()
	nkT := float64(numCopies) * units.BoltzmannKJPerMol * temperature
	c1Centroid := math.Exp(-dt * friction)
	c2Centroid := math.Sqrt(1.0 - c1Centroid*c1Centroid)

	var series []float64
	var vbuf []float64

	for particle := 0; particle < store.NumParticles(); particle++ {
		mass := store.Mass[particle]
		if mass == 0 {
			continue
		}
		c3Centroid := c2Centroid * math.Sqrt(nkT/mass)
		for component := 0; component < 3; component++ {
			series = geom.ComponentSeries(store.Velocities, particle, component, series)
			vbuf = dct.Forward(vbuf, series)

			vbuf[0] = vbuf[0]*c1Centroid + c3Centroid*p.gauss()

			for k := 1; k < numCopies; k++ {
				wk := modes.OpenFrequency(k, numCopies, temperature)
				c1 := math.Exp(-2 * wk * dt)
				c2 := math.Sqrt(1.0 - c1*c1)
				c3 := c2 * math.Sqrt(nkT/mass)
				rand1 := c3 * p.gauss()
				vbuf[k] = vbuf[k]*c1 + rand1
			}

			vbuf = dct.Inverse(vbuf, vbuf)
			geom.SetComponentSeries(store.Velocities, particle, component, vbuf)
		}
	}
}
