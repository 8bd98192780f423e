/*
 * integrator.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package rpmd

import (
	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/contract"
	"github.com/jacobchausse/openmm/geom"
	"github.com/jacobchausse/openmm/hostapi"
	"github.com/jacobchausse/openmm/thermostat"
	"github.com/jacobchausse/openmm/transform"
)

// Integrator owns one ring polymer's bead state and the transform/RNG
// machinery needed to advance it. A zero Integrator must be Initialize'd
// before use (spec §4.A/§5).
type Integrator struct {
	store beadstate.Store

	dft            *transform.DFT
	dct            *transform.DCT
	pile           *thermostat.PILE
	contractEngine *contract.Engine

	useOpenPath         bool
	groupsNotContracted int32
	contractions        map[int]int
}

// Initialize sizes the bead state store from ctx, validates the
// contraction map named by params, and seeds the thermostat's RNG from
// params.RandomNumberSeed() (spec §6, "Consumed at Initialize").
//
// Initialize may be called more than once on the same Integrator (e.g.
// after the host changes the number of copies); each call rebuilds the
// store and RNG from scratch.
func (integ *Integrator) Initialize(ctx hostapi.Context, params hostapi.IntegratorParams) error {
	numCopies := params.NumCopies()
	numParticles := ctx.NumParticles()
	mass := make([]float64, numParticles)
	for j := 0; j < numParticles; j++ {
		mass[j] = ctx.ParticleMass(j)
	}
	integ.store.Init(numCopies, numParticles, mass)

	integ.dft = transform.NewDFT()
	integ.dct = transform.NewDCT()
	integ.contractEngine = contract.New(integ.dft)
	integ.pile = thermostat.New(params.RandomNumberSeed())
	integ.useOpenPath = params.UseOpenPath()

	contractions := params.Contractions()
	var groupsContracted int32
	for group, m := range contractions {
		if group < 0 || group > 31 {
			return hostapi.ErrForceGroupRange(group)
		}
		if m > numCopies {
			return hostapi.ErrContractionCopies()
		}
		groupsContracted |= int32(1) << uint(group)
	}
	integ.contractions = contractions
	integ.groupsNotContracted = params.IntegrationForceGroups() &^ groupsContracted

	for k := 0; k < numCopies; k++ {
		integ.store.SetPositions(k, ctx.Positions())
		integ.store.SetVelocities(k, ctx.Velocities())
	}
	return nil
}

// NumCopies returns the number of beads the integrator was Initialize'd with.
func (integ *Integrator) NumCopies() int { return integ.store.NumCopies() }

// SetPositions installs x as bead k's positions (spec §6).
func (integ *Integrator) SetPositions(k int, x []geom.Vec3) { integ.store.SetPositions(k, x) }

// SetVelocities installs v as bead k's velocities (spec §6).
func (integ *Integrator) SetVelocities(k int, v []geom.Vec3) { integ.store.SetVelocities(k, v) }

// CopyToContext installs bead k's positions and velocities into ctx.
func (integ *Integrator) CopyToContext(k int, ctx hostapi.Context) {
	integ.store.CopyToContext(k, ctx)
}
