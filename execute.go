/*
 * execute.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package rpmd

import (
	"github.com/jacobchausse/openmm/contract"
	"github.com/jacobchausse/openmm/forces"
	"github.com/jacobchausse/openmm/hostapi"
)

// Execute advances the integrator by one step, dispatching to the
// closed-ring or open-chain driver depending on how params was
// configured at Initialize (spec §4.G). forcesAreValid lets the host
// skip a redundant force evaluation when the positions haven't changed
// since the last Execute call (spec §6, "Consumed from the host's step
// loop").
func (integ *Integrator) Execute(ctx hostapi.Context, params hostapi.IntegratorParams, forcesAreValid bool) error {
	if integ.useOpenPath {
		return integ.executeOpenPath(ctx, params, forcesAreValid)
	}
	return integ.executeClosedPath(ctx, params, forcesAreValid)
}

// evaluateForces evaluates every un-contracted force group directly on
// all beads, then any contracted force groups via the contraction
// engine, accumulating both into store.Forces (spec §4.E/§4.F).
func (integ *Integrator) evaluateForces(ctx hostapi.Context, params hostapi.IntegratorParams) error {
	if err := forces.EvaluateAll(&integ.store, ctx, integ.groupsNotContracted); err != nil {
		return err
	}
	if err := contract.EvaluateGroup(integ.contractEngine, &integ.store, ctx, integ.useOpenPath, integ.contractions); err != nil {
		return err
	}
	return nil
}

// kick applies a Cartesian velocity kick of duration dt from the
// currently stored forces to every non-frozen particle on every bead.
func (integ *Integrator) kick(dt float64) {
	store := &integ.store
	for k := 0; k < store.NumCopies(); k++ {
		for particle := 0; particle < store.NumParticles(); particle++ {
			mass := store.Mass[particle]
			if mass == 0 {
				continue
			}
			store.Velocities[k][particle] = store.Velocities[k][particle].AddScaled(store.Forces[k][particle], dt/mass)
		}
	}
}
