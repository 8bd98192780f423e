/*
 * kinetic.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package rpmd

import "github.com/jacobchausse/openmm/hostapi"

// ComputeKineticEnergy returns 0.5*sum(mass*v.v) over ctx's currently
// installed velocities (spec §4.A/§8: kinetic energy is a per-bead,
// per-call quantity, not a sum over the whole ring).
func ComputeKineticEnergy(ctx hostapi.Context, params hostapi.IntegratorParams) float64 {
	vel := ctx.Velocities()
	var energy float64
	for j, v := range vel {
		mass := ctx.ParticleMass(j)
		if mass == 0 {
			continue
		}
		energy += mass * v.Dot(v)
	}
	return 0.5 * energy
}
