/*
 * aggregator.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package forces drives the host's force evaluation once per bead and
// collects the results into a Store (spec §4.E, "Per-bead force
// evaluation").
package forces

import (
	"log/slog"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/hostapi"
)

// EvaluateAll installs each bead's positions and velocities into ctx,
// resolves virtual sites, lets the host update its own state, reads back
// whatever positions/velocities that state update produced, evaluates
// the force groups named by groupMask, and reads the resulting forces
// back into store.Forces.
//
// A barostat changing the periodic box vectors mid-evaluation is
// incompatible with this kernel's per-bead force bookkeeping (spec §6
// invariant 3); EvaluateAll detects that by comparing box vectors before
// and after UpdateContextState and returns hostapi.ErrBarostatUnsupported
// rather than silently producing wrong forces.
func EvaluateAll(store *beadstate.Store, ctx hostapi.Context, groupMask int32) error {
	for k := 0; k < store.NumCopies(); k++ {
		ctx.SetPositions(store.Positions[k])
		ctx.SetVelocities(store.Velocities[k])
		ctx.ComputeVirtualSites()

		a0, b0, c0 := ctx.PeriodicBoxVectors()
		ctx.UpdateContextState()
		a1, b1, c1 := ctx.PeriodicBoxVectors()
		if a0 != a1 || b0 != b1 || c0 != c1 {
			slog.Warn("barostat guard tripped: box vectors changed during UpdateContextState", "bead", k)
			return hostapi.ErrBarostatUnsupported()
		}

		copy(store.Positions[k], ctx.Positions())
		copy(store.Velocities[k], ctx.Velocities())

		ctx.CalcForcesAndEnergy(true, false, groupMask)
		copy(store.Forces[k], ctx.Forces())
	}
	return nil
}

// HalveOpenPathEndpointForces scales the forces on the first and last bead
// by one half, the correction the open (LePIGS) path applies because its
// endpoint beads carry half the internal-spring weight of an interior bead
// (_examples/original_source/.../ReferenceRpmdKernels.cpp, open-path force
// computation).
func HalveOpenPathEndpointForces(store *beadstate.Store) {
	n := store.NumCopies()
	if n <= 1 {
		return
	}
	for p := 0; p < store.NumParticles(); p++ {
		store.Forces[0][p] = store.Forces[0][p].Scale(0.5)
		store.Forces[n-1][p] = store.Forces[n-1][p].Scale(0.5)
	}
}
