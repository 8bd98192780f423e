/*
 * step_open.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package rpmd

import (
	"log/slog"

	"github.com/jacobchausse/openmm/forces"
	"github.com/jacobchausse/openmm/hostapi"
	"github.com/jacobchausse/openmm/normalmode"
)

// executeOpenPath advances an open-chain (LePIGS) Integrator by one step
// using the same thermostat-kick-drift-forces-kick-thermostat splitting
// as executeClosedPath (spec §4.G, §2 data flow "D -> kick -> C -> E+F ->
// kick -> D"), with two differences: the free-propagation and thermostat
// transforms use the DCT rather than the DFT, and the evaluated forces
// get their endpoint-bead halving correction applied before each kick.
func (integ *Integrator) executeOpenPath(ctx hostapi.Context, params hostapi.IntegratorParams, forcesAreValid bool) error {
	dt := params.StepSize()
	halfdt := 0.5 * dt

	if params.ApplyThermostat() {
		slog.Debug("applying PILE-L thermostat half-step", "path", "open", "halfdt", halfdt)
		integ.pile.ApplyOpen(&integ.store, integ.dct, halfdt, params.Friction(), params.Temperature())
	}

	if !forcesAreValid {
		if err := integ.evaluateForces(ctx, params); err != nil {
			return err
		}
		forces.HalveOpenPathEndpointForces(&integ.store)
	}
	integ.kick(halfdt)

	normalmode.PropagateOpen(&integ.store, integ.dct, dt, params.Temperature())

	if err := integ.evaluateForces(ctx, params); err != nil {
		return err
	}
	forces.HalveOpenPathEndpointForces(&integ.store)
	integ.kick(halfdt)

	if params.ApplyThermostat() {
		slog.Debug("applying PILE-L thermostat half-step", "path", "open", "halfdt", halfdt)
		integ.pile.ApplyOpen(&integ.store, integ.dct, halfdt, params.Friction(), params.Temperature())
	}
	return nil
}
