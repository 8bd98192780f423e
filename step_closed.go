/*
 * step_closed.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package rpmd

import (
	"log/slog"

	"github.com/jacobchausse/openmm/hostapi"
	"github.com/jacobchausse/openmm/normalmode"
)

// executeClosedPath advances a closed-ring Integrator by one step using
// the thermostat-kick-drift-forces-kick-thermostat splitting (spec §4.G,
// §2 data flow "D -> kick -> C -> E+F -> kick -> D"): a half-step
// thermostat kick, a velocity kick from the forces evaluated at the start
// of the step, the analytic free-ring propagation, forces evaluated at
// the new positions, a final velocity kick, and a closing half-step
// thermostat kick.
func (integ *Integrator) executeClosedPath(ctx hostapi.Context, params hostapi.IntegratorParams, forcesAreValid bool) error {
	dt := params.StepSize()
	halfdt := 0.5 * dt

	if params.ApplyThermostat() {
		slog.Debug("applying PILE-L thermostat half-step", "path", "closed", "halfdt", halfdt)
		integ.pile.ApplyClosed(&integ.store, integ.dft, halfdt, params.Friction(), params.Temperature())
	}

	if !forcesAreValid {
		if err := integ.evaluateForces(ctx, params); err != nil {
			return err
		}
	}
	integ.kick(halfdt)

	normalmode.PropagateClosed(&integ.store, integ.dft, dt, params.Temperature())

	if err := integ.evaluateForces(ctx, params); err != nil {
		return err
	}
	integ.kick(halfdt)

	if params.ApplyThermostat() {
		slog.Debug("applying PILE-L thermostat half-step", "path", "closed", "halfdt", halfdt)
		integ.pile.ApplyClosed(&integ.store, integ.dft, halfdt, params.Friction(), params.Temperature())
	}
	return nil
}
