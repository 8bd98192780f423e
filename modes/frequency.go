/*
 * frequency.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package modes holds the per-mode angular frequency formulas shared by
// the normal-mode propagator and the PILE-L thermostat (spec §4.C). Both
// components need the exact same omega_k; keeping a single definition
// avoids the two callers drifting out of sync with each other, which
// would otherwise be a straightforward copy-paste bug waiting to happen.
package modes

import (
	"math"

	"github.com/jacobchausse/openmm/units"
)

// TwoNkTOverHbar returns 2*N*k_B*T/hbar, the prefactor shared by every
// closed-path mode frequency.
func TwoNkTOverHbar(numCopies int, temperature float64) float64 {
	nkT := float64(numCopies) * units.BoltzmannKJPerMol * temperature
	return 2.0 * nkT / units.PlanckReducedKJPerMolPs
}

// TwoNm1kTOverHbar returns 2*(N-1)*k_B*T/hbar, the prefactor shared by
// every open-path mode frequency.
func TwoNm1kTOverHbar(numCopies int, temperature float64) float64 {
	nkTm1 := float64(numCopies-1) * units.BoltzmannKJPerMol * temperature
	return 2.0 * nkTm1 / units.PlanckReducedKJPerMolPs
}

// ClosedFrequency returns omega_k for mode k of a closed (ring) path with
// numCopies beads at the given temperature: omega_k = twoNkT * sin(pi*k/N).
func ClosedFrequency(k, numCopies int, temperature float64) float64 {
	return TwoNkTOverHbar(numCopies, temperature) * math.Sin(float64(k)*math.Pi/float64(numCopies))
}

// OpenFrequency returns omega_k for mode k of an open (chain) path with
// numCopies beads at the given temperature:
// omega_k = twoNm1kT * sin(pi*k/(2N)).
func OpenFrequency(k, numCopies int, temperature float64) float64 {
	return TwoNm1kTOverHbar(numCopies, temperature) * math.Sin(float64(k)*math.Pi/float64(numCopies)/2.0)
}
