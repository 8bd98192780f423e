/*
 * context.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package hostapi defines the contract between the integration kernel and
// its host: the simulation Context it drives and the descriptor it reads
// its run parameters from (spec §6, "Out of scope: the force provider...").
// config.Config implements IntegratorParams. The only Context
// implementations in this module are the synthetic one in cmd/rpmdrun
// and the test doubles; a host build supplies a real one (e.g. backed by
// a real force field evaluator).
package hostapi

import "github.com/jacobchausse/openmm/geom"

// Context is the simulation state the kernel reads and writes once per
// bead per step. Positions/velocities are installed before force
// evaluation and read back afterward rather than aliased, per the
// "Tensor aliasing" redesign note in spec §9.
type Context interface {
	// ComputeVirtualSites resolves virtual-site geometry from the
	// currently installed positions.
	ComputeVirtualSites()

	// UpdateContextState lets the host apply any state update (barostat,
	// constraints) between virtual site resolution and force evaluation.
	UpdateContextState()

	// PeriodicBoxVectors returns the current periodic box vectors.
	PeriodicBoxVectors() (a, b, c geom.Vec3)

	// CalcForcesAndEnergy evaluates the force groups selected by
	// groupMask (a 32-bit bitmask) on the currently installed positions.
	CalcForcesAndEnergy(computeForces, computeEnergy bool, groupMask int32)

	// Positions returns the currently installed per-particle positions.
	Positions() []geom.Vec3
	// SetPositions installs new per-particle positions.
	SetPositions(pos []geom.Vec3)

	// Velocities returns the currently installed per-particle velocities.
	Velocities() []geom.Vec3
	// SetVelocities installs new per-particle velocities.
	SetVelocities(vel []geom.Vec3)

	// Forces returns the per-particle forces computed by the most recent
	// CalcForcesAndEnergy call.
	Forces() []geom.Vec3

	// NumParticles returns the number of particles in the system.
	NumParticles() int
	// ParticleMass returns the mass of particle j; 0 marks a frozen or
	// virtual particle (spec data model, Mass vector).
	ParticleMass(j int) float64

	// Time returns the current simulation time.
	Time() float64
	// SetTime sets the current simulation time.
	SetTime(t float64)
	// SetStepCount sets the integrator's step counter.
	SetStepCount(n int)
}

// IntegratorParams is the descriptor the kernel reads its run parameters
// from (spec §6, "Consumed from the integrator descriptor").
type IntegratorParams interface {
	NumCopies() int
	StepSize() float64
	Friction() float64
	Temperature() float64
	ApplyThermostat() bool
	UseOpenPath() bool
	RandomNumberSeed() uint32
	// Contractions maps force group -> number of contracted copies.
	Contractions() map[int]int
	IntegrationForceGroups() int32
}
