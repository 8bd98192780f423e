/*
 * store.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package beadstate owns the per-bead position/velocity/force tensors
// (spec §4.A, "Bead state store").
package beadstate

import (
	"github.com/jacobchausse/openmm/geom"
	"github.com/jacobchausse/openmm/hostapi"
)

// Store owns the positions, velocities and forces of every bead and
// particle, plus the (immutable after Init) mass vector.
type Store struct {
	Positions  geom.Tensor
	Velocities geom.Tensor
	Forces     geom.Tensor
	Mass       []float64
}

// Init allocates tensors for numCopies beads and numParticles particles
// and copies the mass vector. Shapes are fixed from this point on
// (spec data model invariant 1).
func (s *Store) Init(numCopies, numParticles int, mass []float64) {
	s.Positions = geom.NewTensor(numCopies, numParticles)
	s.Velocities = geom.NewTensor(numCopies, numParticles)
	s.Forces = geom.NewTensor(numCopies, numParticles)
	s.Mass = make([]float64, numParticles)
	copy(s.Mass, mass)
}

// NumCopies returns the number of beads.
func (s *Store) NumCopies() int { return s.Positions.NumCopies() }

// NumParticles returns the number of particles.
func (s *Store) NumParticles() int { return s.Positions.NumParticles() }

// SetPositions installs x as the positions of bead k (spec §4.A/§6).
// No bounds validation beyond what a slice index panic already gives;
// the teacher library panics rather than validates for this class of
// "programmer passed a bad index" error (_examples/rmera-gochem/chem.go).
func (s *Store) SetPositions(k int, x []geom.Vec3) {
	copy(s.Positions[k], x)
}

// SetVelocities installs v as the velocities of bead k (spec §4.A/§6).
func (s *Store) SetVelocities(k int, v []geom.Vec3) {
	copy(s.Velocities[k], v)
}

// CopyToContext installs bead k's positions and velocities into ctx so the
// host can read them back (spec §4.A/§6).
func (s *Store) CopyToContext(k int, ctx hostapi.Context) {
	ctx.SetPositions(s.Positions[k])
	ctx.SetVelocities(s.Velocities[k])
}
