/*
 * constants.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package units holds the physical constants the kernel needs, expressed
// in the host's kJ/mol, nm, ps convention (_examples/rmera-gochem/conversion.go
// is the teacher's equivalent table of unit-conversion constants).
package units

// BoltzmannKJPerMol is k_B in kJ/(mol*K).
const BoltzmannKJPerMol = 0.008314462618

// AvogadroNumber is N_A in mol^-1.
const AvogadroNumber = 6.02214076e23

// PlanckReducedKJPerMolPs is hbar expressed in kJ/mol*ps, following spec
// §4.C: hbar = 1.054571628e-34 * N_A / (1000 * 1e-12).
const PlanckReducedKJPerMolPs = 1.054571628e-34 * AvogadroNumber / (1000 * 1e-12)
