/*
 * doc.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package rpmd drives a ring-polymer molecular dynamics (RPMD) or
// path-integral ground-state (PIGS/LePIGS) time step: free-ring-polymer
// propagation in the normal-mode basis, a PILE-L thermostat half-kick on
// either side of it, and per-bead force evaluation with optional
// ring-polymer contraction for selected force groups (spec §2).
package rpmd
