/*
 * vec3.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 */

// Package geom provides the minimal 3-vector arithmetic used to carry
// bead-indexed positions, velocities and forces through the kernel.
//
// The teacher library (goChem) keeps a whole v3 package wrapping
// gonum/mat64 for general N x 3 point clouds, because it needs BLAS-backed
// operations like RMSD superposition over thousands of atoms. A ring
// polymer's per-bead state has none of that: each entry is a fixed-size
// 3-vector and the only operations ever performed on it are add, scale and
// dot. A plain value type is the idiomatic replacement.
package geom

import "math"

// Vec3 is a Cartesian 3-vector in the host's native length/time/energy units
// (nm, ps, kJ/mol for this kernel).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// AddScaled returns v+w*s, the shape of the half-kick update in the step driver.
func (v Vec3) AddScaled(w Vec3, s float64) Vec3 {
	return Vec3{v.X + w.X*s, v.Y + w.Y*s, v.Z + w.Z*s}
}

// Dot returns the scalar product v.w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Component returns the c-th Cartesian component of v (0=X, 1=Y, 2=Z).
// Panics if c is out of range, matching the teacher's convention of
// panicking on programmer error rather than returning an error
// (_examples/rmera-gochem/chem.go).
func (v Vec3) Component(c int) float64 {
	switch c {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geom: component index out of range")
	}
}

// WithComponent returns a copy of v with its c-th component replaced by x.
func (v Vec3) WithComponent(c int, x float64) Vec3 {
	switch c {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic("geom: component index out of range")
	}
	return v
}

// Equal reports whether v and w are bitwise identical, the notion of
// equality the box-invariance guard (spec invariant 3) depends on.
func (v Vec3) Equal(w Vec3) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}
