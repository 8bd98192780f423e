/*
 * main.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Command rpmdrun drives a ring-polymer integrator against a synthetic
// single-particle harmonic oscillator, as a standalone harness for the
// kernel a real host would otherwise embed (spec §6, "Out of scope: the
// force provider"). Grounded on
// _examples/pointlander-qmc/main.go's flag-driven, single-main-function
// harness for the same class of toy path-integral problem.
package main

import (
	"flag"
	"fmt"

	"github.com/jacobchausse/openmm/config"
	"github.com/jacobchausse/openmm/diagnostics"
	"github.com/jacobchausse/openmm/geom"
	rpmd "github.com/jacobchausse/openmm"
)

var (
	flagCopies      = flag.Int("copies", 32, "number of ring-polymer beads")
	flagSteps       = flag.Int("steps", 2000, "number of integration steps")
	flagStepSize    = flag.Float64("dt", 0.0005, "integration step size, in ps")
	flagFriction    = flag.Float64("friction", 1.0, "thermostat friction coefficient, in ps^-1")
	flagTemperature = flag.Float64("temperature", 300.0, "target temperature, in kelvin")
	flagSeed        = flag.Uint("seed", 1, "thermostat random seed")
	flagOpenPath    = flag.Bool("open-path", false, "use the open-chain (LePIGS) path instead of the closed ring")
	flagSpring      = flag.Float64("spring", 100.0, "harmonic oscillator spring constant, in kJ/mol/nm^2")
	flagMass        = flag.Float64("mass", 1.0, "particle mass, in amu")
	flagReportEvery = flag.Int("report-every", 200, "print a kinetic energy / histogram summary every N steps")
)

// harmonicContext is a one-particle hostapi.Context whose force is
// -spring*x; standing in for the force provider a real host supplies.
type harmonicContext struct {
	pos, vel, forces []geom.Vec3
	mass             float64
	spring           float64
	time             float64
}

func (c *harmonicContext) ComputeVirtualSites() {}
func (c *harmonicContext) UpdateContextState()  {}
func (c *harmonicContext) PeriodicBoxVectors() (a, b, cc geom.Vec3) {
	return geom.Vec3{}, geom.Vec3{}, geom.Vec3{}
}
func (c *harmonicContext) CalcForcesAndEnergy(computeForces, computeEnergy bool, groupMask int32) {
	c.forces[0] = c.pos[0].Scale(-c.spring)
}
func (c *harmonicContext) Positions() []geom.Vec3        { return c.pos }
func (c *harmonicContext) SetPositions(pos []geom.Vec3)  { copy(c.pos, pos) }
func (c *harmonicContext) Velocities() []geom.Vec3       { return c.vel }
func (c *harmonicContext) SetVelocities(vel []geom.Vec3) { copy(c.vel, vel) }
func (c *harmonicContext) Forces() []geom.Vec3           { return c.forces }
func (c *harmonicContext) NumParticles() int             { return 1 }
func (c *harmonicContext) ParticleMass(j int) float64    { return c.mass }
func (c *harmonicContext) Time() float64                 { return c.time }
func (c *harmonicContext) SetTime(t float64)              { c.time = t }
func (c *harmonicContext) SetStepCount(n int)              {}

func main() {
	flag.Parse()

	cfg := config.DefaultConfig().
		WithNumCopies(*flagCopies).
		WithStepSize(*flagStepSize).
		WithFriction(*flagFriction).
		WithTemperature(*flagTemperature).
		WithOpenPath(*flagOpenPath).
		WithRandomNumberSeed(uint32(*flagSeed)).
		WithIntegrationForceGroups(1)
	if err := cfg.Validate(); err != nil {
		fmt.Println("invalid configuration:", err)
		return
	}

	ctx := &harmonicContext{
		pos:    make([]geom.Vec3, 1),
		vel:    make([]geom.Vec3, 1),
		forces: make([]geom.Vec3, 1),
		mass:   *flagMass,
		spring: *flagSpring,
	}
	ctx.pos[0] = geom.Vec3{X: 0.1}

	var integ rpmd.Integrator
	if err := integ.Initialize(ctx, cfg); err != nil {
		fmt.Println("initialize failed:", err)
		return
	}

	fmt.Printf(" Ring-polymer harmonic oscillator, %d beads, %s path\n",
		*flagCopies, pathName(*flagOpenPath))
	fmt.Printf(" dt = %v ps, friction = %v ps^-1, T = %v K\n", *flagStepSize, *flagFriction, *flagTemperature)

	dividers := make([]float64, 21)
	for i := range dividers {
		dividers[i] = -5 + float64(i)*0.5
	}
	hist := diagnostics.NewHistogram(dividers)
	forcesAreValid := false

	for step := 0; step < *flagSteps; step++ {
		if err := integ.Execute(ctx, cfg, forcesAreValid); err != nil {
			fmt.Println("execute failed at step", step, ":", err)
			return
		}
		forcesAreValid = true

		hist.Add([]float64{ctx.Velocities()[0].X})

		if *flagReportEvery > 0 && (step+1)%*flagReportEvery == 0 {
			ke := rpmd.ComputeKineticEnergy(ctx, cfg)
			fmt.Printf(" step %6d   KE = %10.6f kJ/mol\n", step+1, ke)
			fmt.Println(hist.String())
		}
	}

	fmt.Println(" velocity-x distribution:")
	fmt.Println(hist.String())
}

func pathName(openPath bool) string {
	if openPath {
		return "open (LePIGS)"
	}
	return "closed (RPMD)"
}
