/*
 * config.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package config describes one integrator run: the knobs named in
// hostapi.IntegratorParams plus the defaults a standalone run (outside a
// host process) needs to get started (spec §4.O).
package config

import "github.com/jacobchausse/openmm/hostapi"

// Config holds one run's integrator parameters. Its getters satisfy
// hostapi.IntegratorParams directly, so a Config can be handed straight
// to Integrator.Initialize.
//
// _examples/rmera-gochem/solv/solvation.go's Options pairs each field
// with a single get-and-optionally-set accessor
// (`func (r *Options) Cpus(cpus ...int) int`). That variadic shape can't
// satisfy a fixed-signature interface method, so here the getter and
// setter are split: a zero-arg getter matching hostapi.IntegratorParams,
// and a fluent With* mutator for building a Config up before a run.
type Config struct {
	numCopies               int
	stepSize                float64
	friction                float64
	temperature             float64
	applyThermostat         bool
	useOpenPath             bool
	randomNumberSeed        uint32
	contractions            map[int]int
	integrationForceGroups  int32
}

// DefaultConfig returns a Config with the defaults a standalone run uses
// absent any host-specific configuration.
func DefaultConfig() *Config {
	return &Config{
		numCopies:              32,
		stepSize:               0.0005,
		friction:               1.0,
		temperature:            300.0,
		applyThermostat:        true,
		useOpenPath:            false,
		randomNumberSeed:       0,
		contractions:           map[int]int{},
		integrationForceGroups: -1,
	}
}

func (c *Config) NumCopies() int                { return c.numCopies }
func (c *Config) StepSize() float64             { return c.stepSize }
func (c *Config) Friction() float64             { return c.friction }
func (c *Config) Temperature() float64          { return c.temperature }
func (c *Config) ApplyThermostat() bool         { return c.applyThermostat }
func (c *Config) UseOpenPath() bool             { return c.useOpenPath }
func (c *Config) RandomNumberSeed() uint32      { return c.randomNumberSeed }
func (c *Config) Contractions() map[int]int     { return c.contractions }
func (c *Config) IntegrationForceGroups() int32 { return c.integrationForceGroups }

func (c *Config) WithNumCopies(n int) *Config        { c.numCopies = n; return c }
func (c *Config) WithStepSize(dt float64) *Config     { c.stepSize = dt; return c }
func (c *Config) WithFriction(gamma float64) *Config  { c.friction = gamma; return c }
func (c *Config) WithTemperature(t float64) *Config   { c.temperature = t; return c }
func (c *Config) WithApplyThermostat(b bool) *Config  { c.applyThermostat = b; return c }
func (c *Config) WithOpenPath(b bool) *Config          { c.useOpenPath = b; return c }
func (c *Config) WithRandomNumberSeed(seed uint32) *Config {
	c.randomNumberSeed = seed
	return c
}
func (c *Config) WithContraction(group, numCopies int) *Config {
	c.contractions[group] = numCopies
	return c
}
func (c *Config) WithIntegrationForceGroups(mask int32) *Config {
	c.integrationForceGroups = mask
	return c
}

// Validate checks the contraction map against the same rules
// Integrator.Initialize enforces (spec §6/§7), so a host can surface a
// configuration mistake before ever calling Initialize.
func (c *Config) Validate() error {
	for group, m := range c.contractions {
		if group < 0 || group > 31 {
			return hostapi.ErrForceGroupRange(group)
		}
		if m > c.numCopies {
			return hostapi.ErrContractionCopies()
		}
	}
	return nil
}
