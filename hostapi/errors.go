/*
 * errors.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package hostapi

import "fmt"

// Error is the error type every package in this module returns. It mirrors
// the Error type/interface pair in the teacher library
// (_examples/rmera-gochem/interfaces.go's Error interface and
// _examples/rmera-gochem/v3/gonum.go's Error struct): a message plus a
// decoration trail built up as the error is passed up the call stack,
// and a Critical flag distinguishing fatal configuration/runtime errors
// from ones a caller might choose to ignore.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns the error message.
func (e Error) Error() string {
	return e.message
}

// Decorate appends dec to the error's decoration trail and returns the
// resulting trail. Passing an empty string just returns the current trail.
func (e *Error) Decorate(dec string) []string {
	if dec != "" {
		e.deco = append(e.deco, dec)
	}
	return e.deco
}

// Critical reports whether the error is fatal to the current step or run.
func (e Error) Critical() bool {
	return e.critical
}

func newError(critical bool, format string, args ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, args...), critical: critical}
}

// ErrForceGroupRange is raised at Initialize when a contraction names a
// force group outside [0, 31] (spec §6/§7).
func ErrForceGroupRange(group int) Error {
	return newError(true, "Force group must be between 0 and 31")
}

// ErrContractionCopies is raised at Initialize when a contraction names
// more copies than the integrator is simulating (spec §6/§7).
func ErrContractionCopies() Error {
	return newError(true, "Number of copies for contraction cannot be greater than the total number of copies being simulated")
}

// ErrBarostatUnsupported is raised mid-step when the Context's box vectors
// change across a force evaluation (spec §6/§7, invariant 3).
func ErrBarostatUnsupported() Error {
	return newError(true, "Standard barostats cannot be used with RPMDIntegrator. Use RPMDMonteCarloBarostat instead.")
}

// ErrOpenPathContraction is raised when a contraction is configured and the
// integrator is run in open-path (PIGS/LePIGS) mode (spec §6/§7).
func ErrOpenPathContraction() Error {
	return newError(true, "Contractions are not implemented for LePIGS!")
}
