package normalmode

import (
	"math"
	"testing"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
	"github.com/jacobchausse/openmm/modes"
	"github.com/jacobchausse/openmm/transform"
)

func TestPropagateClosedLeavesFrozenParticleAtRest(Te *testing.T) {
	var s beadstate.Store
	s.Init(4, 2, []float64{1, 0})
	for k := 0; k < 4; k++ {
		s.Positions[k][1] = geom.Vec3{X: 3, Y: -2, Z: 1}
		s.Velocities[k][1] = geom.Vec3{X: 5}
	}
	dft := transform.NewDFT()
	PropagateClosed(&s, dft, 0.001, 300)
	for k := 0; k < 4; k++ {
		if s.Positions[k][1] != (geom.Vec3{X: 3, Y: -2, Z: 1}) {
			Te.Errorf("frozen particle moved at bead %d: %v", k, s.Positions[k][1])
		}
		if s.Velocities[k][1] != (geom.Vec3{X: 5}) {
			Te.Errorf("frozen particle's velocity changed at bead %d: %v", k, s.Velocities[k][1])
		}
	}
}

func TestPropagateClosedSingleBeadDriftsAtConstantVelocity(Te *testing.T) {
	var s beadstate.Store
	s.Init(1, 1, []float64{1})
	s.Positions[0][0] = geom.Vec3{X: 0.1}
	s.Velocities[0][0] = geom.Vec3{X: 0.5}
	dft := transform.NewDFT()
	dt := 0.01
	PropagateClosed(&s, dft, dt, 300)

	want := 0.1 + 0.5*dt
	if math.Abs(s.Positions[0][0].X-want) > 1e-12 {
		Te.Errorf("position = %v, want %v", s.Positions[0][0].X, want)
	}
	if math.Abs(s.Velocities[0][0].X-0.5) > 1e-12 {
		Te.Errorf("single free bead's velocity changed: %v", s.Velocities[0][0].X)
	}
}

// closedModeEnergy returns the sum over internal modes of the conserved
// per-mode harmonic quantity 0.5*(v_k^2 + omega_k^2*q_k^2), plus the
// centroid's kinetic energy, for one Cartesian component of one particle.
// This is the quantity PropagateClosed actually conserves -- unlike the
// Cartesian kinetic energy summed over beads, which trades with internal
// spring potential energy as the ring evolves.
func closedModeEnergy(s *beadstate.Store, dft *transform.DFT, particle, component int, temperature float64) float64 {
	numCopies := s.NumCopies()
	scale := 1.0 / math.Sqrt(float64(numCopies))
	qSeries := geom.ComponentSeries(s.Positions, particle, component, nil)
	vSeries := geom.ComponentSeries(s.Velocities, particle, component, nil)
	qbuf := transform.LoadReal(nil, qSeries, scale)
	vbuf := transform.LoadReal(nil, vSeries, scale)
	qbuf = dft.Forward(qbuf, qbuf)
	vbuf = dft.Forward(vbuf, vbuf)

	energy := 0.5 * real(vbuf[0]) * real(vbuf[0])
	for k := 1; k < numCopies; k++ {
		wk := modes.ClosedFrequency(k, numCopies, temperature)
		energy += 0.5 * (real(vbuf[k])*real(vbuf[k]) + wk*wk*real(qbuf[k])*real(qbuf[k]))
	}
	return energy
}

func TestPropagateClosedConservesModeEnergyOverManySteps(Te *testing.T) {
	var s beadstate.Store
	s.Init(8, 1, []float64{1})
	s.Positions[0][0] = geom.Vec3{X: 0.1, Y: -0.05, Z: 0.02}
	for k := 1; k < 8; k++ {
		s.Positions[k][0] = geom.Vec3{X: 0.1 + 0.01*float64(k), Y: -0.05, Z: 0.02}
	}
	s.Velocities[0][0] = geom.Vec3{X: 0.2, Y: 0.1, Z: -0.1}

	dft := transform.NewDFT()
	temperature := 300.0
	initial := closedModeEnergy(&s, dft, 0, 0, temperature)

	for step := 0; step < 500; step++ {
		PropagateClosed(&s, dft, 0.0002, temperature)
	}

	final := closedModeEnergy(&s, dft, 0, 0, temperature)
	if math.Abs(final-initial) > 1e-6*math.Abs(initial) {
		Te.Errorf("mode energy drifted: initial=%v final=%v", initial, final)
	}
}

func TestPropagateOpenLeavesFrozenParticleAtRest(Te *testing.T) {
	var s beadstate.Store
	s.Init(4, 2, []float64{1, 0})
	for k := 0; k < 4; k++ {
		s.Positions[k][1] = geom.Vec3{X: 3, Y: -2, Z: 1}
		s.Velocities[k][1] = geom.Vec3{X: 5}
	}
	dct := transform.NewDCT()
	PropagateOpen(&s, dct, 0.001, 300)
	for k := 0; k < 4; k++ {
		if s.Positions[k][1] != (geom.Vec3{X: 3, Y: -2, Z: 1}) {
			Te.Errorf("frozen particle moved at bead %d: %v", k, s.Positions[k][1])
		}
		if s.Velocities[k][1] != (geom.Vec3{X: 5}) {
			Te.Errorf("frozen particle's velocity changed at bead %d: %v", k, s.Velocities[k][1])
		}
	}
}

// TestPropagateOpenSingleBeadDriftsAtConstantVelocity exercises the
// single-bead (N=1) case of the open path. Because DCT's forward/inverse
// pair is doubly normalized (see transform.DCT's doc comment and
// DESIGN.md's Open Question 1), a round trip through Forward and Inverse
// scales by 1/(2N); PropagateOpen does one such round trip per call, so
// the result is the free-drift position and velocity scaled by 1/2, not
// the undamped drift the closed path produces.
func TestPropagateOpenSingleBeadDriftsAtConstantVelocity(Te *testing.T) {
	var s beadstate.Store
	s.Init(1, 1, []float64{1})
	s.Positions[0][0] = geom.Vec3{X: -0.2}
	s.Velocities[0][0] = geom.Vec3{X: 0.3}
	dct := transform.NewDCT()
	dt := 0.01
	PropagateOpen(&s, dct, dt, 300)

	wantPos := (-0.2 + 0.3*dt) / 2
	wantVel := 0.3 / 2
	if math.Abs(s.Positions[0][0].X-wantPos) > 1e-9 {
		Te.Errorf("position = %v, want %v", s.Positions[0][0].X, wantPos)
	}
	if math.Abs(s.Velocities[0][0].X-wantVel) > 1e-9 {
		Te.Errorf("velocity = %v, want %v", s.Velocities[0][0].X, wantVel)
	}
}
