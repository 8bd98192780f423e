package forces

import (
	"testing"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
)

type fakeContext struct {
	pos, vel, forces []geom.Vec3
	box              geom.Vec3
	moveBoxOnUpdate  bool
	calcCalls        int
}

func (f *fakeContext) ComputeVirtualSites() {}
func (f *fakeContext) UpdateContextState() {
	if f.moveBoxOnUpdate {
		f.box = f.box.Add(geom.Vec3{X: 1})
	}
}
func (f *fakeContext) PeriodicBoxVectors() (a, b, c geom.Vec3) { return f.box, f.box, f.box }
func (f *fakeContext) CalcForcesAndEnergy(computeForces, computeEnergy bool, groupMask int32) {
	f.calcCalls++
	f.forces = make([]geom.Vec3, len(f.pos))
	for i := range f.pos {
		f.forces[i] = geom.Vec3{X: -f.pos[i].X}
	}
}
func (f *fakeContext) Positions() []geom.Vec3          { return f.pos }
func (f *fakeContext) SetPositions(pos []geom.Vec3)    { f.pos = append([]geom.Vec3(nil), pos...) }
func (f *fakeContext) Velocities() []geom.Vec3         { return f.vel }
func (f *fakeContext) SetVelocities(vel []geom.Vec3)   { f.vel = append([]geom.Vec3(nil), vel...) }
func (f *fakeContext) Forces() []geom.Vec3             { return f.forces }
func (f *fakeContext) NumParticles() int               { return len(f.pos) }
func (f *fakeContext) ParticleMass(j int) float64      { return 1 }
func (f *fakeContext) Time() float64                   { return 0 }
func (f *fakeContext) SetTime(t float64)               {}
func (f *fakeContext) SetStepCount(n int)              {}

func TestEvaluateAllCollectsForces(Te *testing.T) {
	var s beadstate.Store
	s.Init(3, 2, []float64{1, 1})
	for k := 0; k < 3; k++ {
		s.Positions[k][0] = geom.Vec3{X: float64(k) + 1}
		s.Positions[k][1] = geom.Vec3{X: 10}
	}
	ctx := &fakeContext{}
	if err := EvaluateAll(&s, ctx, 1); err != nil {
		Te.Fatalf("unexpected error: %v", err)
	}
	if ctx.calcCalls != 3 {
		Te.Fatalf("calcCalls = %d, want 3", ctx.calcCalls)
	}
	for k := 0; k < 3; k++ {
		want := -(float64(k) + 1)
		if s.Forces[k][0].X != want {
			Te.Errorf("Forces[%d][0].X = %v, want %v", k, s.Forces[k][0].X, want)
		}
	}
}

func TestEvaluateAllDetectsBoxVectorChange(Te *testing.T) {
	var s beadstate.Store
	s.Init(2, 1, []float64{1})
	ctx := &fakeContext{moveBoxOnUpdate: true}
	err := EvaluateAll(&s, ctx, 1)
	if err == nil {
		Te.Fatal("expected an error when box vectors change mid-evaluation")
	}
}

func TestHalveOpenPathEndpointForces(Te *testing.T) {
	var s beadstate.Store
	s.Init(4, 1, []float64{1})
	for k := 0; k < 4; k++ {
		s.Forces[k][0] = geom.Vec3{X: 2}
	}
	HalveOpenPathEndpointForces(&s)
	if s.Forces[0][0].X != 1 || s.Forces[3][0].X != 1 {
		Te.Errorf("endpoint forces not halved: %v, %v", s.Forces[0][0], s.Forces[3][0])
	}
	if s.Forces[1][0].X != 2 || s.Forces[2][0].X != 2 {
		Te.Errorf("interior forces changed: %v, %v", s.Forces[1][0], s.Forces[2][0])
	}
}
