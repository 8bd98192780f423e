package trajectory

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
)

func TestWriteThenReadFrameRoundTrips(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "run.rpmdtraj")

	var s beadstate.Store
	s.Init(3, 2, []float64{1, 18})
	for k := 0; k < 3; k++ {
		s.Positions[k][0] = geom.Vec3{X: float64(k), Y: 1, Z: 2}
		s.Velocities[k][1] = geom.Vec3{X: -float64(k)}
	}

	w, err := NewWriter(path, 3, 2)
	if err != nil {
		Te.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteFrame(&s, 0.5); err != nil {
		Te.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.Close(); err != nil {
		Te.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(path)
	if err != nil {
		Te.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	if r.NumCopies != 3 || r.NumParticles != 2 {
		Te.Fatalf("header shape = %dx%d, want 3x2", r.NumCopies, r.NumParticles)
	}

	var got beadstate.Store
	got.Init(3, 2, []float64{1, 18})
	time, err := r.ReadFrame(&got)
	if err != nil {
		Te.Fatalf("ReadFrame failed: %v", err)
	}
	if time != 0.5 {
		Te.Errorf("time = %v, want 0.5", time)
	}
	for k := 0; k < 3; k++ {
		if got.Positions[k][0] != s.Positions[k][0] {
			Te.Errorf("Positions[%d][0] = %v, want %v", k, got.Positions[k][0], s.Positions[k][0])
		}
		if got.Velocities[k][1] != s.Velocities[k][1] {
			Te.Errorf("Velocities[%d][1] = %v, want %v", k, got.Velocities[k][1], s.Velocities[k][1])
		}
	}

	if _, err := r.ReadFrame(&got); !errors.Is(err, io.EOF) {
		Te.Errorf("expected io.EOF after the last frame, got %v", err)
	}
}

func TestWriteFrameRejectsShapeMismatch(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "run.rpmdtraj")
	w, err := NewWriter(path, 2, 1)
	if err != nil {
		Te.Fatalf("NewWriter failed: %v", err)
	}
	defer w.Close()

	var s beadstate.Store
	s.Init(4, 1, []float64{1})
	if err := w.WriteFrame(&s, 0); err == nil {
		Te.Fatal("expected an error for mismatched frame shape")
	}
}

func TestNewReaderRejectsNonCheckpointFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "notatraj.bin")
	if err := os.WriteFile(path, []byte("not a checkpoint"), 0644); err != nil {
		Te.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := NewReader(path); err == nil {
		Te.Fatal("expected an error for a non-checkpoint file")
	}
}
