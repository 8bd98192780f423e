/*
 * writer.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package trajectory writes and reads zstd-compressed bead-state
// checkpoints, adapted from the header+frame-stream structure of
// _examples/rmera-gochem/traj/stf/stf.go. Unlike that teacher format,
// frames here are fixed-width binary (encoding/binary), since a bead
// series has no use for the teacher's human-inspectable integer-coordinate
// text encoding.
package trajectory

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
	"github.com/klauspost/compress/zstd"
)

const magic uint32 = 0x52504d44 // "RPMD"

// Writer appends bead-state frames to a zstd-compressed checkpoint file.
type Writer struct {
	f                       *os.File
	enc                     *zstd.Encoder
	numCopies, numParticles int
}

// NewWriter creates name and writes its header (numCopies, numParticles).
func NewWriter(name string, numCopies, numParticles int) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, err
	}
	w := &Writer{f: f, enc: enc, numCopies: numCopies, numParticles: numParticles}
	if err := binary.Write(enc, binary.LittleEndian, magic); err != nil {
		return nil, err
	}
	if err := binary.Write(enc, binary.LittleEndian, int32(numCopies)); err != nil {
		return nil, err
	}
	if err := binary.Write(enc, binary.LittleEndian, int32(numParticles)); err != nil {
		return nil, err
	}
	return w, nil
}

// WriteFrame appends store's positions and velocities, tagged with time,
// as the next frame. store's shape must match the writer's header.
func (w *Writer) WriteFrame(store *beadstate.Store, time float64) error {
	if store.NumCopies() != w.numCopies || store.NumParticles() != w.numParticles {
		return fmt.Errorf("trajectory: frame shape %dx%d does not match writer shape %dx%d",
			store.NumCopies(), store.NumParticles(), w.numCopies, w.numParticles)
	}
	if err := binary.Write(w.enc, binary.LittleEndian, time); err != nil {
		return err
	}
	if err := writeTensor(w.enc, store.Positions, w.numCopies, w.numParticles); err != nil {
		return err
	}
	return writeTensor(w.enc, store.Velocities, w.numCopies, w.numParticles)
}

func writeTensor(w *zstd.Encoder, t geom.Tensor, numCopies, numParticles int) error {
	for k := 0; k < numCopies; k++ {
		for p := 0; p < numParticles; p++ {
			v := t[k][p]
			if err := binary.Write(w, binary.LittleEndian, [3]float64{v.X, v.Y, v.Z}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close flushes and closes the underlying zstd stream and file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return err
	}
	return w.f.Close()
}
