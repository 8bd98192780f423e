/*
 * reader.go, part of openmm/rpmd.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package trajectory

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/jacobchausse/openmm/beadstate"
	"github.com/jacobchausse/openmm/geom"
	"github.com/klauspost/compress/zstd"
)

// Reader reads frames back out of a checkpoint file written by Writer.
type Reader struct {
	f                       *os.File
	dec                     *zstd.Decoder
	NumCopies, NumParticles int
}

// NewReader opens name and reads its header.
func NewReader(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r := &Reader{f: f, dec: dec}

	var got uint32
	if err := binary.Read(dec, binary.LittleEndian, &got); err != nil {
		return nil, err
	}
	if got != magic {
		return nil, fmt.Errorf("trajectory: %s is not a checkpoint file", name)
	}
	var numCopies, numParticles int32
	if err := binary.Read(dec, binary.LittleEndian, &numCopies); err != nil {
		return nil, err
	}
	if err := binary.Read(dec, binary.LittleEndian, &numParticles); err != nil {
		return nil, err
	}
	r.NumCopies = int(numCopies)
	r.NumParticles = int(numParticles)
	return r, nil
}

// ReadFrame reads the next frame's positions and velocities into store,
// which must already be Init'd to the reader's shape, and returns the
// frame's simulation time. io.EOF is returned, unwrapped, once the
// trajectory is exhausted.
func (r *Reader) ReadFrame(store *beadstate.Store) (float64, error) {
	var time float64
	if err := binary.Read(r.dec, binary.LittleEndian, &time); err != nil {
		return 0, err
	}
	if err := readTensor(r.dec, store.Positions, r.NumCopies, r.NumParticles); err != nil {
		return 0, err
	}
	if err := readTensor(r.dec, store.Velocities, r.NumCopies, r.NumParticles); err != nil {
		return 0, err
	}
	return time, nil
}

func readTensor(dec *zstd.Decoder, t geom.Tensor, numCopies, numParticles int) error {
	for k := 0; k < numCopies; k++ {
		for p := 0; p < numParticles; p++ {
			var v [3]float64
			if err := binary.Read(dec, binary.LittleEndian, &v); err != nil {
				return err
			}
			t[k][p] = geom.Vec3{X: v[0], Y: v[1], Z: v[2]}
		}
	}
	return nil
}

// Close closes the underlying zstd stream and file.
func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}
