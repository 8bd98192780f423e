package geom

// Tensor is a bead-indexed, particle-indexed array of Vec3: Tensor[k][j] is
// the value for bead k, particle j. It backs positions, velocities and
// forces throughout the kernel (spec data model §3).
type Tensor [][]Vec3

// NewTensor allocates a Tensor with numCopies beads and numParticles
// particles, all entries zeroed.
func NewTensor(numCopies, numParticles int) Tensor {
	t := make(Tensor, numCopies)
	for k := range t {
		t[k] = make([]Vec3, numParticles)
	}
	return t
}

// NumCopies returns the number of beads.
func (t Tensor) NumCopies() int { return len(t) }

// NumParticles returns the number of particles, or 0 for an empty tensor.
func (t Tensor) NumParticles() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// ComponentSeries extracts the bead-indexed series x[0..N)[particle][component]
// into dst, growing it if necessary, and returns it. This is the slice a
// 1-D transform operates on.
func ComponentSeries(t Tensor, particle, component int, dst []float64) []float64 {
	n := t.NumCopies()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for k := 0; k < n; k++ {
		dst[k] = t[k][particle].Component(component)
	}
	return dst
}

// SetComponentSeries writes src back into t[0..N)[particle][component].
func SetComponentSeries(t Tensor, particle, component int, src []float64) {
	for k, x := range src {
		t[k][particle] = t[k][particle].WithComponent(component, x)
	}
}
