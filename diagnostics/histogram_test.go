package diagnostics

import "testing"

func TestHistogramAccumulatesAcrossCalls(Te *testing.T) {
	h := NewHistogram([]float64{0, 1, 2, 3})
	h.Add([]float64{0.5, 0.5, 1.5})
	h.Add([]float64{2.5})
	if h.Total() != 4 {
		Te.Fatalf("Total() = %d, want 4", h.Total())
	}
	counts := h.Counts()
	want := []float64{2, 1, 1}
	for i, v := range want {
		if counts[i] != v {
			Te.Errorf("Counts()[%d] = %v, want %v", i, counts[i], v)
		}
	}
}

func TestHistogramNormalized(Te *testing.T) {
	h := NewHistogram([]float64{0, 1, 2})
	h.Add([]float64{0.1, 0.2, 1.1})
	norm := h.Normalized()
	if norm[0] != 2.0/3.0 {
		Te.Errorf("Normalized()[0] = %v, want %v", norm[0], 2.0/3.0)
	}
}

func TestHistogramEmptyNormalizedIsZero(Te *testing.T) {
	h := NewHistogram([]float64{0, 1, 2})
	for _, v := range h.Normalized() {
		if v != 0 {
			Te.Errorf("expected zero normalization before any Add, got %v", v)
		}
	}
}
