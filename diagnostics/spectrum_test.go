package diagnostics

import (
	"math"
	"testing"
)

func TestAutocorrelationPeaksAtZeroLag(Te *testing.T) {
	n := 64
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(float64(i) * 0.3)
	}
	s := NewSpectrum(n)
	ac := s.Autocorrelation(series)
	peak := ac[0]
	for lag, v := range ac {
		if v > peak+1e-9 {
			Te.Errorf("lag %d (%v) exceeds zero-lag value (%v)", lag, v, peak)
		}
	}
}

func TestCrossCorrelationOfIdenticalSeriesMatchesAutocorrelation(Te *testing.T) {
	n := 32
	series := make([]float64, n)
	for i := range series {
		series[i] = float64(i%5) - 2
	}
	s := NewSpectrum(n)
	ac := s.Autocorrelation(series)
	cc := s.CrossCorrelation(series, series)
	for i := range ac {
		if math.Abs(ac[i]-cc[i]) > 1e-9 {
			Te.Errorf("index %d: autocorrelation=%v cross-correlation=%v", i, ac[i], cc[i])
		}
	}
}
