package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tone(freq float64, n, rate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
	}
	return out
}

func TestDominantFrequency(t *testing.T) {
	for _, freq := range []float64{440, 880, 1000} {
		got := DominantFrequency(tone(freq, 8000, 8000), 8000)
		assert.InDelta(t, freq, got, 1, "freq %v", freq)
	}
	assert.Zero(t, DominantFrequency(nil, 44100))
	assert.Zero(t, DominantFrequency([]float64{1, 2}, 0))
}

func TestMagnitudesBlocks(t *testing.T) {
	mags := Magnitudes(make([]float64, 300), 256)
	require.Len(t, mags, 512)
	for _, m := range mags {
		assert.Zero(t, m)
	}

	assert.Len(t, Magnitudes(make([]float64, 10), 0), BlockSize)
	assert.Empty(t, Magnitudes(nil, 64))
}

func TestCorrelation(t *testing.T) {
	a := Magnitudes(tone(440, 4096, 44100), 1024)
	b := Magnitudes(tone(3000, 4096, 44100), 1024)

	assert.InDelta(t, 1, Correlation(a, a), 1e-9)
	assert.Less(t, Correlation(a, b), 0.5)
	assert.Zero(t, Correlation(nil, a))
	assert.Zero(t, Correlation(make([]float64, 8), a))
}
