// Package spectrum gives coarse spectral views of PCM audio, enough to tell
// whether two renders of the same material sound alike.
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// BlockSize is the FFT length used by Magnitudes when none is given
const BlockSize = 2048

// Magnitudes runs an FFT over consecutive blocks of samples and concatenates
// the magnitude of every bin. The final block is zero padded.
func Magnitudes(samples []float64, blockSize int) []float64 {
	if blockSize <= 0 {
		blockSize = BlockSize
	}
	var mags []float64
	buf := make([]float64, blockSize)
	for start := 0; start < len(samples); start += blockSize {
		n := copy(buf, samples[start:])
		clear(buf[n:])
		for _, c := range fft.FFTReal(buf) {
			mags = append(mags, cmplx.Abs(c))
		}
	}
	return mags
}

// Correlation is the cosine similarity of two magnitude spectra after
// normalising each to unit sum. Empty or silent input yields 0.
func Correlation(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	a, b = a[:n], b[:n]

	var sumA, sumB float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
	}
	if sumA == 0 || sumB == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		x, y := a[i]/sumA, b[i]/sumB
		dot += x * y
		magA += x * x
		magB += y * y
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// DominantFrequency returns the centre frequency of the strongest non-DC bin
// of a single FFT over all samples.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}
	out := fft.FFTReal(samples)
	best, bestMag := 0, 0.0
	for i, v := range out[1 : len(out)/2+1] {
		if m := cmplx.Abs(v); m > bestMag {
			best, bestMag = i+1, m
		}
	}
	return float64(best) * float64(sampleRate) / float64(len(samples))
}
