package generator

import "math"

const (
	// FullScale is the peak used for a single mono tone
	FullScale = 32767
	// HalfScale leaves headroom so two summed channels cannot clip
	HalfScale = 16383
)

// NumSamples is the number of frames in duration seconds at sampleRate
func NumSamples(duration float64, sampleRate int) int {
	n := int(float64(sampleRate) * duration)
	if n < 0 {
		return 0
	}
	return n
}

// Sine synthesizes a sine tone as 16-bit samples scaled to amplitude
func Sine(frequency, duration float64, sampleRate int, amplitude float64) []int16 {
	n := NumSamples(duration, sampleRate)
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		v := math.Round(math.Sin(2*math.Pi*frequency*t) * amplitude)
		samples[i] = clamp16(v)
	}
	return samples
}

func clamp16(v float64) int16 {
	return int16(max(math.MinInt16, min(math.MaxInt16, v)))
}
