package generator

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattetti/cdp-testaudio/internal/spectrum"
	"github.com/mattetti/cdp-testaudio/internal/wav"
)

func newTestGenerator(t *testing.T) (*Generator, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	return NewGenerator(Options{Debug: true}, logger), &logs
}

func TestSineSamples(t *testing.T) {
	s := Sine(440, 0.01, 44100, FullScale)
	require.Len(t, s, 441)
	assert.Equal(t, int16(0), s[0])

	// one sample per quarter period
	q := Sine(1, 1, 4, FullScale)
	assert.Equal(t, []int16{0, 32767, 0, -32767}, q)

	h := Sine(1, 1, 4, HalfScale)
	assert.Equal(t, []int16{0, 16383, 0, -16383}, h)
}

func TestSineClamps(t *testing.T) {
	for _, v := range Sine(1, 1, 4, 40000) {
		assert.GreaterOrEqual(t, v, int16(-32768))
		assert.LessOrEqual(t, v, int16(32767))
	}
	assert.Equal(t, int16(32767), clamp16(1e9))
	assert.Equal(t, int16(-32768), clamp16(-1e9))
}

func TestNumSamples(t *testing.T) {
	assert.Equal(t, 88200, NumSamples(2.0, 44100))
	assert.Equal(t, 4410, NumSamples(0.1, 44100))
	assert.Zero(t, NumSamples(0, 44100))
	assert.Zero(t, NumSamples(-1, 44100))
}

func readFile(t *testing.T, path string) (wav.Header, []int16) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	h, err := wav.ReadHeader(bytes.NewReader(data))
	require.NoError(t, err)

	samples := make([]int16, (len(data)-wav.HeaderSize)/2)
	require.NoError(t, binary.Read(bytes.NewReader(data[wav.HeaderSize:]), binary.LittleEndian, samples))
	return h, samples
}

func TestGeneratorSineDefaults(t *testing.T) {
	g, logs := newTestGenerator(t)
	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, g.Sine(path, DefaultSine()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 44+88200*2, info.Size())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x52, 0x49, 0x46, 0x46}, data[0:4])
	assert.Equal(t, []byte{0x57, 0x41, 0x56, 0x45}, data[8:12])
	assert.Equal(t, []byte{0x66, 0x6D, 0x74, 0x20}, data[12:16])

	h, _ := readFile(t, path)
	assert.EqualValues(t, 1, h.NumChannels)
	assert.EqualValues(t, 44100, h.SampleRate)
	assert.EqualValues(t, 16, h.BitsPerSample)
	assert.EqualValues(t, 88200, h.ByteRate)
	assert.EqualValues(t, 2, h.BlockAlign)
	assert.EqualValues(t, 88200*2, h.DataSize)

	assert.Contains(t, logs.String(), "Writing WAV")
}

func TestGeneratorSineSizes(t *testing.T) {
	g, _ := newTestGenerator(t)
	tests := []SineParams{
		{Frequency: 440, Duration: 0.5, SampleRate: 8000},
		{Frequency: 1000, Duration: 1, SampleRate: 48000},
		{Frequency: 60, Duration: 0.25, SampleRate: 22050},
		{Frequency: 440, Duration: 0, SampleRate: 44100},
	}

	for _, p := range tests {
		path := filepath.Join(t.TempDir(), "sine.wav")
		require.NoError(t, g.Sine(path, p))

		n := NumSamples(p.Duration, p.SampleRate)
		h, samples := readFile(t, path)
		assert.EqualValues(t, n*2, h.DataSize)
		assert.Len(t, samples, n)
		assert.EqualValues(t, p.SampleRate, h.SampleRate)
	}
}

func TestGeneratorSineTone(t *testing.T) {
	g, _ := newTestGenerator(t)
	path := filepath.Join(t.TempDir(), "tone.wav")
	require.NoError(t, g.Sine(path, SineParams{Frequency: 440, Duration: 0.5, SampleRate: 8000}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	a, err := wav.Decode(f)
	require.NoError(t, err)
	assert.InDelta(t, 440, spectrum.DominantFrequency(a.Channel(0), a.SampleRate), 2)
}

func TestGeneratorStereo(t *testing.T) {
	g, _ := newTestGenerator(t)
	path := filepath.Join(t.TempDir(), "stereo_test.wav")
	p := DefaultStereo()
	p.Duration = 0.5
	require.NoError(t, g.Stereo(path, p))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 44+22050*4, info.Size())

	h, samples := readFile(t, path)
	assert.EqualValues(t, 2, h.NumChannels)
	assert.EqualValues(t, 44100*4, h.ByteRate)
	assert.EqualValues(t, 4, h.BlockAlign)
	require.Len(t, samples, 22050*2)

	left := Sine(440, 0.5, 44100, HalfScale)
	right := Sine(880, 0.5, 44100, HalfScale)
	for i := 0; i < 22050; i++ {
		require.Equal(t, left[i], samples[i*2], "left frame %d", i)
		require.Equal(t, right[i], samples[i*2+1], "right frame %d", i)
	}
	for _, s := range samples {
		require.GreaterOrEqual(t, s, int16(-16383))
		require.LessOrEqual(t, s, int16(16383))
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	a, err := wav.Decode(f)
	require.NoError(t, err)
	assert.InDelta(t, 440, spectrum.DominantFrequency(a.Channel(0), a.SampleRate), 2)
	assert.InDelta(t, 880, spectrum.DominantFrequency(a.Channel(1), a.SampleRate), 2)
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator(Options{}, nil)
	dir := t.TempDir()

	err := g.Sine(filepath.Join(dir, "nope", "x.wav"), DefaultSine())
	assert.Error(t, err)

	err = g.Sine(filepath.Join(dir, "x.wav"), SineParams{Frequency: 440, Duration: 1})
	assert.ErrorContains(t, err, "sample rate")

	err = g.Stereo(filepath.Join(dir, "y.wav"), StereoParams{LeftFrequency: -1, Duration: 1, SampleRate: 8000})
	assert.ErrorContains(t, err, "frequency")
}
