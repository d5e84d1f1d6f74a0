package generator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mattetti/cdp-testaudio/internal/wav"
)

// Options represents the generation options
type Options struct {
	Debug bool
}

// SineParams describes a mono sine fixture
type SineParams struct {
	Frequency  float64 // Hz
	Duration   float64 // seconds
	SampleRate int     // Hz
}

// DefaultSine is a 2 second A4 at CD rate
func DefaultSine() SineParams {
	return SineParams{Frequency: 440, Duration: 2.0, SampleRate: 44100}
}

// StereoParams describes a two-tone stereo fixture
type StereoParams struct {
	LeftFrequency  float64
	RightFrequency float64
	Duration       float64
	SampleRate     int
}

// DefaultStereo is A4 on the left and A5 on the right for 2 seconds
func DefaultStereo() StereoParams {
	return StereoParams{LeftFrequency: 440, RightFrequency: 880, Duration: 2.0, SampleRate: 44100}
}

// Generator handles synthesizing fixtures and writing them to disk
type Generator struct {
	options Options
	logger  *log.Logger
}

// NewGenerator creates a new generator
func NewGenerator(options Options, logger *log.Logger) *Generator {
	return &Generator{
		options: options,
		logger:  logger,
	}
}

// Sine writes a mono 16-bit sine wave to path
func (g *Generator) Sine(path string, p SineParams) error {
	if err := validate(p.SampleRate, p.Duration, p.Frequency); err != nil {
		return err
	}

	format := wav.Mono16(p.SampleRate)
	samples := Sine(p.Frequency, p.Duration, p.SampleRate, FullScale)
	g.debug(path, format, len(samples))

	if err := wav.WriteFile(path, format, samples); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Stereo writes a 2-channel 16-bit file, one tone per channel at half scale
func (g *Generator) Stereo(path string, p StereoParams) error {
	if err := validate(p.SampleRate, p.Duration, p.LeftFrequency, p.RightFrequency); err != nil {
		return err
	}

	format := wav.Stereo16(p.SampleRate)
	left := Sine(p.LeftFrequency, p.Duration, p.SampleRate, HalfScale)
	right := Sine(p.RightFrequency, p.Duration, p.SampleRate, HalfScale)
	g.debug(path, format, len(left))

	if err := wav.WriteFile(path, format, wav.Interleave(left, right)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (g *Generator) debug(path string, f wav.Format, frames int) {
	if !g.options.Debug || g.logger == nil {
		return
	}
	h := wav.NewHeader(f, frames)
	g.logger.Debug("Writing WAV",
		"file", path,
		"channels", h.NumChannels,
		"sample_rate", h.SampleRate,
		"byte_rate", h.ByteRate,
		"block_align", h.BlockAlign,
		"frames", frames,
		"data_size", h.DataSize,
	)
}

func validate(sampleRate int, duration float64, freqs ...float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if duration < 0 {
		return fmt.Errorf("duration must not be negative, got %g", duration)
	}
	for _, f := range freqs {
		if f < 0 {
			return fmt.Errorf("frequency must not be negative, got %g", f)
		}
	}
	return nil
}
