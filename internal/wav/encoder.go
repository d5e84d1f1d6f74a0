package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Encoder handles encoding 16-bit PCM samples to WAV format
type Encoder struct {
	w      io.Writer
	format Format
}

// NewEncoder creates a new WAV encoder
func NewEncoder(w io.Writer, f Format) *Encoder {
	return &Encoder{
		w:      w,
		format: f,
	}
}

// Encode writes the header followed by the interleaved samples.
// len(samples) must be a multiple of the channel count.
func (e *Encoder) Encode(samples []int16) error {
	if e.format.NumChannels == 0 || len(samples)%int(e.format.NumChannels) != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrChannelMismatch, len(samples), e.format.NumChannels)
	}
	if e.format.BitsPerSample != sampleBits {
		return fmt.Errorf("%w: encoder only writes %d-bit samples", ErrUnsupportedFormat, sampleBits)
	}

	header := NewHeader(e.format, len(samples)/int(e.format.NumChannels))

	bw := bufio.NewWriter(e.w)

	// Write header
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("error writing WAV header: %w", err)
	}

	// Write audio data
	if err := binary.Write(bw, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("error writing audio data: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error flushing audio data: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes a WAV file to it
func WriteFile(path string, f Format, samples []int16) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", cerr)
		}
	}()

	return NewEncoder(file, f).Encode(samples)
}

// Interleave interleaves the left and right channel samples for stereo WAV.
// A shorter right channel is padded with silence.
func Interleave(left, right []int16) []int16 {
	result := make([]int16, len(left)*2)

	for i := range left {
		result[i*2] = left[i]
		if i < len(right) {
			result[i*2+1] = right[i]
		}
	}

	return result
}
