package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// ReadHeader reads and validates a canonical 44-byte WAV header
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("error reading WAV header: %w", err)
	}
	if err := h.Validate(); err != nil {
		return h, err
	}
	return h, nil
}

// Audio is a fully decoded PCM stream
type Audio struct {
	NumChannels int
	SampleRate  int
	BitDepth    int
	Samples     []int // interleaved
}

// NumFrames is the number of multi-channel frames in the stream
func (a *Audio) NumFrames() int {
	if a.NumChannels == 0 {
		return 0
	}
	return len(a.Samples) / a.NumChannels
}

// Channel extracts one channel, scaled to [-1, 1)
func (a *Audio) Channel(ch int) []float64 {
	if ch < 0 || ch >= a.NumChannels {
		return nil
	}
	scale := float64(int(1) << (a.BitDepth - 1))
	out := make([]float64, 0, a.NumFrames())
	for i := ch; i < len(a.Samples); i += a.NumChannels {
		out = append(out, float64(a.Samples[i])/scale)
	}
	return out
}

// Decode reads any PCM WAV the go-audio decoder understands, including files
// carrying extra chunks before the data chunk.
func Decode(r io.ReadSeeker) (*Audio, error) {
	decoder := gowav.NewDecoder(r)
	if !decoder.IsValidFile() {
		if err := decoder.Err(); err != nil {
			return nil, fmt.Errorf("invalid WAV file: %w", err)
		}
		return nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV file: %w", err)
	}

	return &Audio{
		NumChannels: int(decoder.NumChans),
		SampleRate:  int(decoder.SampleRate),
		BitDepth:    int(decoder.BitDepth),
		Samples:     buf.Data,
	}, nil
}
