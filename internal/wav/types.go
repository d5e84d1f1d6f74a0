package wav

import (
	"errors"
	"fmt"
)

const (
	// HeaderSize is the size of the canonical RIFF/fmt/data header
	HeaderSize = 44

	pcmFormat  = uint16(1)  // PCM format
	fmtSize    = uint32(16) // Standard PCM fmt chunk length
	sampleBits = uint16(16) // 16 bits per sample
)

var (
	RiffID = [4]byte{'R', 'I', 'F', 'F'}
	WaveID = [4]byte{'W', 'A', 'V', 'E'}
	FmtID  = [4]byte{'f', 'm', 't', ' '}
	DataID = [4]byte{'d', 'a', 't', 'a'}
	PeakID = [4]byte{'P', 'E', 'A', 'K'}
	CueID  = [4]byte{'c', 'u', 'e', ' '}
	ListID = [4]byte{'L', 'I', 'S', 'T'}
)

var (
	ErrNotRIFF           = errors.New("not a RIFF file")
	ErrNotWAVE           = errors.New("not a WAVE file")
	ErrUnsupportedFormat = errors.New("unsupported WAV format")
	ErrChannelMismatch   = errors.New("sample count is not a multiple of the channel count")
)

// Header represents the structure of a canonical WAV file header
type Header struct {
	// RIFF header
	RiffID   [4]byte // "RIFF"
	FileSize uint32  // 4 + (8 + SubChunk1Size) + (8 + SubChunk2Size)
	WaveID   [4]byte // "WAVE"

	// fmt sub-chunk
	FmtID         [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16  // 1 for mono, 2 for stereo
	SampleRate    uint32  // e.g., 44100
	ByteRate      uint32  // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16  // NumChannels * BitsPerSample/8
	BitsPerSample uint16  // 16

	// data sub-chunk
	DataID   [4]byte // "data"
	DataSize uint32  // NumFrames * NumChannels * BitsPerSample/8
}

// Format is the subset of the fmt chunk a caller chooses; the rest is derived.
type Format struct {
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16
}

// Mono16 returns a 16-bit mono format at the given rate
func Mono16(sampleRate int) Format {
	return Format{NumChannels: 1, SampleRate: uint32(sampleRate), BitsPerSample: sampleBits}
}

// Stereo16 returns a 16-bit stereo format at the given rate
func Stereo16(sampleRate int) Format {
	return Format{NumChannels: 2, SampleRate: uint32(sampleRate), BitsPerSample: sampleBits}
}

// BlockAlign is the size in bytes of one frame
func (f Format) BlockAlign() uint16 {
	return f.NumChannels * f.BitsPerSample / 8
}

// ByteRate is the number of bytes per second of audio
func (f Format) ByteRate() uint32 {
	return f.SampleRate * uint32(f.BlockAlign())
}

// NewHeader creates a header for numFrames frames of audio in the given format
func NewHeader(f Format, numFrames int) Header {
	dataSize := uint32(numFrames) * uint32(f.BlockAlign())
	return Header{
		RiffID:        RiffID,
		FileSize:      36 + dataSize, // 4 + (8 + 16) + (8 + DataSize)
		WaveID:        WaveID,
		FmtID:         FmtID,
		FmtSize:       fmtSize,
		AudioFormat:   pcmFormat,
		NumChannels:   f.NumChannels,
		SampleRate:    f.SampleRate,
		ByteRate:      f.ByteRate(),
		BlockAlign:    f.BlockAlign(),
		BitsPerSample: f.BitsPerSample,
		DataID:        DataID,
		DataSize:      dataSize,
	}
}

// Format returns the caller-visible format of the header
func (h Header) Format() Format {
	return Format{
		NumChannels:   h.NumChannels,
		SampleRate:    h.SampleRate,
		BitsPerSample: h.BitsPerSample,
	}
}

// NumFrames is the number of frames declared by the data chunk
func (h Header) NumFrames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize / uint32(h.BlockAlign))
}

// Validate checks the magic values and the derived-field invariants
func (h Header) Validate() error {
	if h.RiffID != RiffID {
		return fmt.Errorf("%w: got %q", ErrNotRIFF, h.RiffID[:])
	}
	if h.WaveID != WaveID {
		return fmt.Errorf("%w: got %q", ErrNotWAVE, h.WaveID[:])
	}
	if h.FmtID != FmtID || h.FmtSize != fmtSize {
		return fmt.Errorf("%w: expected 16-byte fmt chunk at offset 12", ErrUnsupportedFormat)
	}
	if h.AudioFormat != pcmFormat {
		return fmt.Errorf("%w: audio format %d is not PCM", ErrUnsupportedFormat, h.AudioFormat)
	}
	if h.NumChannels == 0 || h.BitsPerSample == 0 || h.BitsPerSample%8 != 0 {
		return fmt.Errorf("%w: %d channels, %d bits per sample", ErrUnsupportedFormat, h.NumChannels, h.BitsPerSample)
	}
	f := h.Format()
	if h.BlockAlign != f.BlockAlign() {
		return fmt.Errorf("block align %d does not match %d channels of %d bits", h.BlockAlign, h.NumChannels, h.BitsPerSample)
	}
	if h.ByteRate != f.ByteRate() {
		return fmt.Errorf("byte rate %d does not match sample rate %d and block align %d", h.ByteRate, h.SampleRate, h.BlockAlign)
	}
	if h.DataID != DataID {
		return fmt.Errorf("%w: expected data chunk at offset 36, got %q", ErrUnsupportedFormat, h.DataID[:])
	}
	if h.DataSize%uint32(h.BlockAlign) != 0 {
		return fmt.Errorf("data size %d is not a whole number of %d-byte frames", h.DataSize, h.BlockAlign)
	}
	if h.FileSize != 36+h.DataSize {
		return fmt.Errorf("RIFF size %d does not match data size %d", h.FileSize, h.DataSize)
	}
	return nil
}
