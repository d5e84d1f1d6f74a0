package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// cdpNoteSize is the fixed length of the note text CDP writes into LIST/adtl
	cdpNoteSize = 2004

	peakVersion = uint32(1)
)

// PeakChunk is CDP's PEAK chunk for a single channel
type PeakChunk struct {
	Version   uint32
	Timestamp uint32
	Value     float32 // |peak| / 32767
	Position  uint32  // sample index of the peak
}

type cuePoint struct {
	ID           [4]byte
	Position     uint32
	DataChunkID  [4]byte
	ChunkStart   uint32
	BlockStart   uint32
	SampleOffset uint32
}

// Peak finds the loudest sample; ties keep the earliest position.
func Peak(samples []int16) (float32, uint32) {
	var max int32
	var pos uint32
	for i, s := range samples {
		v := int32(s)
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
			pos = uint32(i)
		}
	}
	return float32(max) / math.MaxInt16, pos
}

// cdpNote renders the "sfif" note CDP stores its creation date in
func cdpNote(ts uint32) []byte {
	note := make([]byte, 0, cdpNoteSize)
	note = append(note, "sfifDATE\n"...)
	note = append(note, fmt.Sprintf("%X\n", ts)...)
	for len(note) < cdpNoteSize {
		note = append(note, '\n')
	}
	return note
}

// WriteCDP writes samples using the chunk layout CDP itself produces:
// fmt, PEAK, cue, LIST/adtl/note and finally data. The PEAK timestamp lands
// at bytes [0x30,0x34) and the note's hex date inside [0x77,0x90).
func WriteCDP(w io.Writer, f Format, samples []int16, created time.Time) error {
	if f.NumChannels == 0 || len(samples)%int(f.NumChannels) != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrChannelMismatch, len(samples), f.NumChannels)
	}
	if f.BitsPerSample != sampleBits {
		return fmt.Errorf("%w: encoder only writes %d-bit samples", ErrUnsupportedFormat, sampleBits)
	}

	ts := uint32(created.Unix())
	value, position := Peak(samples)
	peak := PeakChunk{Version: peakVersion, Timestamp: ts, Value: value, Position: position}
	cue := cuePoint{ID: [4]byte{'s', 'f', 'i', 'f'}, DataChunkID: DataID}
	note := cdpNote(ts)

	dataSize := uint32(len(samples) * 2)
	listSize := uint32(4 + 4 + 4 + len(note)) // "adtl" + "note" + note size + note
	riffSize := 4 +
		8 + fmtSize +
		8 + 16 + // PEAK
		8 + 28 + // cue
		8 + listSize + listSize%2 +
		8 + dataSize

	bw := bufio.NewWriter(w)
	le := binary.LittleEndian
	fields := []any{
		RiffID, riffSize, WaveID,
		FmtID, fmtSize, pcmFormat, f.NumChannels, f.SampleRate, f.ByteRate(), f.BlockAlign(), f.BitsPerSample,
		PeakID, uint32(16), peak,
		CueID, uint32(28), uint32(1), cue,
		ListID, listSize, [4]byte{'a', 'd', 't', 'l'}, [4]byte{'n', 'o', 't', 'e'}, uint32(len(note)), note,
	}
	if listSize%2 == 1 {
		fields = append(fields, uint8(0))
	}
	fields = append(fields, DataID, dataSize, samples)

	for _, v := range fields {
		if err := binary.Write(bw, le, v); err != nil {
			return fmt.Errorf("error writing CDP WAV: %w", err)
		}
	}
	return bw.Flush()
}
