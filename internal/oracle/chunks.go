package oracle

import (
	"bytes"
	"slices"

	"github.com/mattetti/cdp-testaudio/internal/wav"
)

// peakTimestamp is where the creation time sits inside a PEAK chunk body
const (
	peakTimestampStart = 4
	peakTimestampEnd   = 8
)

// ChunkComparison is the outcome of a chunk-aware comparison
type ChunkComparison struct {
	ChunksMatch   bool
	FormatMatches bool
	DataMatches   bool
	PeakMatches   bool
	Details       []string
}

// OK reports whether every aspect matched
func (c ChunkComparison) OK() bool {
	return len(c.Details) == 0
}

// CompareChunks compares two WAV files chunk by chunk, so it tolerates
// reordered chunks and only ignores the PEAK timestamp.
func CompareChunks(a, b []byte) (ChunkComparison, error) {
	var cmp ChunkComparison

	chunksA, err := wav.Chunks(a)
	if err != nil {
		return cmp, err
	}
	chunksB, err := wav.Chunks(b)
	if err != nil {
		return cmp, err
	}

	cmp.ChunksMatch = slices.Equal(chunkTypes(chunksA), chunkTypes(chunksB))
	if !cmp.ChunksMatch {
		cmp.Details = append(cmp.Details, "Different chunk types present")
	}

	fmtA, okA := wav.FindChunk(chunksA, wav.FmtID)
	fmtB, okB := wav.FindChunk(chunksB, wav.FmtID)
	if okA && okB {
		cmp.FormatMatches = bytes.Equal(fmtA.Body, fmtB.Body)
		if !cmp.FormatMatches {
			cmp.Details = append(cmp.Details, "Format chunks differ")
		}
	}

	dataA, okA := wav.FindChunk(chunksA, wav.DataID)
	dataB, okB := wav.FindChunk(chunksB, wav.DataID)
	if okA && okB {
		cmp.DataMatches = bytes.Equal(dataA.Body, dataB.Body)
		if !cmp.DataMatches {
			cmp.Details = append(cmp.Details, "Audio data differs")
		}
	}

	peakA, okA := wav.FindChunk(chunksA, wav.PeakID)
	peakB, okB := wav.FindChunk(chunksB, wav.PeakID)
	switch {
	case okA && okB:
		cmp.PeakMatches = peaksEqual(peakA.Body, peakB.Body)
		if !cmp.PeakMatches {
			cmp.Details = append(cmp.Details, "PEAK values differ (not timestamp)")
		}
	case okA || okB:
		cmp.Details = append(cmp.Details, "One file missing PEAK chunk")
	}

	return cmp, nil
}

func chunkTypes(chunks []wav.Chunk) []string {
	types := make([]string, 0, len(chunks))
	for _, c := range chunks {
		types = append(types, string(c.ID[:]))
	}
	slices.Sort(types)
	return types
}

// peaksEqual compares two PEAK bodies, skipping the timestamp
func peaksEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) < peakTimestampEnd {
		return bytes.Equal(a, b)
	}
	return bytes.Equal(a[:peakTimestampStart], b[:peakTimestampStart]) &&
		bytes.Equal(a[peakTimestampEnd:], b[peakTimestampEnd:])
}
