package oracle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/mattetti/cdp-testaudio/internal/wav"
)

// Range is a half-open byte range [Start, End)
type Range struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the range
func (r Range) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("0x%02x-0x%02x", r.Start, r.End)
}

// Options controls what a comparison is allowed to ignore
type Options struct {
	// TimestampRanges are byte ranges whose content is expected to differ
	TimestampRanges []Range
	// DataSearchOffset is where the search for the data chunk marker starts
	DataSearchOffset int
	// MaxReportedDiffs caps the byte positions printed by Report
	MaxReportedDiffs int
}

// DefaultOptions matches the layout CDP writes: the PEAK chunk timestamp and
// the hex date in the LIST/note chunk.
func DefaultOptions() Options {
	return Options{
		TimestampRanges: []Range{
			{Start: 0x30, End: 0x34},
			{Start: 0x77, End: 0x90},
		},
		DataSearchOffset: 100,
		MaxReportedDiffs: 10,
	}
}

// Excluded reports whether offset is inside any timestamp range
func (o Options) Excluded(offset int) bool {
	for _, r := range o.TimestampRanges {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}

// Kind classifies the first failing check of a comparison
type Kind int

const (
	Match Kind = iota
	SizeMismatch
	ByteMismatch
	NotRIFF
	DataPositionMismatch
	DataHeaderTruncated
	DataSizeMismatch
	PayloadMismatch
)

func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case SizeMismatch:
		return "size mismatch"
	case ByteMismatch:
		return "byte mismatch"
	case NotRIFF:
		return "not RIFF"
	case DataPositionMismatch:
		return "data chunk position mismatch"
	case DataHeaderTruncated:
		return "data chunk header truncated"
	case DataSizeMismatch:
		return "audio data size mismatch"
	case PayloadMismatch:
		return "audio data mismatch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ByteDiff is one differing byte outside the timestamp ranges
type ByteDiff struct {
	Offset int
	A, B   byte
}

// Result is the outcome of comparing file A against file B
type Result struct {
	Kind Kind

	SizeA, SizeB int
	Diffs        []ByteDiff

	// DataPosA/B are -1 when no marker was found after DataSearchOffset
	DataPosA, DataPosB   int
	DataSizeA, DataSizeB uint32

	// PayloadIndex is the first differing byte within the audio payload
	PayloadIndex int
	PayloadA     byte
	PayloadB     byte
}

// OK reports whether the files matched
func (r Result) OK() bool {
	return r.Kind == Match
}

// PayloadOffset is the absolute file offset of the first payload difference
func (r Result) PayloadOffset() int {
	return r.DataPosA + 8 + r.PayloadIndex
}

// Compare checks two in-memory files. Checks run in a fixed order and the
// first failing class is returned; the byte scan always covers the whole file.
func Compare(a, b []byte, opts Options) Result {
	res := Result{SizeA: len(a), SizeB: len(b), DataPosA: -1, DataPosB: -1}

	if len(a) != len(b) {
		res.Kind = SizeMismatch
		return res
	}

	for i := range a {
		if a[i] != b[i] && !opts.Excluded(i) {
			res.Diffs = append(res.Diffs, ByteDiff{Offset: i, A: a[i], B: b[i]})
		}
	}
	if len(res.Diffs) > 0 {
		res.Kind = ByteMismatch
		return res
	}

	if !bytes.HasPrefix(a, wav.RiffID[:]) || !bytes.HasPrefix(b, wav.RiffID[:]) {
		res.Kind = NotRIFF
		return res
	}

	res.DataPosA = findData(a, opts.DataSearchOffset)
	res.DataPosB = findData(b, opts.DataSearchOffset)
	if res.DataPosA != res.DataPosB {
		res.Kind = DataPositionMismatch
		return res
	}
	if res.DataPosA < 0 {
		return res
	}

	pos := res.DataPosA
	if pos+8 > len(a) {
		res.Kind = DataHeaderTruncated
		return res
	}
	res.DataSizeA = binary.LittleEndian.Uint32(a[pos+4 : pos+8])
	res.DataSizeB = binary.LittleEndian.Uint32(b[pos+4 : pos+8])
	if res.DataSizeA != res.DataSizeB {
		res.Kind = DataSizeMismatch
		return res
	}

	start := pos + 8
	end := min(start+int(res.DataSizeA), len(a))
	audioA, audioB := a[start:end], b[start:end]
	for i := range audioA {
		if audioA[i] != audioB[i] {
			res.Kind = PayloadMismatch
			res.PayloadIndex = i
			res.PayloadA, res.PayloadB = audioA[i], audioB[i]
			return res
		}
	}

	return res
}

// findData returns the first data marker at or after from, or -1
func findData(data []byte, from int) int {
	from = max(from, 0)
	if from >= len(data) {
		return -1
	}
	i := bytes.Index(data[from:], wav.DataID[:])
	if i < 0 {
		return -1
	}
	return from + i
}

// CompareFiles reads both files fully and compares them
func CompareFiles(pathA, pathB string, opts Options) (Result, error) {
	a, err := os.ReadFile(pathA)
	if err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", pathA, err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", pathB, err)
	}
	return Compare(a, b, opts), nil
}
