package oracle

import (
	"fmt"
	"io"
)

// Report writes a human readable verdict. At most limit byte positions are
// listed for a byte mismatch; limit <= 0 lists them all.
func (r Result) Report(w io.Writer, nameA, nameB string, limit int) {
	switch r.Kind {
	case Match:
		fmt.Fprintln(w, "SUCCESS: Files match (ignoring timestamps)")

	case SizeMismatch:
		fmt.Fprintf(w, "ERROR: Size mismatch: %s=%d, %s=%d\n", nameA, r.SizeA, nameB, r.SizeB)

	case ByteMismatch:
		fmt.Fprintln(w, "ERROR: Non-timestamp differences found at byte positions:")
		shown := r.Diffs
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		for _, d := range shown {
			fmt.Fprintf(w, "  0x%04x (%d): %s=0x%02x %s=0x%02x\n", d.Offset, d.Offset, nameA, d.A, nameB, d.B)
		}
		if more := len(r.Diffs) - len(shown); more > 0 {
			fmt.Fprintf(w, "  ... and %d more differences\n", more)
		}

	case NotRIFF:
		fmt.Fprintln(w, "ERROR: Not valid RIFF files")

	case DataPositionMismatch:
		fmt.Fprintf(w, "ERROR: Data chunk position mismatch: %d vs %d\n", r.DataPosA, r.DataPosB)

	case DataHeaderTruncated:
		fmt.Fprintf(w, "ERROR: Data chunk at %d is truncated (file is %d bytes)\n", r.DataPosA, r.SizeA)

	case DataSizeMismatch:
		fmt.Fprintf(w, "ERROR: Audio data size mismatch: %d vs %d\n", r.DataSizeA, r.DataSizeB)

	case PayloadMismatch:
		fmt.Fprintf(w, "ERROR: Audio data mismatch at sample byte %d\n", r.PayloadIndex)
		fmt.Fprintf(w, "  Position 0x%04x: %02x vs %02x\n", r.PayloadOffset(), r.PayloadA, r.PayloadB)

	default:
		fmt.Fprintf(w, "ERROR: %s\n", r.Kind)
	}
}

// Report writes one line per failed aspect, or a single success line
func (c ChunkComparison) Report(w io.Writer) {
	if c.OK() {
		fmt.Fprintln(w, "SUCCESS: Files match (ignoring timestamps)")
		return
	}
	for _, d := range c.Details {
		fmt.Fprintf(w, "ERROR: %s\n", d)
	}
}
