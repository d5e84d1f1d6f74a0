package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Chunk is one entry of a RIFF chunk list
type Chunk struct {
	ID     [4]byte
	Size   uint32 // declared size, without the pad byte
	Offset int64  // position of the first body byte in the file
	Body   []byte
}

// Chunks walks the chunk list of a RIFF/WAVE file held in memory.
// A declared size running past the end of the file is an error.
func Chunks(data []byte) ([]Chunk, error) {
	br := bytes.NewReader(data)
	p := riff.New(br)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRIFF, err)
	}
	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: got %q", ErrNotWAVE, p.Format[:])
	}

	var chunks []Chunk
	for {
		ch, err := p.NextChunk()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return chunks, fmt.Errorf("error reading chunk header: %w", err)
		}

		offset := br.Size() - int64(br.Len())
		// riff may round odd sizes up, so take the declared size from the file.
		size := binary.LittleEndian.Uint32(data[offset-4 : offset])
		end := offset + int64(size)
		if end > int64(len(data)) {
			return chunks, fmt.Errorf("chunk %q at %d declares %d bytes, only %d remain", ch.ID[:], offset-8, size, int64(len(data))-offset)
		}

		chunks = append(chunks, Chunk{
			ID:     ch.ID,
			Size:   size,
			Offset: offset,
			Body:   data[offset:end],
		})

		if size%2 == 1 && end < int64(len(data)) {
			end++
		}
		if _, err := br.Seek(end, io.SeekStart); err != nil {
			return chunks, err
		}
	}

	return chunks, nil
}

// FindChunk returns the first chunk with the given id
func FindChunk(chunks []Chunk, id [4]byte) (Chunk, bool) {
	for _, c := range chunks {
		if c.ID == id {
			return c, true
		}
	}
	return Chunk{}, false
}
