package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// flateWriterPool pools flate writers for reuse.
// flate.Writer allocates sizable internal state, so reuse matters on the
// block-flush path.
var flateWriterPool = sync.Pool{
	New: func() any {
		w, err := flate.NewWriter(io.Discard, flate.DefaultCompression)
		if err != nil {
			// DefaultCompression is always a valid level
			panic(fmt.Sprintf("failed to create flate writer for pool: %v", err))
		}
		return w
	},
}

// DeflateCompressor provides raw DEFLATE (RFC 1951) compression.
//
// This is the mandatory interoperable codec of the container format: every
// reader implementation understands "deflate", which makes it the safe choice
// when the consumer side is unknown.
type DeflateCompressor struct{}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a new DEFLATE compressor with the default level.
//
// Returns:
//   - DeflateCompressor: New DEFLATE compressor instance
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{}
}

// Compress compresses the input data as a raw DEFLATE stream.
//
// Uses a pooled flate.Writer for better performance.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(data) / 2)

	fw, _ := flateWriterPool.Get().(*flate.Writer)
	defer flateWriterPool.Put(fw)

	fw.Reset(&buf)
	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a raw DEFLATE stream.
//
// This method validates the input data format and returns an error if the
// data is corrupted or was not compressed with DEFLATE.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	decompressed, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}

	return decompressed, nil
}
