package wire

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/arloliu/avrowire/compress"
	"github.com/arloliu/avrowire/internal/pool"
)

// BlockWriter batches encoded rows into container file data blocks.
//
// Each flushed block is framed as:
//
//	varint row count | varint compressed byte size | compressed payload | 16-byte sync marker
//
// which matches the data block layout of the Avro object container format.
// The file header (schema, codec name, marker) is owned by the storage layer;
// the BlockWriter only exposes the sync marker it stamps on every block.
//
// A BlockWriter is not safe for concurrent use.
type BlockWriter struct {
	codec compress.Codec
	buf   *pool.ByteBuffer
	sync  [16]byte
	count int64
}

// NewBlockWriter creates a block writer compressing payloads with codec.
//
// A random 16-byte sync marker is generated per writer; all blocks flushed by
// the same writer carry the same marker, letting readers resynchronize after
// a corrupt block.
func NewBlockWriter(codec compress.Codec) *BlockWriter {
	return &BlockWriter{
		codec: codec,
		buf:   pool.GetBlockBuffer(),
		sync:  [16]byte(uuid.New()),
	}
}

// Append adds one fully encoded row to the pending block.
//
// The row bytes are copied, so the caller may reuse its encode buffer
// immediately (e.g. via BinarySink.Reset).
func (b *BlockWriter) Append(row []byte) {
	b.buf.MustWrite(row)
	b.count++
}

// Count returns the number of rows in the pending block.
func (b *BlockWriter) Count() int64 {
	return b.count
}

// Size returns the uncompressed byte size of the pending block.
func (b *BlockWriter) Size() int {
	return b.buf.Len()
}

// SyncMarker returns the 16-byte marker stamped after every flushed block.
func (b *BlockWriter) SyncMarker() [16]byte {
	return b.sync
}

// Flush compresses the pending rows and writes one framed block to w, then
// resets the pending state. Flushing an empty block writes nothing.
//
// On any compression or write error the block is considered unwritten; the
// caller decides whether to retry into a fresh writer or abort the file.
func (b *BlockWriter) Flush(w io.Writer) error {
	if b.count == 0 {
		return nil
	}

	payload, err := b.codec.Compress(b.buf.Bytes())
	if err != nil {
		return fmt.Errorf("compress block: %w", err)
	}

	header := AppendZigZag(nil, b.count)
	header = AppendZigZag(header, int64(len(payload)))
	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if _, err := w.Write(b.sync[:]); err != nil {
		return err
	}

	b.buf.Reset()
	b.count = 0

	return nil
}

// Finish returns the internal buffer to the pool.
//
// Pending rows that were never flushed are dropped. After calling Finish, the
// writer is no longer usable.
func (b *BlockWriter) Finish() {
	if b.buf != nil {
		pool.PutBlockBuffer(b.buf)
		b.buf = nil
	}
}
