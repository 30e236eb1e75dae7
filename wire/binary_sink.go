package wire

import (
	"math"

	"github.com/arloliu/avrowire/endian"
	"github.com/arloliu/avrowire/internal/pool"
)

// BinarySink is a Sink that accumulates the encoded bytes in a pooled
// in-memory buffer.
//
// It is the sink of choice when a row must be fully encoded before it is
// handed to the storage layer, e.g. when batching rows into compressed
// blocks. In-memory writes cannot fail, so every Sink operation returns nil
// until Finish is called.
//
// A BinarySink is not safe for concurrent use.
type BinarySink struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

var _ Sink = (*BinarySink)(nil)

// NewBinarySink creates a new buffered sink using the specified endian engine
// for IEEE-754 float byte order.
//
// The Avro binary format pins floats to little-endian, so callers should pass
// endian.GetLittleEndianEngine() unless they are deliberately producing a
// non-standard byte order for diagnostics.
//
// The sink uses a pooled byte buffer with amortized growth strategy; call
// Finish to return the buffer to the pool when the sink is no longer needed.
//
// Parameters:
//   - engine: Endian engine for float byte order (typically little-endian)
//
// Returns:
//   - *BinarySink: A new sink instance ready for encoding
func NewBinarySink(engine endian.EndianEngine) *BinarySink {
	return &BinarySink{
		engine: engine,
		buf:    pool.GetRowBuffer(),
	}
}

// WriteNull writes a null marker. The binary format encodes null as zero
// bytes, so this is a no-op.
func (s *BinarySink) WriteNull() error {
	return nil
}

// WriteBoolean writes a single byte, 1 for true and 0 for false.
func (s *BinarySink) WriteBoolean(v bool) error {
	if v {
		s.buf.MustWriteByte(1)
	} else {
		s.buf.MustWriteByte(0)
	}

	return nil
}

// WriteInt writes a 32-bit integer as a zig-zag signed varint.
func (s *BinarySink) WriteInt(v int32) error {
	s.buf.B = AppendZigZag(s.buf.B, int64(v))
	return nil
}

// WriteLong writes a 64-bit integer as a zig-zag signed varint.
func (s *BinarySink) WriteLong(v int64) error {
	s.buf.B = AppendZigZag(s.buf.B, v)
	return nil
}

// WriteFloat writes 4 bytes of IEEE-754 in the sink's byte order.
func (s *BinarySink) WriteFloat(v float32) error {
	s.buf.B = s.engine.AppendUint32(s.buf.B, math.Float32bits(v))
	return nil
}

// WriteDouble writes 8 bytes of IEEE-754 in the sink's byte order.
func (s *BinarySink) WriteDouble(v float64) error {
	s.buf.B = s.engine.AppendUint64(s.buf.B, math.Float64bits(v))
	return nil
}

// WriteString writes a varint byte-length prefix followed by the UTF-8 bytes.
func (s *BinarySink) WriteString(str string) error {
	s.buf.Grow(ZigZagLen(int64(len(str))) + len(str))
	s.buf.B = AppendZigZag(s.buf.B, int64(len(str)))
	s.buf.B = append(s.buf.B, str...)

	return nil
}

// WriteBytes writes a varint length prefix followed by the raw bytes.
func (s *BinarySink) WriteBytes(b []byte) error {
	s.buf.Grow(ZigZagLen(int64(len(b))) + len(b))
	s.buf.B = AppendZigZag(s.buf.B, int64(len(b)))
	s.buf.MustWrite(b)

	return nil
}

// WriteFixed writes the raw bytes with no prefix.
func (s *BinarySink) WriteFixed(b []byte) error {
	s.buf.MustWrite(b)
	return nil
}

// WriteArrayStart begins an array. The binary format emits nothing here; the
// first block header is emitted by SetItemCount.
func (s *BinarySink) WriteArrayStart() error {
	return nil
}

// WriteArrayEnd terminates an array with a count-0 block.
func (s *BinarySink) WriteArrayEnd() error {
	return s.WriteLong(0)
}

// WriteMapStart begins a map. The binary format emits nothing here.
func (s *BinarySink) WriteMapStart() error {
	return nil
}

// WriteMapEnd terminates a map with a count-0 block.
func (s *BinarySink) WriteMapEnd() error {
	return s.WriteLong(0)
}

// SetItemCount declares the item count of the pending block.
//
// A positive count emits the block's count header; a zero count emits
// nothing, leaving the terminating count-0 block to WriteArrayEnd or
// WriteMapEnd. Negative counts are rejected.
func (s *BinarySink) SetItemCount(n int64) error {
	if n < 0 {
		return errInvalidItemCount(n)
	}
	if n > 0 {
		return s.WriteLong(n)
	}

	return nil
}

// StartItem marks the start of the next collection item. The binary format
// emits nothing between items.
func (s *BinarySink) StartItem() error {
	return nil
}

// WriteIndex writes a union branch index as a varint.
func (s *BinarySink) WriteIndex(idx int) error {
	return s.WriteLong(int64(idx))
}

// Bytes returns the encoded data as a byte slice.
//
// The returned slice shares the underlying buffer with the sink and is valid
// until the next write, Reset, or Finish. Do not modify the returned slice.
func (s *BinarySink) Bytes() []byte {
	return s.buf.Bytes()
}

// Size returns the total size of encoded data in bytes.
func (s *BinarySink) Size() int {
	return s.buf.Len()
}

// Reset clears the accumulated bytes but keeps the buffer for reuse, allowing
// the sink to encode the next row without reallocating.
func (s *BinarySink) Reset() {
	s.buf.Reset()
}

// Finish returns the internal buffer to the pool.
//
// After calling Finish, the sink is no longer usable. Any subsequent write
// will panic due to the nil buffer. Use defer to ensure it's called even in
// error paths:
//
//	sink := wire.NewBinarySink(engine)
//	defer sink.Finish()
func (s *BinarySink) Finish() {
	if s.buf != nil {
		pool.PutRowBuffer(s.buf)
		s.buf = nil
	}
}
