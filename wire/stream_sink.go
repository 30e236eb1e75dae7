package wire

import (
	"io"
	"math"

	"github.com/arloliu/avrowire/endian"
)

// StreamSink is a Sink that writes directly to an io.Writer.
//
// Any error from the underlying writer aborts the operation and propagates
// unchanged to the caller; the sink performs no retry and no partial-write
// cleanup. A blocked writer blocks the calling goroutine; cancellation is the
// responsibility of the caller wrapping the whole encode call.
//
// A StreamSink is not safe for concurrent use.
type StreamSink struct {
	w       io.Writer
	engine  endian.EndianEngine
	scratch []byte // reused for primitive encodings between calls
}

var _ Sink = (*StreamSink)(nil)

// NewStreamSink creates a new sink writing to w, using the specified endian
// engine for IEEE-754 float byte order (typically little-endian).
func NewStreamSink(w io.Writer, engine endian.EndianEngine) *StreamSink {
	return &StreamSink{
		w:       w,
		engine:  engine,
		scratch: make([]byte, 0, 16),
	}
}

func (s *StreamSink) flushScratch() error {
	_, err := s.w.Write(s.scratch)
	return err
}

// WriteNull writes a null marker. The binary format encodes null as zero
// bytes, so this is a no-op.
func (s *StreamSink) WriteNull() error {
	return nil
}

// WriteBoolean writes a single byte, 1 for true and 0 for false.
func (s *StreamSink) WriteBoolean(v bool) error {
	b := byte(0)
	if v {
		b = 1
	}
	s.scratch = append(s.scratch[:0], b)

	return s.flushScratch()
}

// WriteInt writes a 32-bit integer as a zig-zag signed varint.
func (s *StreamSink) WriteInt(v int32) error {
	return s.WriteLong(int64(v))
}

// WriteLong writes a 64-bit integer as a zig-zag signed varint.
func (s *StreamSink) WriteLong(v int64) error {
	s.scratch = AppendZigZag(s.scratch[:0], v)
	return s.flushScratch()
}

// WriteFloat writes 4 bytes of IEEE-754 in the sink's byte order.
func (s *StreamSink) WriteFloat(v float32) error {
	s.scratch = s.engine.AppendUint32(s.scratch[:0], math.Float32bits(v))
	return s.flushScratch()
}

// WriteDouble writes 8 bytes of IEEE-754 in the sink's byte order.
func (s *StreamSink) WriteDouble(v float64) error {
	s.scratch = s.engine.AppendUint64(s.scratch[:0], math.Float64bits(v))
	return s.flushScratch()
}

// WriteString writes a varint byte-length prefix followed by the UTF-8 bytes.
func (s *StreamSink) WriteString(str string) error {
	if err := s.WriteLong(int64(len(str))); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, str)

	return err
}

// WriteBytes writes a varint length prefix followed by the raw bytes.
func (s *StreamSink) WriteBytes(b []byte) error {
	if err := s.WriteLong(int64(len(b))); err != nil {
		return err
	}
	_, err := s.w.Write(b)

	return err
}

// WriteFixed writes the raw bytes with no prefix.
func (s *StreamSink) WriteFixed(b []byte) error {
	_, err := s.w.Write(b)
	return err
}

// WriteArrayStart begins an array; the binary format emits nothing here.
func (s *StreamSink) WriteArrayStart() error {
	return nil
}

// WriteArrayEnd terminates an array with a count-0 block.
func (s *StreamSink) WriteArrayEnd() error {
	return s.WriteLong(0)
}

// WriteMapStart begins a map; the binary format emits nothing here.
func (s *StreamSink) WriteMapStart() error {
	return nil
}

// WriteMapEnd terminates a map with a count-0 block.
func (s *StreamSink) WriteMapEnd() error {
	return s.WriteLong(0)
}

// SetItemCount declares the item count of the pending block. A positive count
// emits the block header; a zero count emits nothing.
func (s *StreamSink) SetItemCount(n int64) error {
	if n < 0 {
		return errInvalidItemCount(n)
	}
	if n > 0 {
		return s.WriteLong(n)
	}

	return nil
}

// StartItem marks the start of the next collection item; the binary format
// emits nothing between items.
func (s *StreamSink) StartItem() error {
	return nil
}

// WriteIndex writes a union branch index as a varint.
func (s *StreamSink) WriteIndex(idx int) error {
	return s.WriteLong(int64(idx))
}
