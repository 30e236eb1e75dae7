package writer

import (
	"encoding/binary"
	"math"
	"testing"
)

// binReader is a minimal decoder for the binary wire format, used to verify
// round trips against a matching reader.
type binReader struct {
	t    *testing.T
	data []byte
	pos  int
}

func newBinReader(t *testing.T, data []byte) *binReader {
	t.Helper()
	return &binReader{t: t, data: data}
}

func (r *binReader) readLong() int64 {
	r.t.Helper()

	var uval uint64
	var shift uint
	for {
		if r.pos >= len(r.data) {
			r.t.Fatal("truncated varint")
		}
		b := r.data[r.pos]
		r.pos++
		uval |= uint64(b&0x7F) << shift
		if b < 0x80 {
			break
		}
		shift += 7
	}

	return int64(uval>>1) ^ -int64(uval&1)
}

func (r *binReader) readInt() int32 {
	return int32(r.readLong())
}

func (r *binReader) readBool() bool {
	r.t.Helper()
	b := r.take(1)[0]
	if b > 1 {
		r.t.Fatalf("invalid boolean byte: %#x", b)
	}

	return b == 1
}

func (r *binReader) readFloat() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(r.take(4)))
}

func (r *binReader) readDouble() float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(r.take(8)))
}

func (r *binReader) readBytes() []byte {
	r.t.Helper()
	return r.take(int(r.readLong()))
}

func (r *binReader) readString() string {
	return string(r.readBytes())
}

func (r *binReader) readFixed(n int) []byte {
	return r.take(n)
}

func (r *binReader) take(n int) []byte {
	r.t.Helper()
	if r.pos+n > len(r.data) {
		r.t.Fatalf("truncated input: need %d bytes at offset %d of %d", n, r.pos, len(r.data))
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n

	return out
}

func (r *binReader) exhausted() bool {
	return r.pos == len(r.data)
}
