package wire

import "fmt"

func errInvalidItemCount(n int64) error {
	return fmt.Errorf("invalid item count: %d", n)
}

// Sink is the byte-consuming destination of one encode call.
//
// Primitive operations write exactly one wire primitive. Structural
// operations frame block-encoded collections and unions:
//
//   - WriteArrayStart / WriteMapStart open a collection; in the binary
//     format they emit nothing.
//   - SetItemCount declares the number of items in the next block and emits
//     the block's count header (nothing for an empty block).
//   - StartItem precedes each item; in the binary format it emits nothing.
//   - WriteArrayEnd / WriteMapEnd terminate the collection with a count-0
//     block.
//   - WriteIndex emits the branch discriminant of a union.
//
// Every operation reports a sink failure as an error; implementations
// perform no retry and no partial-write cleanup.
type Sink interface {
	// WriteNull writes a null marker (zero bytes in the binary format).
	WriteNull() error

	// WriteBoolean writes a single byte, 1 for true and 0 for false.
	WriteBoolean(v bool) error

	// WriteInt writes a 32-bit integer as a zig-zag signed varint.
	WriteInt(v int32) error

	// WriteLong writes a 64-bit integer as a zig-zag signed varint.
	WriteLong(v int64) error

	// WriteFloat writes 4 bytes of IEEE-754 in the sink's byte order.
	WriteFloat(v float32) error

	// WriteDouble writes 8 bytes of IEEE-754 in the sink's byte order.
	WriteDouble(v float64) error

	// WriteString writes a varint byte-length prefix followed by the UTF-8
	// bytes of s.
	WriteString(s string) error

	// WriteBytes writes a varint length prefix followed by the raw bytes.
	WriteBytes(b []byte) error

	// WriteFixed writes the raw bytes with no prefix.
	WriteFixed(b []byte) error

	// WriteArrayStart begins an array.
	WriteArrayStart() error

	// WriteArrayEnd terminates an array with a count-0 block.
	WriteArrayEnd() error

	// WriteMapStart begins a map.
	WriteMapStart() error

	// WriteMapEnd terminates a map with a count-0 block.
	WriteMapEnd() error

	// SetItemCount declares the item count of the pending block. Counts must
	// not be negative; a zero count emits nothing.
	SetItemCount(n int64) error

	// StartItem marks the start of the next collection item.
	StartItem() error

	// WriteIndex writes a union branch index as a varint.
	WriteIndex(idx int) error
}
