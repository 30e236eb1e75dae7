// Package avrowire provides a schema-resolved binary value-writer system for
// the Avro wire format.
//
// An external schema compiler resolves a table schema into a tree of typed
// value writers (see the writer package), built once and shared read-only
// across all writes against that schema. At write time a single call walks
// the tree; each node emits its own header and payload bytes into a shared
// sink (see the wire package) and recurses into its children.
//
// # Core Features
//
//   - Byte-exact Avro binary encoding: zig-zag varints, block-framed
//     collections, union branch indices, fixed-width decimals and UUIDs
//   - Immutable writer trees, safe for concurrent encode calls
//   - Pooled buffers and scratch slices on the hot path
//   - Buffered, streaming and checksumming sinks
//   - Container-file data block batching with pluggable compression
//     (None, Deflate, Snappy, Zstd, LZ4)
//
// # Basic Usage
//
// Encoding a row of (id long, name nullable string):
//
//	import (
//	    "github.com/arloliu/avrowire"
//	    "github.com/arloliu/avrowire/writer"
//	)
//
//	name, _ := writer.Option(0, writer.Strings())
//	row := writer.Record(writer.Longs(), name)
//
//	data, err := avrowire.Encode(row, writer.RowOf([]any{int64(42), "answer"}))
//
// Streaming rows into compressed container blocks:
//
//	sink := wire.NewBinarySink(endian.GetLittleEndianEngine())
//	defer sink.Finish()
//	block := wire.NewBlockWriter(codec)
//	defer block.Finish()
//
//	for _, r := range rows {
//	    if err := row.Write(r, sink); err != nil { ... }
//	    block.Append(sink.Bytes())
//	    sink.Reset()
//	}
//	if err := block.Flush(file); err != nil { ... }
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the writer and
// wire packages, simplifying the most common use cases. For fine-grained
// control over sinks, checksums and block framing, use those packages
// directly.
package avrowire

import (
	"io"

	"github.com/arloliu/avrowire/endian"
	"github.com/arloliu/avrowire/wire"
	"github.com/arloliu/avrowire/writer"
)

// Encode serializes value with w and returns the encoded bytes in a freshly
// allocated slice owned by the caller.
func Encode(w writer.ValueWriter, value any) ([]byte, error) {
	sink := wire.NewBinarySink(endian.GetLittleEndianEngine())
	defer sink.Finish()

	if err := w.Write(value, sink); err != nil {
		return nil, err
	}

	out := make([]byte, sink.Size())
	copy(out, sink.Bytes())

	return out, nil
}

// EncodeTo serializes value with w directly into dst. Writer errors from dst
// propagate unchanged; bytes already written for a failed call are invalid.
func EncodeTo(dst io.Writer, w writer.ValueWriter, value any) error {
	sink := wire.NewStreamSink(dst, endian.GetLittleEndianEngine())
	return w.Write(value, sink)
}
