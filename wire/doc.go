// Package wire implements the low-level byte emission layer of the Avro
// binary format.
//
// The central abstraction is Sink: an ordered byte consumer exposing one
// operation per wire primitive (null, boolean, zig-zag varint ints, IEEE-754
// floats, length-prefixed bytes, fixed-width bytes) plus the structural
// markers used by block-framed collections and unions.
//
// Two Sink implementations are provided: BinarySink accumulates bytes in a
// pooled in-memory buffer, StreamSink writes straight to an io.Writer. A
// ChecksumSink decorator maintains a running xxHash64 digest of everything
// emitted, and BlockWriter batches encoded rows into compressed container
// file data blocks.
//
// Sinks are not safe for concurrent use; concurrent encoding uses one sink
// per goroutine.
package wire
