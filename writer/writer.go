// Package writer implements the schema-resolved value-writer tree.
//
// A ValueWriter serializes one value of a fixed logical type into a
// wire.Sink. The external schema compiler maps each resolved schema node to
// one of the construction functions in this package (Nulls, Booleans, Ints,
// Longs, Floats, Doubles, Strings, Bytes, Fixed, Decimal, UUIDs, Option,
// Array, ArrayMap, Map, Record) and composes the results into a tree.
//
// The tree is immutable after construction and safe to share read-only
// across goroutines; the only mutable state on the write path is pooled
// scratch borrowed per call. Values are threaded through the tree as
// dynamically tagged `any` and type-checked once at each leaf; a mismatch is
// reported as an error wrapping ErrTypeMismatch.
//
// Any error aborts the encode call entirely. Bytes already emitted for that
// call are invalid and it is the storage layer's decision whether to discard
// the file, skip the row, or abort the batch.
package writer

import "github.com/arloliu/avrowire/wire"

// ValueWriter serializes one value of a fixed logical type into a sink.
type ValueWriter interface {
	// Write encodes v into sink.
	//
	// Precondition failures (type mismatch, fixed-length mismatch, decimal
	// scale/precision violations) and sink failures abort the call; no error
	// is recovered locally.
	Write(v any, sink wire.Sink) error
}

// Row exposes positional field access for record values.
//
// A record writer with N fields calls Field(i) for i in [0, N); suppliers of
// shorter rows fail in their own field-access layer.
type Row interface {
	// Field returns the value at field position i.
	Field(i int) any
}

type sliceRow []any

func (r sliceRow) Field(i int) any {
	return r[i]
}

// RowOf adapts a slice of field values to the Row interface. Field i of the
// row is fields[i].
func RowOf(fields []any) Row {
	return sliceRow(fields)
}

// MapEntry is one key/value pair of a map value.
//
// Map writers consume ordered []MapEntry slices rather than Go maps because
// Go randomizes map iteration order while the wire order of entries is
// observable; the slice order is the wire order.
type MapEntry struct {
	Key   any
	Value any
}
