package writer

import "fmt"

// Construction functions for the writer tree. Stateless primitives return
// shared flyweight instances; parameterized writers are constructed fresh per
// schema node. The resulting tree is immutable: no writer is ever selected or
// swapped after construction.

// Nulls returns the writer for null values.
func Nulls() ValueWriter {
	return nullWriterInstance
}

// Booleans returns the writer for bool values.
func Booleans() ValueWriter {
	return booleanWriterInstance
}

// Ints returns the writer for int32 values.
func Ints() ValueWriter {
	return intWriterInstance
}

// Longs returns the writer for int64 values.
func Longs() ValueWriter {
	return longWriterInstance
}

// Floats returns the writer for float32 values.
func Floats() ValueWriter {
	return floatWriterInstance
}

// Doubles returns the writer for float64 values.
func Doubles() ValueWriter {
	return doubleWriterInstance
}

// Strings returns the writer for string values.
func Strings() ValueWriter {
	return stringWriterInstance
}

// Bytes returns the writer for variable-length []byte values.
func Bytes() ValueWriter {
	return bytesWriterInstance
}

// Fixed returns a writer for []byte values of exactly the given length.
func Fixed(length int) ValueWriter {
	return &fixedWriter{length: length}
}

// Decimal returns a writer for decimal.Decimal values with the given
// precision and scale. The fixed output width is derived from the precision
// at construction.
func Decimal(precision, scale int32) (ValueWriter, error) {
	if precision < 1 {
		return nil, fmt.Errorf("invalid decimal precision: %d", precision)
	}
	if scale < 0 || scale > precision {
		return nil, fmt.Errorf("invalid decimal scale %d for precision %d", scale, precision)
	}

	return newDecimalWriter(precision, scale), nil
}

// UUIDs returns the writer for uuid.UUID values.
func UUIDs() ValueWriter {
	return uuidWriterInstance
}

// Option returns a nullable-union writer around inner. nullIndex selects
// which of the two branches carries null and must be 0 or 1; the value
// branch is the complement.
func Option(nullIndex int, inner ValueWriter) (ValueWriter, error) {
	if nullIndex != 0 && nullIndex != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBranchIndex, nullIndex)
	}

	return &optionWriter{
		nullIndex:  nullIndex,
		valueIndex: 1 - nullIndex,
		writer:     inner,
	}, nil
}

// Array returns a writer for []any values encoding each element with elem.
func Array(elem ValueWriter) ValueWriter {
	return &arrayWriter{elem: elem}
}

// ArrayMap returns a map writer using the backward-compatible array-of-pairs
// encoding.
func ArrayMap(key, value ValueWriter) ValueWriter {
	return &arrayMapWriter{key: key, value: value}
}

// Map returns a map writer using the native block-pair framing.
func Map(key, value ValueWriter) ValueWriter {
	return &mapWriter{key: key, value: value}
}

// Record returns a writer invoking the given field writers positionally, in
// order, on values implementing Row.
func Record(fields ...ValueWriter) ValueWriter {
	writers := make([]ValueWriter, len(fields))
	copy(writers, fields)

	return &recordWriter{fields: writers}
}
