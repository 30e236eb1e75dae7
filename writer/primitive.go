package writer

import (
	"fmt"

	"github.com/arloliu/avrowire/wire"
)

// Stateless primitive writers. Each is a zero-state flyweight shared through
// a package-level singleton; behavior never depends on instance identity.

type nullWriter struct{}

func (nullWriter) Write(_ any, sink wire.Sink) error {
	return sink.WriteNull()
}

type booleanWriter struct{}

func (booleanWriter) Write(v any, sink wire.Sink) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: expected bool, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteBoolean(b)
}

type intWriter struct{}

func (intWriter) Write(v any, sink wire.Sink) error {
	i, ok := v.(int32)
	if !ok {
		return fmt.Errorf("%w: expected int32, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteInt(i)
}

type longWriter struct{}

func (longWriter) Write(v any, sink wire.Sink) error {
	i, ok := v.(int64)
	if !ok {
		return fmt.Errorf("%w: expected int64, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteLong(i)
}

type floatWriter struct{}

func (floatWriter) Write(v any, sink wire.Sink) error {
	f, ok := v.(float32)
	if !ok {
		return fmt.Errorf("%w: expected float32, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteFloat(f)
}

type doubleWriter struct{}

func (doubleWriter) Write(v any, sink wire.Sink) error {
	f, ok := v.(float64)
	if !ok {
		return fmt.Errorf("%w: expected float64, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteDouble(f)
}

type stringWriter struct{}

func (stringWriter) Write(v any, sink wire.Sink) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: expected string, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteString(s)
}

type bytesWriter struct{}

func (bytesWriter) Write(v any, sink wire.Sink) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("%w: expected []byte, got %T", ErrTypeMismatch, v)
	}

	return sink.WriteBytes(b)
}

// fixedWriter emits raw fixed-width bytes with no prefix; input length must
// equal the configured length exactly.
type fixedWriter struct {
	length int
}

func (w *fixedWriter) Write(v any, sink wire.Sink) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("%w: expected []byte, got %T", ErrTypeMismatch, v)
	}
	if len(b) != w.length {
		return fmt.Errorf("%w: cannot write %d bytes as fixed[%d]", ErrFixedLengthMismatch, len(b), w.length)
	}

	return sink.WriteFixed(b)
}

var (
	nullWriterInstance    = nullWriter{}
	booleanWriterInstance = booleanWriter{}
	intWriterInstance     = intWriter{}
	longWriterInstance    = longWriter{}
	floatWriterInstance   = floatWriter{}
	doubleWriterInstance  = doubleWriter{}
	stringWriterInstance  = stringWriter{}
	bytesWriterInstance   = bytesWriter{}
)
