package writer

import (
	"fmt"

	"github.com/arloliu/avrowire/wire"
)

// arrayWriter encodes a homogeneous sequence as a single non-empty block of
// the collection's size followed by the terminating count-0 block. Slice
// order is wire order.
type arrayWriter struct {
	elem ValueWriter
}

func (w *arrayWriter) Write(v any, sink wire.Sink) error {
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%w: expected []any, got %T", ErrTypeMismatch, v)
	}

	if err := sink.WriteArrayStart(); err != nil {
		return err
	}
	if err := sink.SetItemCount(int64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := sink.StartItem(); err != nil {
			return err
		}
		if err := w.elem.Write(item, sink); err != nil {
			return err
		}
	}

	return sink.WriteArrayEnd()
}

// arrayMapWriter encodes a map wire-compatibly with an array of implicit
// two-field {key, value} records. It exists for consumers that predate the
// native map framing and only understand the array encoding.
type arrayMapWriter struct {
	key   ValueWriter
	value ValueWriter
}

func (w *arrayMapWriter) Write(v any, sink wire.Sink) error {
	entries, ok := v.([]MapEntry)
	if !ok {
		return fmt.Errorf("%w: expected []MapEntry, got %T", ErrTypeMismatch, v)
	}

	if err := sink.WriteArrayStart(); err != nil {
		return err
	}
	if err := sink.SetItemCount(int64(len(entries))); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := sink.StartItem(); err != nil {
			return err
		}
		if err := w.key.Write(entry.Key, sink); err != nil {
			return err
		}
		if err := w.value.Write(entry.Value, sink); err != nil {
			return err
		}
	}

	return sink.WriteArrayEnd()
}

// mapWriter encodes a map with the native block-pair framing. Entry slice
// order is wire order.
type mapWriter struct {
	key   ValueWriter
	value ValueWriter
}

func (w *mapWriter) Write(v any, sink wire.Sink) error {
	entries, ok := v.([]MapEntry)
	if !ok {
		return fmt.Errorf("%w: expected []MapEntry, got %T", ErrTypeMismatch, v)
	}

	if err := sink.WriteMapStart(); err != nil {
		return err
	}
	if err := sink.SetItemCount(int64(len(entries))); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := sink.StartItem(); err != nil {
			return err
		}
		if err := w.key.Write(entry.Key, sink); err != nil {
			return err
		}
		if err := w.value.Write(entry.Value, sink); err != nil {
			return err
		}
	}

	return sink.WriteMapEnd()
}
