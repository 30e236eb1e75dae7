package writer

import (
	"fmt"

	"github.com/arloliu/avrowire/wire"
)

// recordWriter invokes field writer i on row field i, in declared order,
// with no structural markers of its own; the composite is implicit in the
// sequential writes.
type recordWriter struct {
	fields []ValueWriter
}

func (w *recordWriter) Write(v any, sink wire.Sink) error {
	row, ok := v.(Row)
	if !ok {
		return fmt.Errorf("%w: expected writer.Row, got %T", ErrTypeMismatch, v)
	}

	for i, field := range w.fields {
		if err := field.Write(row.Field(i), sink); err != nil {
			return err
		}
	}

	return nil
}
