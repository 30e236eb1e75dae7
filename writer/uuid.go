package writer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arloliu/avrowire/internal/pool"
	"github.com/arloliu/avrowire/wire"
)

// uuidWriter emits 128-bit identifiers as 16 raw bytes: the high 64 bits in
// big-endian order followed by the low 64 bits in big-endian order. This is
// the byte order of the canonical textual form, so uuid.UUID's underlying
// array is already wire order.
type uuidWriter struct{}

var uuidWriterInstance = uuidWriter{}

func (uuidWriter) Write(v any, sink wire.Sink) error {
	u, ok := v.(uuid.UUID)
	if !ok {
		return fmt.Errorf("%w: expected uuid.UUID, got %T", ErrTypeMismatch, v)
	}

	buf, cleanup := pool.GetByteSlice(16)
	defer cleanup()
	copy(buf, u[:])

	return sink.WriteFixed(buf)
}
