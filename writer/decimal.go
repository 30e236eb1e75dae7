package writer

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arloliu/avrowire/internal/pool"
	"github.com/arloliu/avrowire/wire"
)

// decimalWriter emits fixed-width two's-complement big-endian bytes.
//
// The output width is a pure function of the precision, computed once at
// construction; a reader paired with the same schema derives the same width,
// so the bytes carry no length information of their own.
type decimalWriter struct {
	precision int32
	scale     int32
	length    int
}

func newDecimalWriter(precision, scale int32) *decimalWriter {
	return &decimalWriter{
		precision: precision,
		scale:     scale,
		length:    decimalRequiredBytes(precision),
	}
}

// decimalRequiredBytes returns the minimal number of two's-complement bytes
// able to hold any unscaled value of the given decimal precision: the
// smallest n with 10^precision - 1 <= 2^(8n-1) - 1.
//
// decimal(9) is 4 bytes, decimal(18) is 8, decimal(38) is 16.
func decimalRequiredBytes(precision int32) int {
	maxUnscaled := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	maxUnscaled.Sub(maxUnscaled, big.NewInt(1))

	// One extra bit for the sign, rounded up to whole bytes.
	return (maxUnscaled.BitLen() + 8) / 8
}

func (w *decimalWriter) Write(v any, sink wire.Sink) error {
	dec, ok := v.(decimal.Decimal)
	if !ok {
		return fmt.Errorf("%w: expected decimal.Decimal, got %T", ErrTypeMismatch, v)
	}

	if -dec.Exponent() != w.scale {
		return fmt.Errorf("%w: cannot write %s as decimal(%d,%d), scale is %d",
			ErrScaleMismatch, dec, w.precision, w.scale, -dec.Exponent())
	}
	if int32(dec.NumDigits()) > w.precision { //nolint: gosec
		return fmt.Errorf("%w: cannot write %s as decimal(%d,%d), too many digits",
			ErrPrecisionOverflow, dec, w.precision, w.scale)
	}

	buf, cleanup := pool.GetByteSlice(w.length)
	defer cleanup()

	unscaled := dec.Coefficient()
	if unscaled.Sign() >= 0 {
		raw := unscaled.Bytes()
		offset := w.length - len(raw)
		for i := 0; i < offset; i++ {
			buf[i] = 0x00
		}
		copy(buf[offset:], raw)
	} else {
		// Two's complement of a negative value over length bytes is
		// 2^(8*length) + value; the precision check above guarantees it fits.
		twos := new(big.Int).Lsh(big.NewInt(1), uint(8*w.length)) //nolint: gosec
		twos.Add(twos, unscaled)
		raw := twos.Bytes()
		offset := w.length - len(raw)
		for i := 0; i < offset; i++ {
			buf[i] = 0xFF
		}
		copy(buf[offset:], raw)
	}

	return sink.WriteFixed(buf)
}
