package writer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestDecimalRequiredBytes(t *testing.T) {
	testCases := []struct {
		precision int32
		length    int
	}{
		{1, 1}, {2, 1},
		{3, 2}, {4, 2},
		{5, 3}, {6, 3},
		{7, 4}, {9, 4},
		{10, 5}, {11, 5},
		{12, 6}, {14, 6},
		{15, 7}, {16, 7},
		{17, 8}, {18, 8},
		{19, 9}, {21, 9},
		{22, 10}, {23, 10},
		{24, 11}, {26, 11},
		{27, 12}, {28, 12},
		{29, 13}, {31, 13},
		{32, 14}, {33, 14},
		{34, 15}, {35, 15},
		{36, 16}, {38, 16},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.length, decimalRequiredBytes(tc.precision),
			"precision %d", tc.precision)
	}
}

func TestDecimal_KnownVectors(t *testing.T) {
	w, err := Decimal(9, 2)
	require.NoError(t, err)

	t.Run("123.45", func(t *testing.T) {
		// unscaled 12345, sign-extended to 4 bytes
		data := encode(t, w, mustDecimal(t, "123.45"))
		require.Equal(t, []byte{0x00, 0x00, 0x30, 0x39}, data)
	})

	t.Run("-1.00", func(t *testing.T) {
		// unscaled -100, two's complement over 4 bytes
		data := encode(t, w, mustDecimal(t, "-1.00"))
		require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x9C}, data)
	})

	t.Run("0.00", func(t *testing.T) {
		data := encode(t, w, mustDecimal(t, "0.00"))
		require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, data)
	})

	t.Run("max precision", func(t *testing.T) {
		data := encode(t, w, mustDecimal(t, "9999999.99"))
		// 999999999 = 0x3B9AC9FF
		require.Equal(t, []byte{0x3B, 0x9A, 0xC9, 0xFF}, data)
	})

	t.Run("min value", func(t *testing.T) {
		data := encode(t, w, mustDecimal(t, "-9999999.99"))
		// -999999999 two's complement = 0xC4653601
		require.Equal(t, []byte{0xC4, 0x65, 0x36, 0x01}, data)
	})
}

func TestDecimal_OutputWidthIsFixed(t *testing.T) {
	w, err := Decimal(9, 2)
	require.NoError(t, err)

	for _, s := range []string{"0.01", "-0.01", "1.00", "9999999.99", "-9999999.99"} {
		data := encode(t, w, mustDecimal(t, s))
		require.Len(t, data, 4, "value %s", s)
	}
}

func TestDecimal_ScaleMismatch(t *testing.T) {
	w, err := Decimal(9, 2)
	require.NoError(t, err)

	for _, s := range []string{"1.234", "1.0", "1"} {
		err := encodeErr(t, w, mustDecimal(t, s))
		require.ErrorIs(t, err, ErrScaleMismatch, "value %s", s)
	}
}

func TestDecimal_PrecisionOverflow(t *testing.T) {
	w, err := Decimal(9, 2)
	require.NoError(t, err)

	t.Run("too many digits fails", func(t *testing.T) {
		err := encodeErr(t, w, mustDecimal(t, "12345678.90"))
		require.ErrorIs(t, err, ErrPrecisionOverflow)
	})

	t.Run("exactly precision digits succeeds", func(t *testing.T) {
		data := encode(t, w, mustDecimal(t, "1234567.89"))
		require.Len(t, data, 4)
	})
}

func TestDecimal_TypeMismatch(t *testing.T) {
	w, err := Decimal(9, 2)
	require.NoError(t, err)

	require.ErrorIs(t, encodeErr(t, w, "123.45"), ErrTypeMismatch)
}

func TestDecimal_ConstructionValidation(t *testing.T) {
	_, err := Decimal(0, 0)
	require.Error(t, err)

	_, err = Decimal(9, -1)
	require.Error(t, err)

	_, err = Decimal(9, 10)
	require.Error(t, err)
}

func TestDecimal_WideValues(t *testing.T) {
	w, err := Decimal(38, 0)
	require.NoError(t, err)

	t.Run("positive max", func(t *testing.T) {
		data := encode(t, w, mustDecimal(t, "99999999999999999999999999999999999999"))
		require.Len(t, data, 16)
		require.Zero(t, data[0]&0x80, "sign bit must be clear")
	})

	t.Run("negative max", func(t *testing.T) {
		data := encode(t, w, mustDecimal(t, "-99999999999999999999999999999999999999"))
		require.Len(t, data, 16)
		require.NotZero(t, data[0]&0x80, "sign bit must be set")
	})
}
