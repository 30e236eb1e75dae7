package writer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRecord_FieldsInDeclaredOrder(t *testing.T) {
	w := Record(Longs(), Strings(), Booleans())

	data := encode(t, w, RowOf([]any{int64(42), "answer", true}))

	r := newBinReader(t, data)
	require.Equal(t, int64(42), r.readLong())
	require.Equal(t, "answer", r.readString())
	require.True(t, r.readBool())
	require.True(t, r.exhausted())
}

func TestRecord_NoSeparators(t *testing.T) {
	// the record encoding is the exact concatenation of its field encodings
	w := Record(Ints(), Ints())
	data := encode(t, w, RowOf([]any{int32(1), int32(2)}))
	require.Equal(t, []byte{0x02, 0x04}, data)
}

func TestRecord_NullableFields(t *testing.T) {
	name, err := Option(0, Strings())
	require.NoError(t, err)
	score, err := Option(0, Doubles())
	require.NoError(t, err)
	w := Record(Longs(), name, score)

	data := encode(t, w, RowOf([]any{int64(7), nil, 1.5}))

	r := newBinReader(t, data)
	require.Equal(t, int64(7), r.readLong())
	require.Equal(t, int64(0), r.readLong()) // null branch
	require.Equal(t, int64(1), r.readLong()) // value branch
	require.Equal(t, 1.5, r.readDouble())
	require.True(t, r.exhausted())
}

func TestRecord_NestedOptionOfArrayOfRecord(t *testing.T) {
	item := Record(Strings(), Ints())
	items, err := Option(0, Array(item))
	require.NoError(t, err)
	root := Record(Longs(), items)

	t.Run("present", func(t *testing.T) {
		data := encode(t, root, RowOf([]any{
			int64(1),
			[]any{
				RowOf([]any{"a", int32(10)}),
				RowOf([]any{"b", int32(20)}),
			},
		}))

		r := newBinReader(t, data)
		require.Equal(t, int64(1), r.readLong()) // id
		require.Equal(t, int64(1), r.readLong()) // option value branch
		require.Equal(t, int64(2), r.readLong()) // block count
		require.Equal(t, "a", r.readString())
		require.Equal(t, int32(10), r.readInt())
		require.Equal(t, "b", r.readString())
		require.Equal(t, int32(20), r.readInt())
		require.Equal(t, int64(0), r.readLong()) // terminator
		require.True(t, r.exhausted())
	})

	t.Run("absent", func(t *testing.T) {
		data := encode(t, root, RowOf([]any{int64(1), nil}))

		r := newBinReader(t, data)
		require.Equal(t, int64(1), r.readLong())
		require.Equal(t, int64(0), r.readLong()) // null branch, nothing follows
		require.True(t, r.exhausted())
	})
}

func TestRecord_MixedLogicalTypes(t *testing.T) {
	price, err := Decimal(9, 2)
	require.NoError(t, err)
	w := Record(UUIDs(), price)

	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	data := encode(t, w, RowOf([]any{id, decimal.RequireFromString("123.45")}))

	r := newBinReader(t, data)
	require.Equal(t, id[:], r.readFixed(16))
	require.Equal(t, []byte{0x00, 0x00, 0x30, 0x39}, r.readFixed(4))
	require.True(t, r.exhausted())
}

func TestRecord_TypeMismatch(t *testing.T) {
	w := Record(Ints())
	require.ErrorIs(t, encodeErr(t, w, []any{int32(1)}), ErrTypeMismatch)
}

func TestRecord_FieldErrorAborts(t *testing.T) {
	w := Record(Ints(), Strings())
	err := encodeErr(t, w, RowOf([]any{int32(1), int32(2)}))
	require.ErrorIs(t, err, ErrTypeMismatch)
}
