package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/avrowire/endian"
)

// failingWriter fails every write after the first n bytes were accepted.
type failingWriter struct {
	remaining int
}

var errWriterBroken = errors.New("writer broken")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0

		return n, errWriterBroken
	}
	w.remaining -= len(p)

	return len(p), nil
}

func TestStreamSink_MatchesBinarySink(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	drive := func(t *testing.T, sink Sink) {
		t.Helper()
		require.NoError(t, sink.WriteNull())
		require.NoError(t, sink.WriteBoolean(true))
		require.NoError(t, sink.WriteInt(-12345))
		require.NoError(t, sink.WriteLong(1<<40))
		require.NoError(t, sink.WriteFloat(3.5))
		require.NoError(t, sink.WriteDouble(-0.25))
		require.NoError(t, sink.WriteString("hello, 世界"))
		require.NoError(t, sink.WriteBytes([]byte{1, 2, 3}))
		require.NoError(t, sink.WriteFixed([]byte{9, 8}))
		require.NoError(t, sink.WriteArrayStart())
		require.NoError(t, sink.SetItemCount(2))
		require.NoError(t, sink.StartItem())
		require.NoError(t, sink.WriteInt(1))
		require.NoError(t, sink.StartItem())
		require.NoError(t, sink.WriteInt(2))
		require.NoError(t, sink.WriteArrayEnd())
		require.NoError(t, sink.WriteIndex(1))
	}

	buffered := NewBinarySink(engine)
	defer buffered.Finish()
	drive(t, buffered)

	var out bytes.Buffer
	drive(t, NewStreamSink(&out, engine))

	require.Equal(t, buffered.Bytes(), out.Bytes())
}

func TestStreamSink_WriterErrorPropagates(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("primitive write", func(t *testing.T) {
		sink := NewStreamSink(&failingWriter{}, engine)
		err := sink.WriteLong(42)
		require.ErrorIs(t, err, errWriterBroken)
	})

	t.Run("length prefix accepted, payload fails", func(t *testing.T) {
		sink := NewStreamSink(&failingWriter{remaining: 1}, engine)
		err := sink.WriteBytes([]byte{1, 2, 3})
		require.ErrorIs(t, err, errWriterBroken)
	})

	t.Run("string payload fails", func(t *testing.T) {
		sink := NewStreamSink(&failingWriter{remaining: 1}, engine)
		err := sink.WriteString("abc")
		require.ErrorIs(t, err, errWriterBroken)
	})
}

func TestStreamSink_SetItemCount_Negative(t *testing.T) {
	var out bytes.Buffer
	sink := NewStreamSink(&out, endian.GetLittleEndianEngine())
	require.Error(t, sink.SetItemCount(-3))
	require.Zero(t, out.Len())
}
