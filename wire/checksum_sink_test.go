package wire

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/avrowire/endian"
)

func TestChecksumSink_DigestCoversEmittedBytes(t *testing.T) {
	var out bytes.Buffer
	sink := NewChecksumSink(&out, endian.GetLittleEndianEngine())

	require.NoError(t, sink.WriteLong(12345))
	require.NoError(t, sink.WriteString("snapshot"))
	require.NoError(t, sink.WriteDouble(2.5))

	require.Equal(t, xxhash.Sum64(out.Bytes()), sink.Sum64())
	require.NotZero(t, out.Len())
}

func TestChecksumSink_EmptyDigestIsStable(t *testing.T) {
	var a, b bytes.Buffer
	sinkA := NewChecksumSink(&a, endian.GetLittleEndianEngine())
	sinkB := NewChecksumSink(&b, endian.GetLittleEndianEngine())

	require.Equal(t, sinkA.Sum64(), sinkB.Sum64())
}
