package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Deflate", CompressionDeflate.String())
	require.Equal(t, "Snappy", CompressionSnappy.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestCompressionType_CodecNameRoundTrip(t *testing.T) {
	types := []CompressionType{
		CompressionNone,
		CompressionDeflate,
		CompressionSnappy,
		CompressionZstd,
		CompressionLZ4,
	}

	for _, ct := range types {
		parsed, err := ParseCompression(ct.CodecName())
		require.NoError(t, err)
		require.Equal(t, ct, parsed)
	}
}

func TestParseCompression(t *testing.T) {
	ct, err := ParseCompression("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, ct) // missing codec metadata means "null"

	_, err = ParseCompression("bzip2")
	require.Error(t, err)
}
