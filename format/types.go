package format

import "fmt"

type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone bypasses compression (the "null" codec).
	CompressionDeflate CompressionType = 0x2 // CompressionDeflate represents raw DEFLATE (RFC 1951).
	CompressionSnappy  CompressionType = 0x3 // CompressionSnappy represents Snappy block compression.
	CompressionZstd    CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
	CompressionLZ4     CompressionType = 0x5 // CompressionLZ4 represents LZ4 block compression (nonstandard codec).
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionDeflate:
		return "Deflate"
	case CompressionSnappy:
		return "Snappy"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CodecName returns the codec name recorded in container file metadata.
//
// The names follow the Avro specification ("null", "deflate", "snappy",
// "zstandard"). "lz4" is a nonstandard extension; files written with it are
// only readable by peers that registered the same codec.
func (c CompressionType) CodecName() string {
	switch c {
	case CompressionNone:
		return "null"
	case CompressionDeflate:
		return "deflate"
	case CompressionSnappy:
		return "snappy"
	case CompressionZstd:
		return "zstandard"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompression maps a codec name from container file metadata back to its
// CompressionType. An empty name is treated as the "null" codec.
func ParseCompression(name string) (CompressionType, error) {
	switch name {
	case "null", "":
		return CompressionNone, nil
	case "deflate":
		return CompressionDeflate, nil
	case "snappy":
		return CompressionSnappy, nil
	case "zstandard":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown codec name: %q", name)
	}
}
