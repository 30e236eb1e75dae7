// Package compress provides the block codecs used when flushing encoded rows
// into container file data blocks.
//
// The codec set follows the Avro container specification: "null" (no-op),
// "deflate", "snappy" and "zstandard". An additional nonstandard "lz4" codec
// is provided for deployments that register it on both the writing and the
// reading side; it is never selected by default.
//
// All codecs operate on complete blocks: the input to Compress is a fully
// encoded block payload and the output of Decompress is the original payload.
// Codecs are stateless values and safe for concurrent use; internal
// encoder/decoder instances are pooled.
package compress
