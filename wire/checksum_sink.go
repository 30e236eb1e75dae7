package wire

import (
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/avrowire/endian"
	"github.com/arloliu/avrowire/internal/hash"
)

// ChecksumSink is a StreamSink that additionally maintains a running
// xxHash64 digest of every byte emitted.
//
// The storage layer records the digest next to each persisted block so
// corruption is detected before a reader attempts to decode the payload.
// The digest covers exactly the bytes written through the sink, in order.
type ChecksumSink struct {
	*StreamSink
	digest *xxhash.Digest
}

// NewChecksumSink creates a sink that writes to w and hashes everything it
// emits. Writer errors propagate unchanged; hashing itself cannot fail.
func NewChecksumSink(w io.Writer, engine endian.EndianEngine) *ChecksumSink {
	digest := hash.New()

	return &ChecksumSink{
		StreamSink: NewStreamSink(io.MultiWriter(w, digest), engine),
		digest:     digest,
	}
}

// Sum64 returns the xxHash64 of all bytes emitted so far.
func (s *ChecksumSink) Sum64() uint64 {
	return s.digest.Sum64()
}
