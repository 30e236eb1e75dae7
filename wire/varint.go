package wire

// AppendZigZag appends the zig-zag signed varint encoding of val to dst and
// returns the extended slice.
//
// Zigzag encoding converts signed to unsigned so small negative values stay
// small on the wire: -1 becomes 1, -2 becomes 3, 0 stays 0, 1 becomes 2, etc.
// The unsigned result is emitted low 7 bits first with the high bit of each
// byte marking continuation.
func AppendZigZag(dst []byte, val int64) []byte {
	uval := uint64(val<<1) ^ uint64(val>>63) //nolint: gosec

	for uval >= 0x80 {
		dst = append(dst, byte(uval)|0x80)
		uval >>= 7
	}

	return append(dst, byte(uval))
}

// ZigZagLen returns the number of bytes AppendZigZag emits for val.
func ZigZagLen(val int64) int {
	uval := uint64(val<<1) ^ uint64(val>>63) //nolint: gosec
	n := 1
	for uval >= 0x80 {
		uval >>= 7
		n++
	}

	return n
}
