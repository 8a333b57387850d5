// wordbytes.go - big-endian byte-stream <-> word-slice helpers (§6)

package main

// bytesToWordsBE packs a big-endian byte stream into 16-bit words, as ROM
// images are defined to be laid out (§6). An odd trailing byte is padded
// with a zero low byte.
func bytesToWordsBE(b []byte) []uint16 {
	words := make([]uint16, (len(b)+1)/2)
	for i := range words {
		hi := b[i*2]
		var lo byte
		if i*2+1 < len(b) {
			lo = b[i*2+1]
		}
		words[i] = uint16(hi)<<8 | uint16(lo)
	}
	return words
}
