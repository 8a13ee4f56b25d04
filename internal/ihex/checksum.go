// Package ihex implements the encoding of binary data as Intel HEX data records.
package ihex

// Checksum returns the Intel HEX checksum of the given bytes: the two's
// complement of the low byte of their sum. Adding the result to the sum of
// data yields 0 modulo 256.
func Checksum(data []byte) byte {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	low := byte(sum & 0xff)
	return ^low + 1
}
