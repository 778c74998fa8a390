// Package wire implements the numeric field encodings used by gateway
// protocols.
//
// Varints carry 7 data bits per octet, most significant group first, with
// the high bit set on every octet except the last:
//
//	buf := wire.EncodeVarint(300)       // [0x82 0x2C]
//	v, n, err := wire.DecodeVarint(buf, 0) // 300, 2, nil
//
// Network longs are fixed 4-octet big-endian values.
package wire
