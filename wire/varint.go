package wire

import (
	"io"
	"math"

	"github.com/kbukum/gwkit/errors"
)

const (
	continuationBit = 0x80
	payloadMask     = 0x7F

	// MaxVarintLen is the longest encoding of a 64-bit value.
	MaxVarintLen = 10
)

// DecodeVarint decodes the varint starting at b[start]. It returns the value
// and the number of octets consumed.
//
// A buffer that ends before an octet with the high bit clear yields a
// TRUNCATED_INPUT error wrapping io.ErrUnexpectedEOF, and a value wider than
// 64 bits yields VALUE_OVERFLOW.
func DecodeVarint(b []byte, start int) (uint64, int, error) {
	if start < 0 || start >= len(b) {
		return 0, 0, errors.TruncatedInput("varint", start).WithCause(io.ErrUnexpectedEOF)
	}

	var value uint64
	for i := start; i < len(b); i++ {
		octet := b[i]
		if value > math.MaxUint64>>7 {
			return 0, 0, errors.ValueOverflow("varint", 64).WithDetail("offset", start)
		}
		value = value<<7 | uint64(octet&payloadMask)
		if octet&continuationBit == 0 {
			return value, i - start + 1, nil
		}
	}
	return 0, 0, errors.TruncatedInput("varint", len(b)).WithCause(io.ErrUnexpectedEOF)
}

// EncodeVarint returns the minimal encoding of v. Zero encodes as a single
// 0x00 octet.
func EncodeVarint(v uint64) []byte {
	return AppendVarint(make([]byte, 0, VarintLen(v)), v)
}

// AppendVarint appends the minimal encoding of v to dst.
func AppendVarint(dst []byte, v uint64) []byte {
	n := VarintLen(v)
	for i := n - 1; i >= 0; i-- {
		octet := byte(v>>(7*uint(i))) & payloadMask
		if i > 0 {
			octet |= continuationBit
		}
		dst = append(dst, octet)
	}
	return dst
}

// VarintLen returns the number of octets EncodeVarint(v) produces.
func VarintLen(v uint64) int {
	n := 1
	for v >= continuationBit {
		v >>= 7
		n++
	}
	return n
}
