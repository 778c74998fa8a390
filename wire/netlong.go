package wire

import (
	"encoding/binary"
	"io"

	"github.com/kbukum/gwkit/errors"
)

// NetworkLongLen is the size of a network long in octets.
const NetworkLongLen = 4

// DecodeNetworkLong reads a big-endian 32-bit value from the start of b.
func DecodeNetworkLong(b []byte) (uint32, error) {
	if len(b) < NetworkLongLen {
		return 0, errors.TruncatedInput("network long", len(b)).WithCause(io.ErrUnexpectedEOF)
	}
	return binary.BigEndian.Uint32(b), nil
}

// EncodeNetworkLong writes v big-endian into the first four octets of dst.
func EncodeNetworkLong(dst []byte, v uint32) error {
	if len(dst) < NetworkLongLen {
		return errors.TruncatedInput("network long buffer", len(dst)).WithCause(io.ErrShortBuffer)
	}
	binary.BigEndian.PutUint32(dst, v)
	return nil
}
