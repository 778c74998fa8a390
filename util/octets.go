package util

import (
	"encoding/hex"
	"strings"

	"github.com/kbukum/gwkit/errors"
)

// ParseOctets parses hex octet text such as "81 00", "81:00", "0x8100" or
// "81,00" into bytes. Whitespace, ':' and ',' separate octets.
func ParseOctets(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', ',':
			return -1
		}
		return r
	}, s)

	if clean == "" {
		return nil, errors.InvalidFormat("octets", "hex digits")
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errors.InvalidFormat("octets", "hex digits").WithCause(err)
	}
	return b, nil
}

// FormatOctets renders b as space-separated lowercase hex octets.
func FormatOctets(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	return sb.String()
}
