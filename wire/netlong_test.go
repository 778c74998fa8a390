package wire

import (
	"bytes"
	"testing"

	"github.com/kbukum/gwkit/errors"
)

func TestNetworkLong(t *testing.T) {
	buf := make([]byte, NetworkLongLen)
	if err := EncodeNetworkLong(buf, 0x01020304); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []byte{0x01, 0x02, 0x03, 0x04}; !bytes.Equal(buf, want) {
		t.Errorf("EncodeNetworkLong = % X, want % X", buf, want)
	}

	v, err := DecodeNetworkLong(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x01020304 {
		t.Errorf("expected 0x01020304, got %#x", v)
	}
}

func TestNetworkLongHighBit(t *testing.T) {
	v, err := DecodeNetworkLong([]byte{0xFF, 0x00, 0x00, 0x01, 0x99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0xFF000001 {
		t.Errorf("expected 0xFF000001, got %#x", v)
	}
}

func TestNetworkLongShortBuffer(t *testing.T) {
	if _, err := DecodeNetworkLong([]byte{0x01, 0x02, 0x03}); !errors.HasCode(err, errors.ErrCodeTruncatedInput) {
		t.Errorf("expected TRUNCATED_INPUT on decode, got %v", err)
	}
	if err := EncodeNetworkLong(make([]byte, 2), 7); !errors.HasCode(err, errors.ErrCodeTruncatedInput) {
		t.Errorf("expected TRUNCATED_INPUT on encode, got %v", err)
	}
}
