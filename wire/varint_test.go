package wire

import (
	"bytes"
	stderrors "errors"
	"io"
	"math"
	"testing"

	"github.com/kbukum/gwkit/errors"
)

func TestEncodeVarint(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x00}},
		{300, []byte{0x82, 0x2C}},
		{16383, []byte{0xFF, 0x7F}},
		{16384, []byte{0x81, 0x80, 0x00}},
		{math.MaxUint32, []byte{0x8F, 0xFF, 0xFF, 0xFF, 0x7F}},
		{math.MaxUint64, []byte{0x81, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}},
	}
	for _, tc := range tests {
		got := EncodeVarint(tc.value)
		if !bytes.Equal(got, tc.want) {
			t.Errorf("EncodeVarint(%d) = % X, want % X", tc.value, got, tc.want)
		}
		if n := VarintLen(tc.value); n != len(tc.want) {
			t.Errorf("VarintLen(%d) = %d, want %d", tc.value, n, len(tc.want))
		}
	}
}

func TestEncodeVarintContinuationBits(t *testing.T) {
	for _, v := range []uint64{0, 127, 128, 1 << 20, 1<<35 + 7, math.MaxUint64} {
		enc := EncodeVarint(v)
		for i, octet := range enc {
			last := i == len(enc)-1
			if last && octet&0x80 != 0 {
				t.Errorf("EncodeVarint(%d): last octet %02X has continuation bit", v, octet)
			}
			if !last && octet&0x80 == 0 {
				t.Errorf("EncodeVarint(%d): octet %d (%02X) lacks continuation bit", v, i, octet)
			}
		}
		if len(enc) > 1 && enc[0] == 0x80 {
			t.Errorf("EncodeVarint(%d) = % X has a redundant leading group", v, enc)
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 63, 64, 127, 128, 255, 256, 16383, 16384, 1 << 21, 1<<28 - 1, 1 << 28,
		math.MaxUint32, 1 << 42, 1<<56 + 3, math.MaxUint64 >> 1, math.MaxUint64}
	for _, v := range values {
		enc := EncodeVarint(v)
		got, n, err := DecodeVarint(enc, 0)
		if err != nil {
			t.Fatalf("DecodeVarint(% X): unexpected error: %v", enc, err)
		}
		if got != v || n != len(enc) {
			t.Errorf("round trip %d: got (%d, %d), want (%d, %d)", v, got, n, v, len(enc))
		}
	}
}

func TestDecodeVarintAtOffset(t *testing.T) {
	buf := []byte{0xAA, 0x81, 0x00, 0x05}

	v, n, err := DecodeVarint(buf, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 128 || n != 2 {
		t.Errorf("expected (128, 2), got (%d, %d)", v, n)
	}

	v, n, err = DecodeVarint(buf, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 || n != 1 {
		t.Errorf("expected (5, 1), got (%d, %d)", v, n)
	}
}

func TestDecodeVarintStopsAtFirstTerminator(t *testing.T) {
	v, n, err := DecodeVarint([]byte{0x7F, 0x01, 0x02}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 127 || n != 1 {
		t.Errorf("expected (127, 1), got (%d, %d)", v, n)
	}
}

func TestDecodeVarintNonMinimal(t *testing.T) {
	v, n, err := DecodeVarint([]byte{0x80, 0x80, 0x05}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 || n != 3 {
		t.Errorf("expected (5, 3), got (%d, %d)", v, n)
	}
}

func TestDecodeVarintTruncated(t *testing.T) {
	tests := []struct {
		name  string
		buf   []byte
		start int
	}{
		{"empty buffer", nil, 0},
		{"continuation at end", []byte{0x81}, 0},
		{"long run without terminator", []byte{0x81, 0x80, 0x80}, 0},
		{"start past end", []byte{0x01}, 1},
		{"negative start", []byte{0x01}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, n, err := DecodeVarint(tc.buf, tc.start)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, errors.ErrCodeTruncatedInput) {
				t.Errorf("expected TRUNCATED_INPUT, got %v", err)
			}
			if !stderrors.Is(err, io.ErrUnexpectedEOF) {
				t.Error("expected io.ErrUnexpectedEOF in the chain")
			}
			if n != 0 {
				t.Errorf("expected 0 octets consumed, got %d", n)
			}
		})
	}
}

func TestDecodeVarintOverflow(t *testing.T) {
	buf := []byte{0x82, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}
	_, _, err := DecodeVarint(buf, 0)
	if !errors.HasCode(err, errors.ErrCodeValueOverflow) {
		t.Fatalf("expected VALUE_OVERFLOW, got %v", err)
	}
}

func TestAppendVarint(t *testing.T) {
	dst := []byte{0xEE}
	dst = AppendVarint(dst, 128)
	dst = AppendVarint(dst, 0)
	want := []byte{0xEE, 0x81, 0x00, 0x00}
	if !bytes.Equal(dst, want) {
		t.Errorf("AppendVarint = % X, want % X", dst, want)
	}

	v, n, err := DecodeVarint(dst, 1)
	if err != nil || v != 128 || n != 2 {
		t.Errorf("expected (128, 2, nil), got (%d, %d, %v)", v, n, err)
	}
}
