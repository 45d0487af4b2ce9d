package corefmt

import (
	"bytes"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0xff, 0x3e, 0x3f, 0xfb, 0x01}
	s := EncodeBase64URL(raw)
	for _, c := range s {
		if c == '+' || c == '/' || c == '=' {
			t.Fatalf("url-unsafe or padded output: %q", s)
		}
	}
	got, err := DecodeBase64URL(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("round trip mismatch: %x != %x", got, raw)
	}

	if _, err := DecodeBase64URL("not%valid"); err == nil {
		t.Fatalf("invalid input should fail")
	}
}

func TestBlobFrameRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab, 0x12}, 200)
	frame := EncodeBlobFrame(payload)

	got, err := DecodeBlobFrame(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch")
	}

	// 解碼輸出必須是複本，改動 frame 不得影響先前的輸出
	frame[len(frame)-1] ^= 0xff
	if !bytes.Equal(got, payload) {
		t.Fatalf("decoded payload aliases the frame")
	}
}

func TestBlobFrameMalformed(t *testing.T) {
	if _, err := DecodeBlobFrame(nil); err == nil {
		t.Fatalf("empty frame should fail")
	}

	frame := EncodeBlobFrame([]byte("snapshot"))
	if _, err := DecodeBlobFrame(frame[:len(frame)-3]); err == nil {
		t.Fatalf("truncated frame should fail")
	}
}

func TestBlobFrameStream(t *testing.T) {
	var buf bytes.Buffer
	first := []byte{1, 2, 3, 4}
	if err := WriteBlobFrame(&buf, first); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadBlobFrame(&buf, 64)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Fatalf("stream round trip mismatch")
	}
}

func TestReadBlobFrameMaxBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBlobFrame(&buf, make([]byte, 100)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadBlobFrame(&buf, 64); err == nil {
		t.Fatalf("payload over maxBytes should fail")
	}
}
