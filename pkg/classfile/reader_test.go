package classfile

import (
	"errors"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x2A, 0xFF}
	r := newReader(data)

	b, err := r.u8()
	if err != nil || b != 0x01 {
		t.Fatalf("u8: got (%v, %v), want (0x01, nil)", b, err)
	}
	u16, err := r.u16()
	if err != nil || u16 != 0x0203 {
		t.Fatalf("u16: got (%#x, %v)", u16, err)
	}
	u32, err := r.u32()
	if err != nil || u32 != 0x2A {
		t.Fatalf("u32: got (%#x, %v)", u32, err)
	}
	if r.remaining() != 1 {
		t.Fatalf("remaining: got %d, want 1", r.remaining())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := newReader([]byte{0x00})
	_, err := r.u16()
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != Truncated {
		t.Fatalf("expected Truncated ParseError, got %v", err)
	}
}

func TestDecodeModifiedUTF8Ascii(t *testing.T) {
	s, err := decodeModifiedUTF8([]byte("Hello"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "Hello" {
		t.Fatalf("got %q, want %q", s, "Hello")
	}
}

func TestDecodeModifiedUTF8EmbeddedNUL(t *testing.T) {
	// A literal 0x00 byte is not legal Modified-UTF-8 (NUL must be
	// encoded as the 2-byte sequence 0xC0 0x80) but this decoder
	// tolerates it rather than rejecting the input.
	raw := []byte{'a', 0x00, 'b'}
	s, err := decodeModifiedUTF8(raw, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "a\x00b" {
		t.Fatalf("got %q", s)
	}
}

func TestDecodeModifiedUTF8TwoByteNUL(t *testing.T) {
	s, err := decodeModifiedUTF8([]byte{0xC0, 0x80}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "\x00" {
		t.Fatalf("got %q", s)
	}
}

func TestDecodeModifiedUTF8SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE encoded as the Modified-UTF-8 surrogate pair
	// 0xEDA0BD (high surrogate D83D) 0xEDB880 (low surrogate DE00).
	raw := []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}
	s, err := decodeModifiedUTF8(raw, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := string(rune(0x1F600))
	if s != want {
		t.Fatalf("got %q (% x), want %q", s, []byte(s), want)
	}
}

func TestDecodeModifiedUTF8UnpairedSurrogate(t *testing.T) {
	raw := []byte{0xED, 0xA0, 0xBD} // lone high surrogate D83D
	s, err := decodeModifiedUTF8(raw, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// An unpaired surrogate has no valid Unicode scalar value, so it is
	// preserved byte-for-byte as its original 3-byte encoding rather
	// than collapsed into a U+FFFD replacement character.
	if string([]byte(s)) != string(raw) {
		t.Fatalf("got % x, want % x (unchanged)", []byte(s), raw)
	}
}

func TestDecodeModifiedUTF8InvalidContinuation(t *testing.T) {
	raw := []byte{0xC0, 0x00} // second byte is not a continuation byte
	_, err := decodeModifiedUTF8(raw, 0)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != InvalidUTF8 {
		t.Fatalf("expected InvalidUTF8 ParseError, got %v", err)
	}
}
