package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseBits(t *testing.T) {
	b, err := ParseBits("1010000011")
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", b.Len())
	}
	if !bytes.Equal(b.Bytes(), []byte{0xA0, 0xC0}) {
		t.Fatalf("Bytes() = % x, want a0 c0", b.Bytes())
	}
	if b.String() != "1010000011" {
		t.Fatalf("String() = %s", b)
	}
	if b.At(0) != 1 || b.At(1) != 0 || b.At(9) != 1 {
		t.Fatalf("At() returned wrong bits")
	}
	if _, err := ParseBits("01x"); !errors.Is(err, ErrInvalidBits) {
		t.Fatalf("ParseBits(01x) err = %v, want ErrInvalidBits", err)
	}
}

func TestNewBits(t *testing.T) {
	b, err := NewBits([]byte{0xFF, 0xFF}, 12)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0xFF, 0xF0}) {
		t.Fatalf("Bytes() = % x, want ff f0", b.Bytes())
	}
	if _, err := NewBits([]byte{0xFF}, 9); !errors.Is(err, ErrInvalidBits) {
		t.Fatalf("NewBits overrun err = %v", err)
	}
	if _, err := NewBits(nil, -1); !errors.Is(err, ErrInvalidBits) {
		t.Fatalf("NewBits negative err = %v", err)
	}
}

func TestBitsAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("At(8) on 8 bits did not panic")
		}
	}()
	b, _ := ParseBits("00000000")
	b.At(8)
}
