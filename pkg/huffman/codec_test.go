package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"ab",
		"aaabbc",
		"abracadabra",
		"mississippi river",
		"hello, 世界! héllo wörld €€€",
		"line one\nline two\ttabbed\r\n",
	}
	for _, text := range tests {
		c, err := NewCodec(text)
		if err != nil {
			t.Fatalf("NewCodec(%q): %v", text, err)
		}
		bits, err := c.Encode(text)
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		got, err := c.Decode(bits)
		if err != nil {
			t.Fatalf("Decode(%q): %v", text, err)
		}
		if got != text {
			t.Fatalf("round trip = %q, want %q", got, text)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alphabet := []rune("0123456789abcdefXYZ ~αβγ")
	for i := 0; i < 200; i++ {
		text := randomText(rng, 2+rng.Intn(1000), alphabet)
		c, err := NewCodec(text)
		if err != nil {
			t.Fatal(err)
		}
		bits, err := c.Encode(text)
		if err != nil {
			t.Fatal(err)
		}
		got, err := c.Decode(bits)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != text {
			t.Fatalf("round trip mismatch for %q", text)
		}
	}
}

func TestEncodeScenarioA(t *testing.T) {
	c, _ := NewCodec("aaabbc")
	bits, err := c.Encode("aaabbc")
	if err != nil {
		t.Fatal(err)
	}
	if bits.String() != "000111110" {
		t.Fatalf("Encode = %s, want 000111110", bits)
	}
	if !bytes.Equal(bits.Bytes(), []byte{0x1F, 0x00}) {
		t.Fatalf("packed = % x, want 1f 00", bits.Bytes())
	}
}

func TestEncodeUnknownCharacter(t *testing.T) {
	c, _ := NewCodec("aaabbc")
	if _, err := c.Encode("abd"); !errors.Is(err, ErrUnknownCharacter) {
		t.Fatalf("Encode with foreign character err = %v, want ErrUnknownCharacter", err)
	}
	// the codec is still usable
	if _, err := c.Encode("cab"); err != nil {
		t.Fatalf("Encode after failure: %v", err)
	}
}

func TestSingleCharacter(t *testing.T) {
	c, err := NewCodec("zzzz")
	if err != nil {
		t.Fatal(err)
	}
	bits, err := c.Encode("zzzz")
	if err != nil {
		t.Fatal(err)
	}
	if bits.String() != "0000" {
		t.Fatalf("Encode(zzzz) = %s, want 0000", bits)
	}
	got, err := c.Decode(bits)
	if err != nil || got != "zzzz" {
		t.Fatalf("Decode = %q, %v", got, err)
	}
	bad, _ := ParseBits("001")
	if _, err := c.Decode(bad); !errors.Is(err, ErrMalformedBitStream) {
		t.Fatalf("Decode(001) on single leaf err = %v, want ErrMalformedBitStream", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	c, _ := NewCodec("aaabbc")
	// "0" is a, then "1" stops inside the (c,b) node
	bits, _ := ParseBits("01")
	got, err := c.Decode(bits)
	if !errors.Is(err, ErrMalformedBitStream) {
		t.Fatalf("Decode(01) err = %v, want ErrMalformedBitStream", err)
	}
	if got != "" {
		t.Fatalf("Decode(01) returned partial output %q", got)
	}
	// tree stays valid for a corrected retry
	bits, _ = ParseBits("0110")
	if got, err := c.Decode(bits); err != nil || got != "abc" {
		t.Fatalf("Decode(0110) = %q, %v", got, err)
	}
}

func TestDecodeMissingChild(t *testing.T) {
	root := &Node{Left: &Node{Char: 'a', Freq: 1}}
	bits, _ := ParseBits("01")
	if _, err := Decode(bits, root); !errors.Is(err, ErrMalformedBitStream) {
		t.Fatalf("Decode into missing child err = %v, want ErrMalformedBitStream", err)
	}
	if _, err := Decode(bits, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Decode with nil tree err = %v", err)
	}
}

func TestDecodeIgnoresPadding(t *testing.T) {
	c, _ := NewCodec("aaabbc")
	bits, _ := c.Encode("aaabbc")
	got, err := c.Decode(bits)
	if err != nil || got != "aaabbc" {
		t.Fatalf("Decode = %q, %v", got, err)
	}
	// reading the whole padded bytes yields spurious trailing a's
	padded, _ := NewBits(bits.Bytes(), len(bits.Bytes())*8)
	got, err = c.Decode(padded)
	if err != nil {
		t.Fatal(err)
	}
	if got != "aaabbcaaaaaaa" {
		t.Fatalf("Decode(padded) = %q", got)
	}
}

func TestDecodeEmpty(t *testing.T) {
	c, _ := NewCodec("ab")
	got, err := c.Decode(Bits{})
	if err != nil || got != "" {
		t.Fatalf("Decode(empty) = %q, %v", got, err)
	}
}
