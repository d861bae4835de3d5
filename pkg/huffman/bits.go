package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bits is an exact-length sequence of binary digits. It is stored packed,
// most significant bit first, and the unused low bits of the last byte are
// zero. Only the first Len bits are meaningful.
type Bits struct {
	buf []byte
	n   int
}

// NewBits wraps the first n bits of packed.
func NewBits(packed []byte, n int) (Bits, error) {
	if n < 0 || (n+7)/8 > len(packed) {
		return Bits{}, fmt.Errorf("%w: %d bits do not fit in %d bytes", ErrInvalidBits, n, len(packed))
	}
	buf := make([]byte, (n+7)/8)
	copy(buf, packed)
	if r := n % 8; r != 0 {
		buf[len(buf)-1] &= 0xFF << (8 - r)
	}
	return Bits{buf: buf, n: n}, nil
}

// ParseBits reads a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1':
			if err := w.WriteBool(s[i] == '1'); err != nil {
				return Bits{}, err
			}
		default:
			return Bits{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidBits, s[i], i)
		}
	}
	if err := w.Close(); err != nil {
		return Bits{}, err
	}
	return Bits{buf: buf.Bytes(), n: len(s)}, nil
}

func (b Bits) Len() int { return b.n }

// At returns bit i as 0 or 1.
func (b Bits) At(i int) byte {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("huffman: bit index %d out of range [0,%d)", i, b.n))
	}
	return b.buf[i/8] >> (7 - uint(i%8)) & 1
}

// Bytes returns the packed form, zero padded to a whole number of bytes.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}
