package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Encode concatenates the codewords of text in order and packs them MSB first.
// The final byte is padded with zero bits; the returned Bits records the exact
// length so the padding is never decoded.
func Encode(text string, codes *CodeTable) (Bits, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	n := 0
	for i, r := range text {
		c, ok := codes.Lookup(r)
		if !ok {
			return Bits{}, fmt.Errorf("%w: %q at byte %d", ErrUnknownCharacter, r, i)
		}
		if err := w.WriteBits(c.Bits, c.Len); err != nil {
			return Bits{}, err
		}
		n += int(c.Len)
	}
	if err := w.Close(); err != nil {
		return Bits{}, err
	}
	return Bits{buf: buf.Bytes(), n: n}, nil
}

// Decode walks the tree from the root, one bit per step, emitting a character
// and returning to the root whenever a leaf is reached. It fails if a bit
// points at a missing child or the bits run out mid-codeword.
func Decode(bits Bits, root *Node) (string, error) {
	if root == nil {
		return "", ErrEmptyInput
	}
	r := bitio.NewReader(bytes.NewReader(bits.buf))
	var sb strings.Builder
	cur := root
	for i := 0; i < bits.n; i++ {
		one, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: bit %d: %v", ErrMalformedBitStream, i, err)
		}
		// a lone leaf only answers to its reserved codeword 0
		if root.IsLeaf() {
			if one {
				return "", fmt.Errorf("%w: bit %d leads nowhere", ErrMalformedBitStream, i)
			}
			sb.WriteRune(root.Char)
			continue
		}
		next := cur.Left
		if one {
			next = cur.Right
		}
		if next == nil {
			return "", fmt.Errorf("%w: bit %d leads nowhere", ErrMalformedBitStream, i)
		}
		cur = next
		if cur.IsLeaf() {
			sb.WriteRune(cur.Char)
			cur = root
		}
	}
	if cur != root {
		return "", fmt.Errorf("%w: truncated codeword after %d bits", ErrMalformedBitStream, bits.n)
	}
	return sb.String(), nil
}

// Codec holds one text's frequency table, code tree and code table. All three
// are built once by NewCodec and only read afterwards.
type Codec struct {
	freqs *FrequencyTable
	root  *Node
	codes *CodeTable
}

func NewCodec(text string) (*Codec, error) {
	freqs := Tabulate(text)
	return NewCodecFromTable(freqs)
}

// NewCodecFromTable builds the tree and codes for an existing table.
func NewCodecFromTable(freqs *FrequencyTable) (*Codec, error) {
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes, err := DeriveCodes(root)
	if err != nil {
		return nil, fmt.Errorf("derive codes: %w", err)
	}
	return &Codec{freqs: freqs, root: root, codes: codes}, nil
}

func (c *Codec) Frequencies() *FrequencyTable { return c.freqs }
func (c *Codec) Root() *Node                  { return c.root }
func (c *Codec) Codes() *CodeTable            { return c.codes }
func (c *Codec) InOrder() string              { return InOrder(c.root) }

func (c *Codec) Encode(text string) (Bits, error) { return Encode(text, c.codes) }
func (c *Codec) Decode(bits Bits) (string, error) { return Decode(bits, c.root) }
