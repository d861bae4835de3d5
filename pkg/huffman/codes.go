package huffman

import (
	"fmt"
	"strings"
)

const maxCodeLen = 64

// Codeword is a root-to-leaf path: the low Len bits of Bits, most significant
// first, 0 for a left step and 1 for a right step.
type Codeword struct {
	Bits uint64
	Len  uint8
}

func (c Codeword) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Codeword) HasPrefix(p Codeword) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

type CodeEntry struct {
	Char rune
	Code Codeword
}

// CodeTable maps characters to codewords. It is never modified after DeriveCodes.
type CodeTable struct {
	entries []CodeEntry
	codes   map[rune]Codeword
}

// DeriveCodes walks the tree once and records the path to every leaf.
//
// A tree that is a single leaf has no path; its character gets the reserved
// 1-bit codeword 0 so that every character still costs at least one bit.
func DeriveCodes(root *Node) (*CodeTable, error) {
	if root == nil {
		return nil, ErrEmptyInput
	}
	ct := &CodeTable{codes: make(map[rune]Codeword)}
	if root.IsLeaf() {
		ct.add(root.Char, Codeword{Bits: 0, Len: 1})
		return ct, nil
	}

	var walk func(n *Node, path Codeword) error
	walk = func(n *Node, path Codeword) error {
		if n.IsLeaf() {
			ct.add(n.Char, path)
			return nil
		}
		if path.Len == maxCodeLen {
			return ErrCodeTooLong
		}
		if n.Left == nil || n.Right == nil {
			return fmt.Errorf("internal node with a single child (freq %d)", n.Freq)
		}
		if err := walk(n.Left, Codeword{Bits: path.Bits << 1, Len: path.Len + 1}); err != nil {
			return err
		}
		return walk(n.Right, Codeword{Bits: path.Bits<<1 | 1, Len: path.Len + 1})
	}
	if err := walk(root, Codeword{}); err != nil {
		return nil, err
	}
	return ct, nil
}

func (ct *CodeTable) add(r rune, c Codeword) {
	ct.codes[r] = c
	ct.entries = append(ct.entries, CodeEntry{Char: r, Code: c})
}

func (ct *CodeTable) Lookup(r rune) (Codeword, bool) {
	c, ok := ct.codes[r]
	return c, ok
}

func (ct *CodeTable) Len() int { return len(ct.entries) }

// Entries returns the codewords in left-to-right leaf order.
func (ct *CodeTable) Entries() []CodeEntry {
	out := make([]CodeEntry, len(ct.entries))
	copy(out, ct.entries)
	return out
}
