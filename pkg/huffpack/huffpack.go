// Package huffpack frames a Huffman-packed stream together with the frequency
// table it was built from, so the text can be recovered without the original
// session.
//
// Layout, all integers little-endian uint32:
//
//	textLen | reserved(0) | charCount
//	charCount x (count | rune)
//	packedBits | packedBytes | unpackedLen
//	packedBytes bytes of MSB-first payload
package huffpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"huffman_codec_go/pkg/huffman"
)

var ErrBadHeader = errors.New("huffpack: bad header")

// Pack serializes ft and bits. The frequency entries keep their table order,
// which is what lets Unpack rebuild the identical tree.
func Pack(ft *huffman.FrequencyTable, bits huffman.Bits) []byte {
	var buf bytes.Buffer
	entries := ft.Entries()
	payload := bits.Bytes()

	putU32(&buf, uint32(ft.Total()))
	putU32(&buf, 0)
	putU32(&buf, uint32(len(entries)))
	for _, e := range entries {
		putU32(&buf, uint32(e.Count))
		putU32(&buf, uint32(e.Char))
	}
	putU32(&buf, uint32(bits.Len()))
	putU32(&buf, uint32(len(payload)))
	putU32(&buf, uint32(ft.Total()))
	buf.Write(payload)
	return buf.Bytes()
}

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// readTable reads the three length fields and the frequency entries.
func readTable(r io.Reader) (*huffman.FrequencyTable, error) {
	textLen, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("text length: %w", err)
	}
	reserved, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("reserved: %w", err)
	}
	if reserved != 0 {
		return nil, fmt.Errorf("%w: reserved field is %d", ErrBadHeader, reserved)
	}
	chars, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("char count: %w", err)
	}
	if chars == 0 || chars > textLen {
		return nil, fmt.Errorf("%w: %d distinct characters for %d total", ErrBadHeader, chars, textLen)
	}

	entries := make([]huffman.Frequency, 0, min(chars, 1<<10))
	for i := uint32(0); i < chars; i++ {
		cnt, err := readU32(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d count: %w", i, err)
		}
		c, err := readU32(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d char: %w", i, err)
		}
		entries = append(entries, huffman.Frequency{Char: rune(c), Count: int(cnt)})
	}
	ft, err := huffman.NewFrequencyTable(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if ft.Total() != int(textLen) {
		return nil, fmt.Errorf("%w: counts sum to %d, header says %d", ErrBadHeader, ft.Total(), textLen)
	}
	return ft, nil
}

// UnpackFromReader reads one container and returns the decoded text.
func UnpackFromReader(r io.Reader) (string, error) {
	ft, err := readTable(r)
	if err != nil {
		return "", err
	}
	codec, err := huffman.NewCodecFromTable(ft)
	if err != nil {
		return "", err
	}

	packedBits, err := readU32(r)
	if err != nil {
		return "", fmt.Errorf("packed bits: %w", err)
	}
	packedBytes, err := readU32(r)
	if err != nil {
		return "", fmt.Errorf("packed bytes: %w", err)
	}
	unpackedLen, err := readU32(r)
	if err != nil {
		return "", fmt.Errorf("unpacked length: %w", err)
	}
	if (uint64(packedBits)+7)/8 != uint64(packedBytes) {
		return "", fmt.Errorf("%w: %d bits in %d bytes", ErrBadHeader, packedBits, packedBytes)
	}

	var packed bytes.Buffer
	if _, err := io.CopyN(&packed, r, int64(packedBytes)); err != nil {
		return "", fmt.Errorf("payload: %w", err)
	}
	bits, err := huffman.NewBits(packed.Bytes(), int(packedBits))
	if err != nil {
		return "", err
	}
	text, err := codec.Decode(bits)
	if err != nil {
		return "", err
	}
	if n := len([]rune(text)); n != int(unpackedLen) {
		return "", fmt.Errorf("%w: decoded %d characters, header says %d", ErrBadHeader, n, unpackedLen)
	}
	return text, nil
}

func UnpackBytes(b []byte) (string, error) { return UnpackFromReader(bytes.NewReader(b)) }
