package huffman

import "errors"

var (
	// ErrEmptyInput is returned when a tree is requested for a frequency table with no entries.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrUnknownCharacter is returned by Encode for a character that has no codeword.
	ErrUnknownCharacter = errors.New("huffman: character not in code table")
	// ErrMalformedBitStream is returned by Decode when the bits do not resolve to whole codewords.
	ErrMalformedBitStream = errors.New("huffman: malformed bit stream")
	// ErrCodeTooLong is returned when a leaf sits deeper than a Codeword can hold.
	ErrCodeTooLong = errors.New("huffman: codeword longer than 64 bits")
	// ErrInvalidBits is returned when parsing or wrapping a bit sequence fails.
	ErrInvalidBits = errors.New("huffman: invalid bit sequence")
)
