package model

import (
	"time"

	"huffman_codec_go/pkg/huffman"
)

// Session is one text together with the code built for it. Codec and Text are
// fixed at creation; Encoded is set by the first successful encode and is
// only read or written under the owning SessionService's lock.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Text      string
	Codec     *huffman.Codec
	Encoded   huffman.Bits
}

// Artifact is the persisted form of an encoded session: the packed bytes and
// the exact number of meaningful bits in them.
type Artifact struct {
	SessionID string
	Name      string
	Packed    []byte
	BitCount  int
	Checksum  uint64
	CreatedAt time.Time
}
