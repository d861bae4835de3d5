package huffman_test

import (
	"fmt"

	"huffman_codec_go/pkg/huffman"
)

func ExampleNewCodec() {
	c, err := huffman.NewCodec("aaabbc")
	if err != nil {
		panic(err)
	}
	for _, e := range c.Codes().Entries() {
		fmt.Printf("%c -> %s\n", e.Char, e.Code)
	}
	bits, _ := c.Encode("aaabbc")
	fmt.Println(bits, bits.Len())
	fmt.Printf("% x\n", bits.Bytes())
	text, _ := c.Decode(bits)
	fmt.Println(text)

	// Output:
	// a -> 0
	// c -> 10
	// b -> 11
	// 000111110 9
	// 1f 00
	// aaabbc
}
