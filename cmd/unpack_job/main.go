package main

import (
	"fmt"
	"os"

	"huffman_codec_go/pkg/huffpack"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: unpack_job <file.huffpack>")
		os.Exit(2)
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()

	text, err := huffpack.UnpackFromReader(f)
	if err != nil {
		fmt.Println("failed to unpack data:", err)
		os.Exit(1)
	}
	fmt.Print(text)
}
