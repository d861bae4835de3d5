// Command client compresses a text file through a running server and checks
// that the downloaded archive round-trips.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"huffman_codec_go/pkg/huffclient"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: client <server-url> <file>")
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(url, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c := huffclient.New(url)
	s, err := c.CreateSession(ctx, filepath.Base(path), string(text))
	if err != nil {
		return err
	}
	for _, code := range s.Codes {
		fmt.Printf("%s->%s\n", code.Char, code.Code)
	}
	enc, err := c.Encode(ctx, s.ID)
	if err != nil {
		return err
	}
	back, err := c.DownloadText(ctx, s.ID)
	if err != nil {
		return err
	}
	if back != string(text) {
		return fmt.Errorf("session %s: archive does not round-trip", s.ID)
	}
	fmt.Printf("session %s: %d chars -> %d bits (%d bytes), checksum %s\n",
		s.ID, s.Total, enc.BitCount, len(enc.Packed), enc.Checksum)
	return nil
}
