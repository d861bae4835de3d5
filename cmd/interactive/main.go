// Command interactive builds a code for one text file and serves the
// encode/decode menu on the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"huffman_codec_go/internal/app"
	"huffman_codec_go/internal/config"
	"huffman_codec_go/internal/console"
	"huffman_codec_go/pkg/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: interactive <file>")
		os.Exit(2)
	}
	path := os.Args[1]
	ctx := context.Background()
	cfg := config.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading file:", err)
		os.Exit(1)
	}
	name := filepath.Base(path)
	fmt.Println("Selected file: " + name)

	// the menu owns stdout; service logs go to stderr
	a, err := app.New(ctx, cfg, logger.NewWriter(os.Stderr))
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	// line breaks are dropped like a line-by-line read would
	text := strings.NewReplacer("\r\n", "", "\n", "").Replace(string(raw))
	s, err := a.Sessions.Create(name, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	save := func(name string, packed []byte) error {
		return os.WriteFile(filepath.Join(cfg.OutDir, "Compressed_"+name), packed, 0o644)
	}
	if err := console.Run(ctx, a.Sessions, s.ID, os.Stdin, os.Stdout, save); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
