// Command job compresses one text file: it writes the raw packed stream to
// Compressed_<name>, a self-describing <name>.huffpack next to it, and records
// the artifact in the configured store.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"huffman_codec_go/internal/app"
	"huffman_codec_go/internal/config"
	"huffman_codec_go/pkg/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: job <file>")
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(path string) error {
	ctx := context.Background()
	cfg := config.Load()
	logg := logger.New()

	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	a, err := app.New(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer a.Close()

	name := filepath.Base(path)
	s, err := a.Sessions.Create(name, string(text))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	art, err := a.Sessions.Encode(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutDir, "Compressed_"+name), art.Packed, 0o644); err != nil {
		return err
	}
	container, err := a.Sessions.Archive(s.ID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(cfg.OutDir, name+".huffpack"), container, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d chars -> %d bits (%d bytes)\n", name, s.Codec.Frequencies().Total(), art.BitCount, len(art.Packed))
	return nil
}
