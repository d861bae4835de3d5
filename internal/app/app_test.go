package app

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"huffman_codec_go/internal/config"
	"huffman_codec_go/pkg/huffpack"
	"huffman_codec_go/pkg/logger"
)

func TestOpenArtifactRepo(t *testing.T) {
	ctx := context.Background()
	if _, err := OpenArtifactRepo(ctx, config.Config{Store: "tape"}); err == nil {
		t.Fatalf("unknown store accepted")
	}
	if _, err := OpenArtifactRepo(ctx, config.Config{Store: config.StorePostgres}); err == nil {
		t.Fatalf("postgres without dsn accepted")
	}
}

func TestNewSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Store:        config.StoreSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "h.db"),
		SessionCache: 2,
	}
	a, err := New(ctx, cfg, logger.NewWriter(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	s, err := a.Sessions.Create("x.txt", "abracadabra")
	if err != nil {
		t.Fatal(err)
	}
	art, err := a.Sessions.Encode(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	stored, err := a.artifacts.FindBySession(ctx, s.ID)
	if err != nil || stored.Checksum != art.Checksum {
		t.Fatalf("stored = %+v, %v", stored, err)
	}
	b, _ := a.Sessions.Archive(s.ID)
	if text, err := huffpack.UnpackBytes(b); err != nil || text != "abracadabra" {
		t.Fatalf("archive = %q, %v", text, err)
	}
}
