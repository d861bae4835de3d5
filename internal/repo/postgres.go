package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffman_codec_go/internal/model"
)

// artifact writes are one row per encode, so a small pool is enough
const (
	pgMaxConns     = 4
	pgMinConns     = 0
	pgConnLifetime = 30 * time.Minute
)

const artifactsSchema = `
CREATE TABLE IF NOT EXISTS artifacts (
  session_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  bit_count INTEGER NOT NULL,
  checksum BIGINT NOT NULL,
  content BYTEA NOT NULL,
  created_at TIMESTAMPTZ NOT NULL
)`

type artifactRepoPostgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn and makes sure the artifact table exists.
func OpenPostgres(ctx context.Context, dsn string) (ArtifactRepo, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = pgMaxConns
	cfg.MinConns = pgMinConns
	cfg.MaxConnLifetime = pgConnLifetime
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	if _, err := pool.Exec(ctx, artifactsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &artifactRepoPostgres{pool: pool}, nil
}

func (r *artifactRepoPostgres) Save(ctx context.Context, a *model.Artifact) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO artifacts (session_id, name, bit_count, checksum, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (session_id) DO UPDATE
  SET name = EXCLUDED.name, bit_count = EXCLUDED.bit_count, checksum = EXCLUDED.checksum,
      content = EXCLUDED.content, created_at = EXCLUDED.created_at`,
		a.SessionID, a.Name, a.BitCount, int64(a.Checksum), a.Packed, a.CreatedAt)
	return err
}

func (r *artifactRepoPostgres) FindBySession(ctx context.Context, sessionID string) (*model.Artifact, error) {
	var a model.Artifact
	var checksum int64
	err := r.pool.QueryRow(ctx, `
SELECT session_id, name, bit_count, checksum, content, created_at
FROM artifacts WHERE session_id = $1`, sessionID).
		Scan(&a.SessionID, &a.Name, &a.BitCount, &checksum, &a.Packed, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Checksum = uint64(checksum)
	return &a, nil
}

func (r *artifactRepoPostgres) Close() error {
	r.pool.Close()
	return nil
}
