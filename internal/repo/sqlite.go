package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"huffman_codec_go/internal/model"
)

type artifactRepoSQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the artifact table in the SQLite file at path.
func OpenSQLite(ctx context.Context, path string) (ArtifactRepo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS
			artifacts
		(
			session_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			bit_count INTEGER NOT NULL,
			checksum INTEGER NOT NULL,
			content BLOB,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &artifactRepoSQLite{db: db}, nil
}

func (r *artifactRepoSQLite) Save(ctx context.Context, a *model.Artifact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO
			artifacts
				(
					session_id, name, bit_count, checksum, content, created_at
				)
		VALUES
				(?, ?, ?, ?, ?, ?)
	`, a.SessionID, a.Name, a.BitCount, int64(a.Checksum), a.Packed, a.CreatedAt.Format(time.RFC3339Nano))
	return err
}

func (r *artifactRepoSQLite) FindBySession(ctx context.Context, sessionID string) (*model.Artifact, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT
		session_id,
		name,
		bit_count,
		checksum,
		content,
		created_at
	FROM
		artifacts
	WHERE
		session_id = ?`, sessionID)

	var a model.Artifact
	var checksum int64
	var createdAt string
	err := row.Scan(&a.SessionID, &a.Name, &a.BitCount, &checksum, &a.Packed, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Checksum = uint64(checksum)
	a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	return &a, nil
}

func (r *artifactRepoSQLite) Close() error { return r.db.Close() }
