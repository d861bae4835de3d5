package repo

import (
	"context"
	"sync"

	"huffman_codec_go/internal/model"
)

// ArtifactRepo persists the packed output of encoded sessions.
type ArtifactRepo interface {
	Save(ctx context.Context, a *model.Artifact) error
	FindBySession(ctx context.Context, sessionID string) (*model.Artifact, error)
	Close() error
}

type artifactRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Artifact
}

func NewArtifactRepoInMemory() ArtifactRepo {
	return &artifactRepoInMemory{store: make(map[string]*model.Artifact)}
}

func (r *artifactRepoInMemory) Save(_ context.Context, a *model.Artifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	cp.Packed = append([]byte(nil), a.Packed...)
	r.store[a.SessionID] = &cp
	return nil
}

func (r *artifactRepoInMemory) FindBySession(_ context.Context, sessionID string) (*model.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.store[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *artifactRepoInMemory) Close() error { return nil }
