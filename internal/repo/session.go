package repo

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"huffman_codec_go/internal/model"
)

var ErrNotFound = errors.New("not found")

// SessionRepo keeps live sessions.
type SessionRepo interface {
	Save(s *model.Session) error
	FindByID(id string) (*model.Session, error)
	List() ([]*model.Session, error)
	Delete(id string) error
}

type sessionRepoLRU struct {
	cache *lru.Cache[string, *model.Session]
}

// NewSessionRepoLRU holds at most size sessions. When a new session pushes the
// repo over its bound, the least recently used one is dropped and onEvict, if
// set, is told its id.
func NewSessionRepoLRU(size int, onEvict func(id string)) (SessionRepo, error) {
	var evicted func(string, *model.Session)
	if onEvict != nil {
		evicted = func(id string, _ *model.Session) { onEvict(id) }
	}
	c, err := lru.NewWithEvict[string, *model.Session](size, evicted)
	if err != nil {
		return nil, err
	}
	return &sessionRepoLRU{cache: c}, nil
}

func (r *sessionRepoLRU) Save(s *model.Session) error {
	r.cache.Add(s.ID, s)
	return nil
}

func (r *sessionRepoLRU) FindByID(id string) (*model.Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// List returns sessions from least to most recently used.
func (r *sessionRepoLRU) List() ([]*model.Session, error) {
	return r.cache.Values(), nil
}

func (r *sessionRepoLRU) Delete(id string) error {
	if !r.cache.Remove(id) {
		return ErrNotFound
	}
	return nil
}
