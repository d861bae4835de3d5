package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"huffman_codec_go/internal/model"
	"huffman_codec_go/internal/notify"
	"huffman_codec_go/internal/repo"
	"huffman_codec_go/pkg/huffman"
	"huffman_codec_go/pkg/huffpack"
	"huffman_codec_go/pkg/logger"
)

var (
	ErrEmptyText          = errors.New("text is required")
	ErrDecodeBeforeEncode = errors.New("please encode the text first")
)

type SessionService struct {
	sessions  repo.SessionRepo
	artifacts repo.ArtifactRepo
	notifier  notify.Notifier
	logger    logger.Logger

	// guards the Encoded field of every session
	mu sync.Mutex
}

func NewSessionService(s repo.SessionRepo, a repo.ArtifactRepo, n notify.Notifier, l logger.Logger) *SessionService {
	return &SessionService{sessions: s, artifacts: a, notifier: n, logger: l}
}

// Create tabulates text and builds its code tree and code table.
func (s *SessionService) Create(name, text string) (*model.Session, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	codec, err := huffman.NewCodec(text)
	if err != nil {
		return nil, err
	}
	sess := &model.Session{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Text:      text,
		Codec:     codec,
	}
	if err := s.sessions.Save(sess); err != nil {
		return nil, err
	}
	s.logger.Infof("session created: %s (%q, %d chars, %d distinct)",
		sess.ID, name, codec.Frequencies().Total(), codec.Frequencies().Len())
	return sess, nil
}

func (s *SessionService) GetByID(id string) (*model.Session, error) {
	return s.sessions.FindByID(id)
}

func (s *SessionService) List() ([]*model.Session, error) {
	return s.sessions.List()
}

func (s *SessionService) Delete(id string) error {
	if err := s.sessions.Delete(id); err != nil {
		return err
	}
	s.logger.Infof("session deleted: %s", id)
	return nil
}

// Encode packs the session text and persists the result. Once a session is
// encoded further calls return the stored artifact without encoding again.
func (s *SessionService) Encode(ctx context.Context, id string) (*model.Artifact, error) {
	sess, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.Encoded.Len() > 0 {
		a, err := s.artifacts.FindBySession(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return newArtifact(sess, sess.Encoded), nil
		}
		return a, err
	}

	bits, err := sess.Codec.Encode(sess.Text)
	if err != nil {
		s.logger.Errorf("encode %s: %v", id, err)
		return nil, err
	}
	a := newArtifact(sess, bits)
	if err := s.artifacts.Save(ctx, a); err != nil {
		s.logger.Errorf("store artifact %s: %v", id, err)
		return nil, fmt.Errorf("store artifact: %w", err)
	}
	sess.Encoded = bits
	s.logger.Infof("session encoded: %s (%d bits, %d bytes)", id, bits.Len(), len(a.Packed))

	s.publish(ctx, notify.Event{
		Kind:        notify.KindEncoded,
		SessionID:   id,
		Name:        sess.Name,
		BitCount:    a.BitCount,
		PackedBytes: len(a.Packed),
		Checksum:    a.Checksum,
	})
	return a, nil
}

func newArtifact(sess *model.Session, bits huffman.Bits) *model.Artifact {
	packed := bits.Bytes()
	return &model.Artifact{
		SessionID: sess.ID,
		Name:      sess.Name,
		Packed:    packed,
		BitCount:  bits.Len(),
		Checksum:  xxhash.Sum64(packed),
		CreatedAt: time.Now().UTC(),
	}
}

// IsEncoded reports whether sess has been encoded.
func (s *SessionService) IsEncoded(sess *model.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sess.Encoded.Len() > 0
}

// Encoded returns the session's bit stream, or ErrDecodeBeforeEncode.
func (s *SessionService) Encoded(id string) (*model.Session, huffman.Bits, error) {
	sess, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, huffman.Bits{}, err
	}
	s.mu.Lock()
	bits := sess.Encoded
	s.mu.Unlock()
	if bits.Len() == 0 {
		return nil, huffman.Bits{}, ErrDecodeBeforeEncode
	}
	return sess, bits, nil
}

// Decode resolves bits against the session's tree. With bits nil the session's
// own encoded stream is decoded. Either way the session must have been encoded.
func (s *SessionService) Decode(ctx context.Context, id string, bits *huffman.Bits) (string, error) {
	sess, encoded, err := s.Encoded(id)
	if err != nil {
		return "", err
	}
	in := encoded
	if bits != nil {
		in = *bits
	}
	text, err := sess.Codec.Decode(in)
	if err != nil {
		s.logger.Errorf("decode %s: %v", id, err)
		return "", err
	}
	s.publish(ctx, notify.Event{
		Kind:      notify.KindDecoded,
		SessionID: id,
		Name:      sess.Name,
		BitCount:  in.Len(),
	})
	return text, nil
}

// Archive returns the encoded session as a self-describing huffpack container.
func (s *SessionService) Archive(id string) ([]byte, error) {
	sess, bits, err := s.Encoded(id)
	if err != nil {
		return nil, err
	}
	return huffpack.Pack(sess.Codec.Frequencies(), bits), nil
}

func (s *SessionService) publish(ctx context.Context, ev notify.Event) {
	if err := s.notifier.Notify(ctx, ev); err != nil {
		s.logger.Errorf("notify %s %s: %v", ev.Kind, ev.SessionID, err)
	}
}
