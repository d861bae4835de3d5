package repo

import (
	"errors"
	"testing"

	"huffman_codec_go/internal/model"
)

func TestSessionRepoLRU(t *testing.T) {
	var evicted []string
	r, err := NewSessionRepoLRU(2, func(id string) { evicted = append(evicted, id) })
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b"} {
		if err := r.Save(&model.Session{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	// touch a so that b is the least recently used
	if _, err := r.FindByID("a"); err != nil {
		t.Fatal(err)
	}
	r.Save(&model.Session{ID: "c"})

	if len(evicted) != 1 || evicted[0] != "b" {
		t.Fatalf("evicted = %v, want [b]", evicted)
	}
	if _, err := r.FindByID("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindByID(b) err = %v, want ErrNotFound", err)
	}
	list, _ := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d sessions, want 2", len(list))
	}

	if err := r.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestSessionRepoBadSize(t *testing.T) {
	if _, err := NewSessionRepoLRU(0, nil); err == nil {
		t.Fatalf("size 0 accepted")
	}
}
