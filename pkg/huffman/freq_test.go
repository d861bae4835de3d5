package huffman

import (
	"errors"
	"testing"
)

func TestTabulate(t *testing.T) {
	ft := Tabulate("aaabbc")
	want := []Frequency{{'a', 3}, {'b', 2}, {'c', 1}}
	got := ft.Entries()
	if len(got) != len(want) {
		t.Fatalf("Tabulate returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
	if ft.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", ft.Total())
	}
	if _, ok := ft.Count('z'); ok {
		t.Fatalf("Count('z') reported presence")
	}
}

func TestTabulateFirstOccurrenceOrder(t *testing.T) {
	ft := Tabulate("cabbac")
	order := ""
	for _, e := range ft.Entries() {
		order += string(e.Char)
	}
	if order != "cab" {
		t.Fatalf("entry order = %q, want %q", order, "cab")
	}
}

func TestTabulateRunes(t *testing.T) {
	ft := Tabulate("héé€")
	if ft.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ft.Len())
	}
	if n, _ := ft.Count('é'); n != 2 {
		t.Fatalf("Count('é') = %d, want 2", n)
	}
}

func TestNewFrequencyTable(t *testing.T) {
	if _, err := NewFrequencyTable([]Frequency{{'a', 1}, {'a', 2}}); err == nil {
		t.Fatalf("duplicate entries accepted")
	}
	if _, err := NewFrequencyTable([]Frequency{{'a', 0}}); err == nil {
		t.Fatalf("zero count accepted")
	}
	ft, err := NewFrequencyTable([]Frequency{{'x', 4}, {'y', 1}})
	if err != nil {
		t.Fatal(err)
	}
	if ft.Total() != 5 {
		t.Fatalf("Total() = %d, want 5", ft.Total())
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if _, err := BuildTree(Tabulate("")); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("BuildTree(empty) err = %v, want ErrEmptyInput", err)
	}
	if _, err := NewCodec(""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("NewCodec(\"\") err = %v, want ErrEmptyInput", err)
	}
}
