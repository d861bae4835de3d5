package huffman

import "fmt"

// Frequency is one row of a FrequencyTable.
type Frequency struct {
	Char  rune
	Count int
}

// FrequencyTable maps each distinct character of a text to its number of
// occurrences. Entries keep the order in which characters first appeared; the
// tree builder uses that order to break ties.
type FrequencyTable struct {
	entries []Frequency
	index   map[rune]int
}

// Tabulate counts the characters of text in a single pass.
func Tabulate(text string) *FrequencyTable {
	ft := &FrequencyTable{index: make(map[rune]int)}
	for _, r := range text {
		if i, ok := ft.index[r]; ok {
			ft.entries[i].Count++
			continue
		}
		ft.index[r] = len(ft.entries)
		ft.entries = append(ft.entries, Frequency{Char: r, Count: 1})
	}
	return ft
}

// NewFrequencyTable builds a table from explicit entries, e.g. ones read back
// from a container. Order is preserved.
func NewFrequencyTable(entries []Frequency) (*FrequencyTable, error) {
	ft := &FrequencyTable{
		entries: make([]Frequency, 0, len(entries)),
		index:   make(map[rune]int, len(entries)),
	}
	for _, e := range entries {
		if e.Count <= 0 {
			return nil, fmt.Errorf("frequency of %q must be positive, got %d", e.Char, e.Count)
		}
		if _, dup := ft.index[e.Char]; dup {
			return nil, fmt.Errorf("duplicate frequency entry for %q", e.Char)
		}
		ft.index[e.Char] = len(ft.entries)
		ft.entries = append(ft.entries, e)
	}
	return ft, nil
}

func (ft *FrequencyTable) Len() int { return len(ft.entries) }

// Count reports how often r occurs, and whether it occurs at all.
func (ft *FrequencyTable) Count(r rune) (int, bool) {
	i, ok := ft.index[r]
	if !ok {
		return 0, false
	}
	return ft.entries[i].Count, true
}

// Entries returns a copy of the rows in first-occurrence order.
func (ft *FrequencyTable) Entries() []Frequency {
	out := make([]Frequency, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Total is the sum of all counts, i.e. the length of the text in characters.
func (ft *FrequencyTable) Total() int {
	n := 0
	for _, e := range ft.entries {
		n += e.Count
	}
	return n
}
