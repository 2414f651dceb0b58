package scaler

import (
	"cmp"
	"slices"
)

// Key identifies one scaler channel of one source.
type Key struct {
	SourceID uint32
	Index    uint32
}

// Entry is one channel total.
type Entry struct {
	Key
	Total uint64
}

// Totals maps channels to accumulated counts.
type Totals map[Key]uint64

// Merge adds every total of o into t.
func (t Totals) Merge(o Totals) {
	for k, v := range o {
		t[k] += v
	}
}

// Sum returns the total over every channel.
func (t Totals) Sum() uint64 {
	var s uint64
	for _, v := range t {
		s += v
	}

	return s
}

// Sorted returns the totals ordered by source id, then channel index.
func (t Totals) Sorted() []Entry {
	entries := make([]Entry, 0, len(t))
	for k, v := range t {
		entries = append(entries, Entry{Key: k, Total: v})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.SourceID, b.SourceID); c != 0 {
			return c
		}

		return cmp.Compare(a.Index, b.Index)
	})

	return entries
}
