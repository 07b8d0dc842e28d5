// Package view joins generated patterns with recorded progress into sortable
// display rows. It only reads progress.
package view

import (
	"sort"
	"time"

	"github.com/papapumpkin/jugglelog/internal/pattern"
	"github.com/papapumpkin/jugglelog/internal/progress"
)

// SortKey selects the column rows are ordered by.
type SortKey int

const (
	SortByPattern SortKey = iota
	SortByCatches
	SortByDate
)

// String returns the column name.
func (k SortKey) String() string {
	switch k {
	case SortByPattern:
		return "pattern"
	case SortByCatches:
		return "catches"
	case SortByDate:
		return "date"
	default:
		return "unknown"
	}
}

// ParseSortKey maps a column name back to its SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range []SortKey{SortByPattern, SortByCatches, SortByDate} {
		if k.String() == s {
			return k, true
		}
	}
	return SortByPattern, false
}

// Sort is the current ordering. The zero value sorts by pattern, ascending.
type Sort struct {
	Key        SortKey
	Descending bool
}

// Toggle returns the ordering after the user picks key: the same key flips
// direction, a new key starts ascending.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key {
		return Sort{Key: key, Descending: !s.Descending}
	}
	return Sort{Key: key}
}

// Reader is the read side of the progress store.
type Reader interface {
	Record(p pattern.Pattern) progress.Record
}

// Row is one display line.
type Row struct {
	Pattern        pattern.Pattern
	Key            string
	MaxCatches     int
	Completed      bool
	CompletionDate time.Time
	HasDate        bool
}

// Project builds rows for patterns from the progress in r and orders them
// by s. Rows without a date sort after dated rows in either direction; ties
// fall back to the pattern key.
func Project(patterns []pattern.Pattern, r Reader, s Sort) []Row {
	rows := make([]Row, len(patterns))
	for i, p := range patterns {
		rec := r.Record(p)
		rows[i] = Row{
			Pattern:        p,
			Key:            p.String(),
			MaxCatches:     rec.MaxCatches,
			Completed:      rec.Completed,
			CompletionDate: rec.CompletionDate,
			HasDate:        rec.HasDate,
		}
	}
	SortRows(rows, s)
	return rows
}

// SortRows stably orders rows in place.
func SortRows(rows []Row, s Sort) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if s.Key == SortByDate && a.HasDate != b.HasDate {
			return a.HasDate
		}
		c := compare(a, b, s.Key)
		if s.Descending {
			c = -c
		}
		return c < 0
	})
}

func compare(a, b Row, key SortKey) int {
	c := 0
	switch key {
	case SortByCatches:
		c = a.MaxCatches - b.MaxCatches
	case SortByDate:
		c = a.CompletionDate.Compare(b.CompletionDate)
	}
	if c != 0 {
		return c
	}
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}
