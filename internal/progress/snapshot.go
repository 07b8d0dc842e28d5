package progress

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DateLayout formats completion dates as M-D-YYYY without zero padding.
const DateLayout = "1-2-2006"

// Snapshot is the persisted form of the store.
type Snapshot struct {
	CompletedPatterns []string          `json:"completedPatterns"`
	MaxCatches        map[string]int    `json:"maxCatches"`
	CompletionDates   map[string]string `json:"completionDates"`
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// state is the in-memory truth behind a Store.
type state struct {
	catches   map[string]int
	dates     map[string]time.Time
	completed []string
}

func emptyState() state {
	return state{
		catches: make(map[string]int),
		dates:   make(map[string]time.Time),
	}
}

func (s state) clone() state {
	c := state{
		catches:   make(map[string]int, len(s.catches)),
		dates:     make(map[string]time.Time, len(s.dates)),
		completed: append([]string(nil), s.completed...),
	}
	for k, v := range s.catches {
		c.catches[k] = v
	}
	for k, v := range s.dates {
		c.dates[k] = v
	}
	return c
}

func (s state) isCompleted(key string) bool {
	for _, k := range s.completed {
		if k == key {
			return true
		}
	}
	return false
}

func (s *state) markCompleted(key string) {
	if !s.isCompleted(key) {
		s.completed = append(s.completed, key)
	}
}

func (s *state) unmarkCompleted(key string) {
	out := s.completed[:0]
	for _, k := range s.completed {
		if k != key {
			out = append(out, k)
		}
	}
	s.completed = out
}

// normalize makes the completed list agree with the catch counts and gives
// every completed pattern a date. Keys missing from the list are appended in
// sorted order so the result is deterministic.
func (s *state) normalize(today time.Time) {
	kept := s.completed[:0]
	seen := make(map[string]bool)
	for _, k := range s.completed {
		if s.catches[k] >= CompletionThreshold && !seen[k] {
			kept = append(kept, k)
			seen[k] = true
		}
	}
	var missing []string
	for k, v := range s.catches {
		if v >= CompletionThreshold && !seen[k] {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	s.completed = append(kept, missing...)

	for _, k := range s.completed {
		if _, ok := s.dates[k]; !ok {
			s.dates[k] = today
		}
	}
}

func (s state) snapshot() Snapshot {
	snap := Snapshot{
		CompletedPatterns: append([]string{}, s.completed...),
		MaxCatches:        make(map[string]int, len(s.catches)),
		CompletionDates:   make(map[string]string, len(s.dates)),
	}
	for k, v := range s.catches {
		snap.MaxCatches[k] = v
	}
	for k, v := range s.dates {
		snap.CompletionDates[k] = FormatDate(v)
	}
	return snap
}

func (s state) encode() ([]byte, error) {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		return nil, fmt.Errorf("progress: encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses a persisted blob. It fails with ErrInvalidSnapshot
// unless all three fields are present.
func decodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.CompletedPatterns == nil || snap.MaxCatches == nil || snap.CompletionDates == nil {
		return Snapshot{}, fmt.Errorf("%w: missing field", ErrInvalidSnapshot)
	}
	return snap, nil
}

// fromSnapshot converts a decoded snapshot into state. Date entries that do
// not parse are returned as badDates and left out.
func fromSnapshot(snap Snapshot) (st state, badDates []string) {
	st = emptyState()
	for k, v := range snap.MaxCatches {
		if k == "" {
			continue
		}
		st.catches[k] = clamp(v)
	}
	for k, v := range snap.CompletionDates {
		d, err := ParseDate(v)
		if err != nil {
			badDates = append(badDates, k)
			continue
		}
		st.dates[k] = d
	}
	st.completed = append([]string(nil), snap.CompletedPatterns...)
	sort.Strings(badDates)
	return st, badDates
}
