// Package progress tracks per-pattern practice progress: the best catch count,
// whether the pattern is completed, and when it was first completed.
//
// A catch count written for a repeating pattern applies to its whole family
// (every repetition of the same base), so progress on "D" and "DDD" is shared.
// The store writes a full snapshot through its Gateway after every mutation.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/papapumpkin/jugglelog/internal/pattern"
	"github.com/papapumpkin/jugglelog/internal/telemetry"
)

// CompletionThreshold is the catch count at which a pattern counts as completed.
const CompletionThreshold = 100

var (
	// ErrEmptyPattern is returned when a mutation names an empty pattern.
	ErrEmptyPattern = errors.New("progress: empty pattern")
	// ErrInvalidSnapshot is returned by Import and Reload for data that is not
	// a complete progress snapshot.
	ErrInvalidSnapshot = errors.New("progress: invalid snapshot")
	// ErrNegativeCatches is returned when a catch count below zero is recorded.
	ErrNegativeCatches = errors.New("progress: negative catch count")
)

// EventSink receives a telemetry event for every store mutation.
// *telemetry.Emitter satisfies it, including a nil one.
type EventSink interface {
	Emit(evt telemetry.Event) error
}

// Options configures a Store. The zero value is usable.
type Options struct {
	Logger *zap.Logger
	Events EventSink
	// Now supplies the current time for completion dates. Defaults to time.Now.
	Now func() time.Time
	// SessionID tags emitted events.
	SessionID string
}

// Record is the progress of a single pattern.
type Record struct {
	MaxCatches     int
	Completed      bool
	CompletionDate time.Time
	HasDate        bool
}

// Store owns progress state. It is safe for concurrent use; every read and
// mutation holds one mutex, and a mutation is published only after its
// snapshot has been saved.
type Store struct {
	mu      sync.Mutex
	gw      Gateway
	st      state
	logger  *zap.Logger
	events  EventSink
	now     func() time.Time
	session string
}

// New loads the store from gw. A missing or unreadable snapshot yields an
// empty store; only a failing gateway read is an error.
func New(ctx context.Context, gw Gateway, opts Options) (*Store, error) {
	s := &Store{
		gw:      gw,
		logger:  opts.Logger,
		events:  opts.Events,
		now:     opts.Now,
		session: opts.SessionID,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	st, found, err := s.read(ctx)
	switch {
	case errors.Is(err, ErrInvalidSnapshot):
		s.logger.Warn("stored progress is unreadable; starting empty", zap.Error(err))
		st = emptyState()
	case err != nil:
		return nil, err
	case !found:
		st = emptyState()
	}
	s.st = st
	return s, nil
}

// read fetches and decodes the stored snapshot. Undecodable data is reported
// as ErrInvalidSnapshot; unparseable dates are dropped.
func (s *Store) read(ctx context.Context) (state, bool, error) {
	data, ok, err := s.gw.Load(ctx)
	if err != nil {
		return state{}, false, fmt.Errorf("progress: load: %w", err)
	}
	if !ok {
		return state{}, false, nil
	}
	snap, err := decodeSnapshot(data)
	if err != nil {
		return state{}, true, err
	}
	st, bad := fromSnapshot(snap)
	if len(bad) > 0 {
		s.logger.Warn("dropped unparseable completion dates", zap.Strings("patterns", bad))
	}
	st.normalize(s.today())
	return st, true, nil
}

func (s *Store) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// commit saves next and, on success, makes it the current state.
// Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next state) error {
	data, err := next.encode()
	if err != nil {
		return err
	}
	if err := s.gw.Save(ctx, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	s.st = next
	return nil
}

func (s *Store) emit(kind, key string, data any) {
	if s.events == nil {
		return
	}
	evt := telemetry.Event{
		Timestamp: s.now(),
		Kind:      kind,
		SessionID: s.session,
		Pattern:   key,
		Data:      data,
	}
	if err := s.events.Emit(evt); err != nil {
		s.logger.Warn("telemetry emit failed", zap.String("kind", kind), zap.Error(err))
	}
}

// SetMaxCatches records catches for p and for every other member of its
// family, since patterns sharing a base share progress. Catches are clamped to
// CompletionThreshold; a negative count is rejected with ErrNegativeCatches.
//
// Reaching the threshold marks a pattern completed and dates it unless it
// already has a date. Dropping below the threshold un-completes it but keeps
// the date; only a count of 0 clears the date. It returns the keys written.
// If the snapshot cannot be saved, the store is left unchanged.
func (s *Store) SetMaxCatches(ctx context.Context, p pattern.Pattern, catches int) ([]string, error) {
	if p.String() == "" {
		return nil, ErrEmptyPattern
	}
	if catches < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCatches, catches)
	}
	if catches > CompletionThreshold {
		s.logger.Debug("clamped catch count", zap.Int("from", catches), zap.Int("to", CompletionThreshold))
		catches = CompletionThreshold
	}

	targets := familyOf(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	key0 := p.String()
	previous := s.st.catches[key0]
	wasCompleted := s.st.isCompleted(key0)
	next := s.st.clone()
	today := s.today()
	keys := make([]string, 0, len(targets))
	for _, t := range targets {
		key := t.String()
		keys = append(keys, key)
		next.catches[key] = catches
		if catches >= CompletionThreshold {
			next.markCompleted(key)
			if _, ok := next.dates[key]; !ok {
				next.dates[key] = today
			}
			continue
		}
		next.unmarkCompleted(key)
		if catches == 0 {
			delete(next.dates, key)
		}
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.emit(telemetry.KindCatchesSet, key0, CatchesSet{
		Length:         p.Len(),
		Previous:       previous,
		Catches:        catches,
		Family:         keys,
		NewlyCompleted: !wasCompleted && catches >= CompletionThreshold,
		CompletedCount: len(next.completed),
	})
	return keys, nil
}

// familyOf returns the patterns a write to p reaches: its family, plus p
// itself when it repeats its base more than pattern.MaxRepeat times.
func familyOf(p pattern.Pattern) []pattern.Pattern {
	targets := pattern.Related(p)
	for _, t := range targets {
		if t.Equal(p) {
			return targets
		}
	}
	return append(targets, p)
}

// MaxCatches returns the recorded catch count for p, or 0.
func (s *Store) MaxCatches(p pattern.Pattern) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.catches[p.String()]
}

// IsCompleted reports whether p has reached CompletionThreshold.
func (s *Store) IsCompleted(p pattern.Pattern) bool {
	return s.MaxCatches(p) >= CompletionThreshold
}

// CompletionDate returns the date p was first completed, if one is recorded.
func (s *Store) CompletionDate(p pattern.Pattern) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.st.dates[p.String()]
	return d, ok
}

// Record returns all progress for p in one read.
func (s *Store) Record(p pattern.Pattern) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := p.String()
	c := s.st.catches[key]
	d, ok := s.st.dates[key]
	return Record{MaxCatches: c, Completed: c >= CompletionThreshold, CompletionDate: d, HasDate: ok}
}

// CompletedPatterns returns the keys of completed patterns in the order they
// were first completed.
func (s *Store) CompletedPatterns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.st.completed...)
}

// Len returns the number of patterns with a recorded catch count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.catches)
}

// Snapshot returns a copy of the persisted form of the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.snapshot()
}

// Reset clears all progress and saves the empty state immediately.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, emptyState()); err != nil {
		return err
	}
	s.emit(telemetry.KindProgressReset, "", nil)
	return nil
}

// Reload replaces the in-memory state with what the gateway currently holds.
// If the stored snapshot is missing or unreadable, the current state is kept
// and, for unreadable data, an error wrapping ErrInvalidSnapshot is returned.
func (s *Store) Reload(ctx context.Context) error {
	st, found, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("reload skipped; keeping current progress", zap.Error(err))
		return err
	}
	if !found {
		s.logger.Warn("reload skipped; stored progress is missing")
		return nil
	}
	s.mu.Lock()
	s.st = st
	n := len(st.catches)
	s.mu.Unlock()
	s.emit(telemetry.KindProgressReloaded, "", map[string]int{"patterns": n})
	return nil
}
