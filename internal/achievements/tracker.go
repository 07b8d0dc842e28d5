package achievements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/papapumpkin/jugglelog/internal/progress"
	"github.com/papapumpkin/jugglelog/internal/telemetry"
)

// StorageKey is the blob key achievement state is persisted under, next to
// progress.StorageKey.
const StorageKey = "juggleLogAchievements"

// ErrInvalidState is returned for stored achievement data that cannot be decoded.
var ErrInvalidState = errors.New("achievements: invalid state")

// NoticeKind tells what a Notice announces.
type NoticeKind int

const (
	NoticeEarned  NoticeKind = iota // an achievement was unlocked
	NoticeLevelUp                   // total experience crossed into a new level
)

// Notice announces an achievement earned or a level reached since the last Drain.
type Notice struct {
	Kind        NoticeKind
	Achievement Achievement
	Level       int
}

// String renders the notice as a one-line announcement.
func (n Notice) String() string {
	if n.Kind == NoticeLevelUp {
		return fmt.Sprintf("level up: now level %d", n.Level)
	}
	return fmt.Sprintf("achievement unlocked: %s (+%d XP)", n.Achievement.Name, n.Achievement.Reward)
}

// Summary is the headline of a player's standing.
type Summary struct {
	Level   int
	TotalXP int
	// LevelXP is the experience gained since the current level started, out
	// of LevelSpan needed to reach the next one.
	LevelXP   int
	LevelSpan int
	Streak    int
	Earned    int
	Available int
}

// Status is an achievement with the player's progress toward it.
type Status struct {
	Achievement
	Progress int
	Earned   bool
	EarnedOn time.Time
}

type state struct {
	TotalXP  int               `json:"totalXP"`
	Progress map[string]int    `json:"progress"`
	Earned   map[string]string `json:"earned"`
	// Mastered lists patterns already paid mastery XP, so completing one
	// again after a regression pays nothing.
	Mastered     []string `json:"mastered"`
	Streak       int      `json:"streak"`
	LastPractice string   `json:"lastPractice,omitempty"`
}

func emptyState() state {
	return state{Progress: map[string]int{}, Earned: map[string]string{}}
}

func (s state) clone() state {
	c := s
	c.Progress = make(map[string]int, len(s.Progress))
	for k, v := range s.Progress {
		c.Progress[k] = v
	}
	c.Earned = make(map[string]string, len(s.Earned))
	for k, v := range s.Earned {
		c.Earned[k] = v
	}
	c.Mastered = slices.Clone(s.Mastered)
	return c
}

// Tracker awards experience and achievements from progress events and keeps
// them in a Gateway. It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	gw      progress.Gateway
	st      state
	pending []Notice
	logger  *zap.Logger
}

// Open loads tracker state from gw. Unreadable state starts over empty;
// only a failing read is an error.
func Open(ctx context.Context, gw progress.Gateway, logger *zap.Logger) (*Tracker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{gw: gw, logger: logger, st: emptyState()}

	data, ok, err := gw.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("achievements: load: %w", err)
	}
	if !ok {
		return t, nil
	}
	st, err := decode(data)
	if err != nil {
		logger.Warn("stored achievements are unreadable; starting empty", zap.Error(err))
		return t, nil
	}
	t.st = st
	return t, nil
}

func decode(data []byte) (state, error) {
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return state{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if st.Progress == nil {
		st.Progress = map[string]int{}
	}
	if st.Earned == nil {
		st.Earned = map[string]string{}
	}
	return st, nil
}

// commit saves next and makes it current. Callers hold t.mu.
func (t *Tracker) commit(ctx context.Context, next state) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("achievements: encode: %w", err)
	}
	if err := t.gw.Save(ctx, data); err != nil {
		return fmt.Errorf("achievements: save: %w", err)
	}
	t.st = next
	return nil
}

// Emit consumes a progress event. Catch counts earn experience and move
// achievements forward; an import only moves achievements. Other kinds are
// ignored, and a progress reset keeps everything already earned.
func (t *Tracker) Emit(evt telemetry.Event) error {
	switch evt.Kind {
	case telemetry.KindCatchesSet:
		data, ok := evt.Data.(progress.CatchesSet)
		if !ok {
			t.logger.Debug("catches_set event without payload", zap.String("pattern", evt.Pattern))
			return nil
		}
		return t.recordCatches(evt.Timestamp, evt.Pattern, data)
	case telemetry.KindProgressImported:
		data, ok := evt.Data.(progress.Imported)
		if !ok {
			return nil
		}
		return t.apply(evt.Timestamp, func(next *state, day time.Time) {
			t.advance(next, day, map[Category]int{
				CategoryMastery:   data.Completed,
				CategoryMilestone: data.Best,
			})
		})
	}
	return nil
}

func (t *Tracker) recordCatches(at time.Time, key string, data progress.CatchesSet) error {
	return t.apply(at, func(next *state, day time.Time) {
		if data.Catches > 0 {
			practice(next, day)
		}
		gained := ImprovementXP(data.Catches - data.Previous)
		if data.NewlyCompleted && !slices.Contains(next.Mastered, key) {
			gained += MasteryXP(data.Length, data.Catches)
			next.Mastered = append(next.Mastered, key)
		}
		next.TotalXP += WithStreakBonus(gained, next.Streak)
		t.advance(next, day, map[Category]int{
			CategoryMastery:     data.CompletedCount,
			CategoryConsistency: next.Streak,
			CategoryMilestone:   data.Catches,
		})
	})
}

// apply runs change on a copy of the state and commits it. Notices queued
// during change are kept only if the commit succeeds.
func (t *Tracker) apply(at time.Time, change func(next *state, day time.Time)) error {
	if at.IsZero() {
		at = time.Now()
	}
	y, m, d := at.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, at.Location())

	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.st.clone()
	queued := len(t.pending)
	change(&next, day)
	if before, after := LevelForXP(t.st.TotalXP), LevelForXP(next.TotalXP); after > before {
		t.pending = append(t.pending, Notice{Kind: NoticeLevelUp, Level: after})
	}
	if err := t.commit(context.Background(), next); err != nil {
		t.pending = t.pending[:queued]
		return err
	}
	return nil
}

// practice counts day toward the streak.
func practice(st *state, day time.Time) {
	today := progress.FormatDate(day)
	if st.LastPractice == today {
		return
	}
	last, err := progress.ParseDate(st.LastPractice)
	if err == nil && progress.FormatDate(last.AddDate(0, 0, 1)) == today {
		st.Streak++
	} else {
		st.Streak = 1
	}
	st.LastPractice = today
}

// advance records the latest value per category and awards every achievement
// it now satisfies. Callers hold t.mu.
func (t *Tracker) advance(st *state, at time.Time, values map[Category]int) {
	for _, a := range Definitions() {
		v, ok := values[a.Category]
		if !ok {
			continue
		}
		if _, done := st.Earned[a.ID]; done {
			continue
		}
		if v > st.Progress[a.ID] {
			st.Progress[a.ID] = v
		}
		if v >= a.Required {
			st.Earned[a.ID] = progress.FormatDate(at)
			st.TotalXP += a.Reward
			t.pending = append(t.pending, Notice{Kind: NoticeEarned, Achievement: a})
			t.logger.Info("achievement earned", zap.String("id", a.ID), zap.Int("xp", a.Reward))
		}
	}
}

// Summary returns level, experience and streak.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	level := LevelForXP(t.st.TotalXP)
	start := XPForLevel(level)
	return Summary{
		Level:     level,
		TotalXP:   t.st.TotalXP,
		LevelXP:   t.st.TotalXP - start,
		LevelSpan: XPForLevel(level+1) - start,
		Streak:    t.st.Streak,
		Earned:    len(t.st.Earned),
		Available: len(Definitions()),
	}
}

// Statuses lists every achievement with progress, in Definitions order.
func (t *Tracker) Statuses() []Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	defs := Definitions()
	out := make([]Status, 0, len(defs))
	for _, a := range defs {
		s := Status{Achievement: a, Progress: min(t.st.Progress[a.ID], a.Required)}
		if date, ok := t.st.Earned[a.ID]; ok {
			s.Earned = true
			s.Progress = a.Required
			if d, err := progress.ParseDate(date); err == nil {
				s.EarnedOn = d
			}
		}
		out = append(out, s)
	}
	return out
}

// Drain returns the notices queued since the last call and clears them.
func (t *Tracker) Drain() []Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.pending
	t.pending = nil
	return out
}

// Reset clears experience, streak and achievements and saves immediately.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.commit(ctx, emptyState()); err != nil {
		return err
	}
	t.pending = nil
	return nil
}
