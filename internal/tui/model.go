package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/jugglelog/internal/achievements"
	"github.com/papapumpkin/jugglelog/internal/catalog"
	"github.com/papapumpkin/jugglelog/internal/config"
	"github.com/papapumpkin/jugglelog/internal/pattern"
	"github.com/papapumpkin/jugglelog/internal/progress"
	"github.com/papapumpkin/jugglelog/internal/view"
	"github.com/papapumpkin/jugglelog/internal/watch"
)

// Focus selects which pane receives navigation keys.
type Focus int

const (
	// FocusPatterns sends keys to the pattern table.
	FocusPatterns Focus = iota
	// FocusSymbols sends keys to the symbol bar.
	FocusSymbols
)

// catchStep is the coarse catch increment.
const catchStep = 10

// maxMessages bounds the message history shown under the table.
const maxMessages = 3

// Store is the part of the progress store the TUI drives.
type Store interface {
	view.Reader
	SetMaxCatches(ctx context.Context, p pattern.Pattern, catches int) ([]string, error)
	Reset(ctx context.Context) error
	Reload(ctx context.Context) error
}

// Progression reports experience and newly earned achievements.
// *achievements.Tracker satisfies it.
type Progression interface {
	Summary() achievements.Summary
	Drain() []achievements.Notice
}

// Options configures a new AppModel.
type Options struct {
	Catalog  *catalog.Catalog
	Store    Store
	Selected []string
	Length   int
	Sort     view.Sort
	// Achievements, when set, puts the level in the status bar and announces
	// achievements as catch counts earn them.
	Achievements Progression
	// Changes delivers on-disk progress changes. Optional.
	Changes <-chan watch.Change
	Now     func() time.Time
}

// AppModel is the root BubbleTea model.
type AppModel struct {
	Catalog      *catalog.Catalog
	Store        Store
	Selected     map[string]bool
	Length       int
	Sort         view.Sort
	Rows         []view.Row
	Cursor       int
	SymbolCursor int
	Focus        Focus
	ConfirmReset bool
	Keys         KeyMap
	Width        int
	Height       int
	Messages     []string // recent info/error messages
	Achievements Progression

	changes <-chan watch.Change
	now     func() time.Time
}

// NewAppModel creates a root model and computes its initial rows.
func NewAppModel(opts Options) AppModel {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := AppModel{
		Catalog:  cat,
		Store:    opts.Store,
		Selected: make(map[string]bool),
		Length:   clampLength(opts.Length),
		Sort:     opts.Sort,
		Keys:     DefaultKeyMap(),
		Width:    80,
		Height:   24,
		changes:  opts.Changes,
		now:      now,

		Achievements: opts.Achievements,
	}
	for _, code := range opts.Selected {
		if _, ok := cat.Lookup(code); ok {
			m.Selected[code] = true
		}
	}
	m.refresh()
	return m
}

func clampLength(n int) int {
	return max(config.MinLength, min(n, config.MaxLength))
}

func clampCatches(n int) int {
	return max(0, min(n, progress.CompletionThreshold))
}

// SelectedCodes returns the selected symbols in catalog order.
func (m AppModel) SelectedCodes() []string {
	var out []string
	for _, code := range m.Catalog.Codes() {
		if m.Selected[code] {
			out = append(out, code)
		}
	}
	return out
}

// refresh regenerates the visible rows from the current selection and sort.
// The cursor stays on the same pattern when it is still listed.
func (m *AppModel) refresh() {
	var current string
	if m.Cursor >= 0 && m.Cursor < len(m.Rows) {
		current = m.Rows[m.Cursor].Key
	}
	m.Rows = nil
	if m.Store != nil {
		m.Rows = view.Project(pattern.Generate(m.SelectedCodes(), m.Length), m.Store, m.Sort)
	}
	m.Cursor = 0
	for i, r := range m.Rows {
		if r.Key == current {
			m.Cursor = i
			break
		}
	}
}

// Init subscribes to on-disk progress changes when a watcher is attached.
func (m AppModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgProgressChanged:
		if err := m.Store.Reload(context.Background()); err != nil {
			m.addMessage(styleError.Render("reload failed: " + err.Error()))
		} else {
			m.refresh()
		}
		return m, waitForChange(m.changes)

	case MsgInfo:
		m.addMessage(styleMessage.Render(msg.Msg))
		return m, nil

	case MsgError:
		m.addMessage(styleError.Render(msg.Msg))
		return m, nil
	}
	return m, nil
}

func (m *AppModel) addMessage(s string) {
	m.Messages = append(m.Messages, s)
	if len(m.Messages) > maxMessages {
		m.Messages = m.Messages[len(m.Messages)-maxMessages:]
	}
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ConfirmReset {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Focus):
		if m.Focus == FocusPatterns {
			m.Focus = FocusSymbols
		} else {
			m.Focus = FocusPatterns
		}
	case key.Matches(msg, m.Keys.Shorter):
		m.Length = clampLength(m.Length - 1)
		m.refresh()
	case key.Matches(msg, m.Keys.Longer):
		m.Length = clampLength(m.Length + 1)
		m.refresh()
	case key.Matches(msg, m.Keys.SortPattern):
		m.setSort(view.SortByPattern)
	case key.Matches(msg, m.Keys.SortCatches):
		m.setSort(view.SortByCatches)
	case key.Matches(msg, m.Keys.SortDate):
		m.setSort(view.SortByDate)
	case key.Matches(msg, m.Keys.Reset):
		m.ConfirmReset = true
	default:
		if m.Focus == FocusSymbols {
			m.handleSymbolKey(msg)
		} else {
			m.handlePatternKey(msg)
		}
	}
	return m, nil
}

func (m *AppModel) handleSymbolKey(msg tea.KeyMsg) {
	codes := m.Catalog.Codes()
	if len(codes) == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.Keys.Left), key.Matches(msg, m.Keys.Up):
		if m.SymbolCursor > 0 {
			m.SymbolCursor--
		}
	case key.Matches(msg, m.Keys.Right), key.Matches(msg, m.Keys.Down):
		if m.SymbolCursor < len(codes)-1 {
			m.SymbolCursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		code := codes[m.SymbolCursor]
		if m.Selected[code] {
			delete(m.Selected, code)
		} else {
			m.Selected[code] = true
		}
		m.refresh()
	}
}

func (m *AppModel) handlePatternKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.Rows)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Left):
		m.adjustCatches(-1)
	case key.Matches(msg, m.Keys.Right):
		m.adjustCatches(1)
	case key.Matches(msg, m.Keys.StepDown):
		m.adjustCatches(-catchStep)
	case key.Matches(msg, m.Keys.StepUp):
		m.adjustCatches(catchStep)
	case key.Matches(msg, m.Keys.Zero):
		m.setCatches(0)
	case key.Matches(msg, m.Keys.Complete):
		m.setCatches(progress.CompletionThreshold)
	}
}

func (m AppModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ConfirmReset = false
	if !key.Matches(msg, m.Keys.Confirm) {
		m.addMessage(styleMessage.Render("reset cancelled"))
		return m, nil
	}
	if err := m.Store.Reset(context.Background()); err != nil {
		m.addMessage(styleError.Render("reset failed: " + err.Error()))
		return m, nil
	}
	m.refresh()
	m.addMessage(styleMessage.Render("progress reset"))
	return m, nil
}

func (m *AppModel) setSort(k view.SortKey) {
	m.Sort = m.Sort.Toggle(k)
	m.refresh()
}

func (m *AppModel) adjustCatches(delta int) {
	if m.Cursor >= len(m.Rows) {
		return
	}
	m.setCatches(m.Rows[m.Cursor].MaxCatches + delta)
}

func (m *AppModel) setCatches(n int) {
	if m.Cursor >= len(m.Rows) {
		return
	}
	row := m.Rows[m.Cursor]
	n = clampCatches(n)
	if n == row.MaxCatches {
		return
	}
	written, err := m.Store.SetMaxCatches(context.Background(), row.Pattern, n)
	if err != nil {
		m.addMessage(styleError.Render(fmt.Sprintf("%s: %v", row.Key, err)))
		return
	}
	m.refresh()
	if len(written) > 1 {
		m.addMessage(styleMessage.Render(fmt.Sprintf("%s → %d (shared with %d related)", row.Key, n, len(written)-1)))
	}
	m.announce()
}

// announce shows achievements and level ups earned by the last change.
func (m *AppModel) announce() {
	if m.Achievements == nil {
		return
	}
	for _, n := range m.Achievements.Drain() {
		m.addMessage(styleNotice.Render("★ " + n.String()))
	}
}
