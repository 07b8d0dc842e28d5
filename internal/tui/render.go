package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/jugglelog/internal/progress"
)

// View renders the full TUI.
func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderSymbols())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	for _, msg := range m.Messages {
		b.WriteString("\n")
		b.WriteString(msg)
	}
	if m.ConfirmReset {
		b.WriteString("\n")
		b.WriteString(styleConfirm.Render("Reset all progress? (y/N)"))
	}
	b.WriteString("\n")
	b.WriteString(m.footer().View())
	return b.String()
}

func (m AppModel) footer() Footer {
	f := Footer{Width: m.Width}
	switch {
	case m.ConfirmReset:
		f.Bindings = ConfirmFooterBindings(m.Keys)
	case m.Focus == FocusSymbols:
		f.Bindings = SymbolFooterBindings(m.Keys)
	default:
		f.Bindings = PatternFooterBindings(m.Keys)
	}
	return f
}

func (m AppModel) renderStatusBar() string {
	done := 0
	for _, r := range m.Rows {
		if r.Completed {
			done++
		}
	}
	dir := "↑"
	if m.Sort.Descending {
		dir = "↓"
	}
	parts := []string{
		styleStatusLabel.Render("jugglelog"),
		styleStatusLabel.Render("length ") + styleStatusValue.Render(fmt.Sprintf("%d", m.Length)),
		styleStatusLabel.Render("patterns ") + styleStatusValue.Render(fmt.Sprintf("%d/%d", done, len(m.Rows))),
		styleStatusLabel.Render("sort ") + styleStatusValue.Render(m.Sort.Key.String()+dir),
	}
	if m.Achievements != nil {
		sum := m.Achievements.Summary()
		parts = append(parts,
			styleStatusLabel.Render("level ")+styleStatusValue.Render(fmt.Sprintf("%d", sum.Level)),
			styleStatusLabel.Render("xp ")+styleStatusValue.Render(fmt.Sprintf("%d/%d", sum.LevelXP, sum.LevelSpan)),
		)
	}
	return styleStatusBar.Width(m.Width).Render(strings.Join(parts, "  "))
}

func (m AppModel) renderSymbols() string {
	var parts []string
	for i, code := range m.Catalog.Codes() {
		style := styleSymbolOff
		if m.Selected[code] {
			style = styleSymbolOn
		}
		label := code
		if m.Focus == FocusSymbols && i == m.SymbolCursor {
			label = styleSymbolCursor.Render(code)
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// visibleRows returns the index window of rows that fit the terminal.
func (m AppModel) visibleRows() (start, end int) {
	// status, symbols, blank, header, messages, footer (two lines).
	avail := m.Height - 6 - len(m.Messages)
	if avail < 1 {
		avail = 1
	}
	if len(m.Rows) <= avail {
		return 0, len(m.Rows)
	}
	start = m.Cursor - avail/2
	start = max(0, min(start, len(m.Rows)-avail))
	return start, start + avail
}

func (m AppModel) renderTable() string {
	if len(m.SelectedCodes()) == 0 {
		return styleMessage.Render("  Select symbols with tab, then space.")
	}
	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("  %-3s %-24s %7s  %s", "", "PATTERN", "CATCHES", "COMPLETED")))
	start, end := m.visibleRows()
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(i))
	}
	return b.String()
}

func (m AppModel) renderRow(i int) string {
	r := m.Rows[i]
	icon := iconNone
	switch {
	case r.Completed:
		icon = iconDone
	case r.MaxCatches > 0:
		icon = iconPartial
	}
	date := ""
	if r.HasDate {
		date = progress.FormatDate(r.CompletionDate) + " (" + humanize.RelTime(r.CompletionDate, m.now(), "ago", "from now") + ")"
	}
	line := fmt.Sprintf("%-3s %-24s %7d  %s", icon, r.Key, r.MaxCatches, date)

	selected := i == m.Cursor && m.Focus == FocusPatterns
	switch {
	case selected:
		return styleSelectionIndicator.Render(selectionIndicator) + " " + styleRowSelected.Render(line)
	case r.Completed:
		return "  " + styleRowDone.Render(line)
	default:
		return "  " + styleRowNormal.Render(line)
	}
}
